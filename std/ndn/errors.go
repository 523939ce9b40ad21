package ndn

import (
	"errors"
	"fmt"
)

type ErrInvalidValue struct {
	Item  string
	Value any
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Item, e.Value)
}

// ErrEmptyDelegationList is returned when encoding an empty DelegationList or decoding one without delegations.
var ErrEmptyDelegationList = errors.New("empty DelegationList")

// ErrDelegationList is returned when a DelegationList element is malformed.
type ErrDelegationList struct {
	Msg string
	Err error
}

func (e ErrDelegationList) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e ErrDelegationList) Unwrap() error {
	return e.Err
}
