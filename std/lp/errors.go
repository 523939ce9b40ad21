package lp

import (
	"errors"
	"fmt"

	enc "github.com/named-data/ndnlp/std/encoding"
)

// ErrNotLpPacket is returned when the outer TLV-TYPE is neither LpPacket nor a bare Interest or Data.
var ErrNotLpPacket = errors.New("unrecognized top-level TLV-TYPE for an LpPacket")

// ErrRepeatedField is returned by Decode when a non-repeatable field occurs twice.
type ErrRepeatedField struct {
	TypeNum enc.TLNum
}

func (e ErrRepeatedField) Error() string {
	return fmt.Sprintf("non-repeatable field %d is repeated", e.TypeNum)
}

// ErrSortOrder is returned by Decode when two adjacent fields are out of order.
type ErrSortOrder struct {
	Prev enc.TLNum
	Next enc.TLNum
}

func (e ErrSortOrder) Error() string {
	return fmt.Sprintf("field %d cannot follow field %d", e.Next, e.Prev)
}

// ErrFieldExists is returned by Add for a second occurrence of a non-repeatable field.
type ErrFieldExists struct {
	Name string
}

func (e ErrFieldExists) Error() string {
	return fmt.Sprintf("field %s already exists and is not repeatable", e.Name)
}

// ErrIndexOutOfRange is returned by Get and Remove.
type ErrIndexOutOfRange struct {
	Name  string
	Index int
	Count int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for field %s (count %d)", e.Index, e.Name, e.Count)
}
