package lp

import (
	"strconv"

	enc "github.com/named-data/ndnlp/std/encoding"
)

// NackReason is the reason code carried in a Nack header.
type NackReason uint64

const (
	NackReasonNone       NackReason = 0
	NackReasonCongestion NackReason = 50
	NackReasonDuplicate  NackReason = 100
	NackReasonNoRoute    NackReason = 150
)

func (r NackReason) String() string {
	switch r {
	case NackReasonNone:
		return "None"
	case NackReasonCongestion:
		return "Congestion"
	case NackReasonDuplicate:
		return "Duplicate"
	case NackReasonNoRoute:
		return "NoRoute"
	default:
		return strconv.FormatUint(uint64(r), 10)
	}
}

// NackReasonFromString parses the names printed by String, or a decimal code.
func NackReasonFromString(s string) (NackReason, error) {
	for _, r := range []NackReason{NackReasonNone, NackReasonCongestion, NackReasonDuplicate, NackReasonNoRoute} {
		if r.String() == s {
			return r, nil
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, enc.ErrFormat{Msg: "unknown Nack reason: " + s}
	}
	return NackReason(v), nil
}

// NackHeader is the value of the Nack field.
// A reason of None is encoded as an empty header.
type NackHeader struct {
	Reason NackReason
}

// Less is true when r is less severe than other, so that a forwarder keeps the least severe reason.
// An unrecognized code is more severe than any known one.
func (r NackReason) Less(other NackReason) bool {
	return r.severity() < other.severity()
}

func (r NackReason) severity() uint64 {
	switch r {
	case NackReasonCongestion, NackReasonDuplicate, NackReasonNoRoute:
		return uint64(r)
	default:
		return ^uint64(0)
	}
}

func (h NackHeader) encode() ([]byte, error) {
	if h.Reason == NackReasonNone {
		return nil, nil
	}
	return enc.NewNatBlock(TypeNackReason, uint64(h.Reason)).Bytes(), nil
}

func decodeNackHeader(val enc.Buffer) (NackHeader, error) {
	elems, err := enc.NewBlock(TypeNack, val).Elements()
	if err != nil {
		return NackHeader{}, err
	}
	for _, e := range elems {
		if e.Typ != TypeNackReason {
			continue
		}
		v, err := e.Nat()
		if err != nil {
			return NackHeader{}, err
		}
		return NackHeader{Reason: NackReason(v)}, nil
	}
	return NackHeader{}, nil
}

func (h NackHeader) String() string {
	return "Nack(" + h.Reason.String() + ")"
}
