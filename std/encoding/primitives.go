package encoding

import (
	"encoding/binary"
	"io"
)

// TLNum is a TLV-TYPE or TLV-LENGTH, encoded as a VAR-NUMBER.
type TLNum uint64

// Nat is a NonNegativeInteger TLV-VALUE.
type Nat uint64

// First octets of the multi-byte VAR-NUMBER forms.
const (
	varNum16 = 0xfd
	varNum32 = 0xfe
	varNum64 = 0xff
)

// putUint writes x big-endian into exactly size bytes of buf.
func putUint(buf []byte, x uint64, size int) {
	switch size {
	case 1:
		buf[0] = byte(x)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(x))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(x))
	default:
		binary.BigEndian.PutUint64(buf, x)
	}
}

// uintOf reads a big-endian integer of 1, 2, 4 or 8 bytes.
func uintOf(buf []byte) (uint64, bool) {
	switch len(buf) {
	case 1:
		return uint64(buf[0]), true
	case 2:
		return uint64(binary.BigEndian.Uint16(buf)), true
	case 4:
		return uint64(binary.BigEndian.Uint32(buf)), true
	case 8:
		return binary.BigEndian.Uint64(buf), true
	}
	return 0, false
}

func (v TLNum) EncodingLength() int {
	if v < varNum16 {
		return 1
	}
	return 1 + max(2, Nat(v).EncodingLength())
}

// EncodeInto writes the VAR-NUMBER to the front of buf, which must hold
// EncodingLength() bytes.
func (v TLNum) EncodeInto(buf Buffer) int {
	n := v.EncodingLength()
	switch n {
	case 1:
		buf[0] = byte(v)
		return 1
	case 3:
		buf[0] = varNum16
	case 5:
		buf[0] = varNum32
	default:
		buf[0] = varNum64
	}
	putUint(buf[1:], uint64(v), n-1)
	return n
}

// ParseTLNum reads a VAR-NUMBER from the front of buf.
// pos is 0 if buf ends before the number does.
func ParseTLNum(buf Buffer) (val TLNum, pos int) {
	if len(buf) == 0 {
		return 0, 0
	}
	var n int
	switch buf[0] {
	case varNum16:
		n = 3
	case varNum32:
		n = 5
	case varNum64:
		n = 9
	default:
		return TLNum(buf[0]), 1
	}
	if len(buf) < n {
		return 0, 0
	}
	x, _ := uintOf(buf[1:n])
	return TLNum(x), n
}

// ReadTLNum returns io.EOF at the end of the view and io.ErrUnexpectedEOF
// for a truncated number.
func (r *WireView) ReadTLNum() (val TLNum, err error) {
	if r.IsEOF() {
		return 0, io.EOF
	}
	val, n := ParseTLNum(r.buf[r.pos:])
	if n == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	r.pos += n
	return val, nil
}

// EncodingLength is the shortest of 1, 2, 4 or 8 bytes that holds v.
func (v Nat) EncodingLength() int {
	switch {
	case v>>8 == 0:
		return 1
	case v>>16 == 0:
		return 2
	case v>>32 == 0:
		return 4
	}
	return 8
}

func (v Nat) EncodeInto(buf Buffer) int {
	n := v.EncodingLength()
	putUint(buf, uint64(v), n)
	return n
}

func (v Nat) Bytes() []byte {
	buf := make([]byte, v.EncodingLength())
	v.EncodeInto(buf)
	return buf
}

// ParseNat decodes a NonNegativeInteger that spans all of buf.
func ParseNat(buf Buffer) (val Nat, pos int, err error) {
	x, ok := uintOf(buf)
	if !ok {
		return 0, 0, ErrFormat{"natural number length is not 1, 2, 4 or 8"}
	}
	return Nat(x), len(buf), nil
}
