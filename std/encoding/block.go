package encoding

import (
	"bytes"
	"encoding/hex"
	"math"
	"strings"
)

// Block is a single TLV element.
// A decoded Block keeps a view of the bytes it was parsed from; no copy is made.
type Block struct {
	Typ TLNum
	Val Buffer

	wire Buffer
}

func NewBlock(typ TLNum, val []byte) Block {
	return Block{Typ: typ, Val: val}
}

func NewEmptyBlock(typ TLNum) Block {
	return Block{Typ: typ}
}

// NewNatBlock creates an element whose TLV-VALUE is a NonNegativeInteger.
func NewNatBlock(typ TLNum, v uint64) Block {
	return Block{Typ: typ, Val: Nat(v).Bytes()}
}

// NewNestedBlock creates an element whose TLV-VALUE is the concatenation of sub-elements.
func NewNestedBlock(typ TLNum, elements ...Block) Block {
	l := 0
	for _, e := range elements {
		l += e.Size()
	}
	val := make([]byte, l)
	pos := 0
	for _, e := range elements {
		pos += e.EncodeInto(val[pos:])
	}
	return Block{Typ: typ, Val: val}
}

// ParseBlock extracts the first TLV element from buf.
func ParseBlock(buf Buffer) (b Block, rest Buffer, err error) {
	typ, p1 := ParseTLNum(buf)
	if p1 == 0 {
		return Block{}, nil, ErrBufferOverflow
	}
	if typ == 0 || typ > math.MaxUint32 {
		return Block{}, nil, ErrFormat{"TLV-TYPE out of range"}
	}
	l, p2 := ParseTLNum(buf[p1:])
	if p2 == 0 {
		return Block{}, nil, ErrBufferOverflow
	}
	start := p1 + p2
	if uint64(l) > uint64(len(buf)-start) {
		return Block{}, nil, ErrBufferOverflow
	}
	end := start + int(l)
	return Block{
		Typ:  typ,
		Val:  buf[start:end:end],
		wire: buf[:end:end],
	}, buf[end:], nil
}

// BlockFromBytes parses buf as exactly one TLV element.
func BlockFromBytes(buf Buffer) (Block, error) {
	b, rest, err := ParseBlock(buf)
	if err != nil {
		return Block{}, err
	}
	if len(rest) > 0 {
		return Block{}, ErrTrailingBytes
	}
	return b, nil
}

// BlockFromHex parses a hexadecimal string as exactly one TLV element.
// Whitespace in s is ignored.
func BlockFromHex(s string) (Block, error) {
	buf, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return Block{}, ErrFormat{"invalid hexadecimal input: " + err.Error()}
	}
	return BlockFromBytes(buf)
}

// Size returns the length of the full TLV encoding, which for a decoded
// Block is the length of its original wire even if TL was not minimal.
func (b Block) Size() int {
	if b.wire != nil {
		return len(b.wire)
	}
	return b.Typ.EncodingLength() + TLNum(len(b.Val)).EncodingLength() + len(b.Val)
}

// EncodeInto writes the full TLV encoding to the front of buf.
func (b Block) EncodeInto(buf Buffer) int {
	if b.wire != nil {
		return copy(buf, b.wire)
	}
	p1 := b.Typ.EncodeInto(buf)
	p2 := TLNum(len(b.Val)).EncodeInto(buf[p1:])
	return p1 + p2 + copy(buf[p1+p2:], b.Val)
}

// Bytes returns the full TLV encoding.
// For a decoded Block this is a view of the input buffer.
func (b Block) Bytes() []byte {
	if b.wire != nil {
		return b.wire
	}
	buf := make([]byte, b.Size())
	b.EncodeInto(buf)
	return buf
}

// Elements parses the TLV-VALUE as a sequence of sub-elements.
func (b Block) Elements() ([]Block, error) {
	ret := make([]Block, 0, 4)
	for rest := b.Val; len(rest) > 0; {
		var e Block
		var err error
		if e, rest, err = ParseBlock(rest); err != nil {
			return nil, err
		}
		ret = append(ret, e)
	}
	return ret, nil
}

// Nat interprets the TLV-VALUE as a NonNegativeInteger.
func (b Block) Nat() (uint64, error) {
	v, _, err := ParseNat(b.Val)
	return uint64(v), err
}

// Equal compares TLV-TYPE and TLV-VALUE.
func (b Block) Equal(rhs Block) bool {
	return b.Typ == rhs.Typ && bytes.Equal(b.Val, rhs.Val)
}

// String returns the upper case hexadecimal encoding.
func (b Block) String() string {
	return strings.ToUpper(hex.EncodeToString(b.Bytes()))
}
