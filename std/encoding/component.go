package encoding

import (
	"bytes"
	"cmp"
	"io"
	"strings"
)

const (
	TypeInvalidComponent                TLNum = 0x00
	TypeImplicitSha256DigestComponent   TLNum = 0x01
	TypeParametersSha256DigestComponent TLNum = 0x02
	TypeGenericNameComponent            TLNum = 0x08
	TypeKeywordNameComponent            TLNum = 0x20
	TypeSegmentNameComponent            TLNum = 0x32
	TypeByteOffsetNameComponent         TLNum = 0x34
	TypeVersionNameComponent            TLNum = 0x36
	TypeTimestampNameComponent          TLNum = 0x38
	TypeSequenceNumNameComponent        TLNum = 0x3a
)

// maxComponentType is the largest NameComponent TLV-TYPE.
const maxComponentType TLNum = 0xffff

// Component is a NameComponent. Val is not copied when a Component is decoded.
type Component struct {
	Typ TLNum
	Val []byte
}

func NewGenericComponent(val string) Component {
	return Component{Typ: TypeGenericNameComponent, Val: []byte(val)}
}

func NewNumberComponent(typ TLNum, val uint64) Component {
	return Component{Typ: typ, Val: Nat(val).Bytes()}
}

func NewSegmentComponent(seg uint64) Component {
	return NewNumberComponent(TypeSegmentNameComponent, seg)
}

func NewVersionComponent(v uint64) Component {
	return NewNumberComponent(TypeVersionNameComponent, v)
}

func NewSequenceNumComponent(seq uint64) Component {
	return NewNumberComponent(TypeSequenceNumNameComponent, seq)
}

func (c Component) Clone() Component {
	return Component{Typ: c.Typ, Val: bytes.Clone(c.Val)}
}

func (c Component) String() string {
	sb := strings.Builder{}
	c.writeURI(&sb)
	return sb.String()
}

// Append creates a name starting with c.
func (c Component) Append(rest ...Component) Name {
	return Name{c}.Append(rest...)
}

func (c Component) EncodingLength() int {
	return c.Typ.EncodingLength() + TLNum(len(c.Val)).EncodingLength() + len(c.Val)
}

func (c Component) EncodeInto(buf Buffer) int {
	pos := c.Typ.EncodeInto(buf)
	pos += TLNum(len(c.Val)).EncodeInto(buf[pos:])
	return pos + copy(buf[pos:], c.Val)
}

func (c Component) Bytes() []byte {
	buf := make([]byte, c.EncodingLength())
	c.EncodeInto(buf)
	return buf
}

// Compare orders components by TLV-TYPE, then TLV-LENGTH, then TLV-VALUE octets.
func (c Component) Compare(rhs Component) int {
	if r := cmp.Compare(c.Typ, rhs.Typ); r != 0 {
		return r
	}
	if r := cmp.Compare(len(c.Val), len(rhs.Val)); r != 0 {
		return r
	}
	return bytes.Compare(c.Val, rhs.Val)
}

func (c Component) Equal(rhs Component) bool {
	return c.Typ == rhs.Typ && bytes.Equal(c.Val, rhs.Val)
}

// NumberVal interprets the value as a big-endian unsigned integer.
func (c Component) NumberVal() uint64 {
	x := uint64(0)
	for _, b := range c.Val {
		x = x<<8 | uint64(b)
	}
	return x
}

func (c Component) Hash() uint64 {
	return pooledHash(c.EncodingLength(), c.EncodeInto)
}

// ComponentFromStr parses the URI representation of a component.
func ComponentFromStr(s string) (Component, error) {
	c := Component{}
	if err := parseComponentURI(s, &c); err != nil {
		return Component{}, err
	}
	return c, nil
}

// ComponentFromBytes decodes the first component in buf.
func ComponentFromBytes(buf []byte) (Component, error) {
	r := NewBufferView(buf)
	return r.ReadComponent()
}

func (r *WireView) ReadComponent() (Component, error) {
	typ, err := r.ReadTLNum()
	if err != nil {
		return Component{}, err
	}
	if typ == TypeInvalidComponent || typ > maxComponentType {
		return Component{}, ErrFormat{"component TLV-TYPE out of range"}
	}

	l, err := r.ReadTLNum()
	if err == io.EOF {
		return Component{}, io.ErrUnexpectedEOF
	} else if err != nil {
		return Component{}, err
	}

	val, err := r.ReadBuf(int(l))
	if err != nil {
		return Component{}, err
	}
	return Component{Typ: typ, Val: val}, nil
}
