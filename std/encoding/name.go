package encoding

import (
	"io"
	"slices"
	"strings"
)

const TypeName TLNum = 0x07

// Name is a sequence of components. Decoded names share the buffer they were read from.
type Name []Component

func (n Name) String() string {
	if len(n) == 0 {
		return "/"
	}
	sb := strings.Builder{}
	for _, c := range n {
		sb.WriteByte('/')
		c.writeURI(&sb)
	}
	// a trailing empty component needs a second separator
	if last := n[len(n)-1]; last.Typ == TypeGenericNameComponent && len(last.Val) == 0 {
		sb.WriteByte('/')
	}
	return sb.String()
}

// EncodingLength is the size of the TLV-VALUE of the Name element.
func (n Name) EncodingLength() int {
	l := 0
	for _, c := range n {
		l += c.EncodingLength()
	}
	return l
}

// EncodeInto writes the components, without the Name TLV-TYPE and TLV-LENGTH.
func (n Name) EncodeInto(buf Buffer) int {
	pos := 0
	for _, c := range n {
		pos += c.EncodeInto(buf[pos:])
	}
	return pos
}

// Bytes returns the complete Name element.
func (n Name) Bytes() []byte {
	l := n.EncodingLength()
	buf := make([]byte, TypeName.EncodingLength()+TLNum(l).EncodingLength()+l)
	pos := TypeName.EncodeInto(buf)
	pos += TLNum(l).EncodeInto(buf[pos:])
	n.EncodeInto(buf[pos:])
	return buf
}

// BytesInner returns the TLV-VALUE of the Name element.
func (n Name) BytesInner() []byte {
	buf := make([]byte, n.EncodingLength())
	n.EncodeInto(buf)
	return buf
}

// Clone copies the name and all component values into one allocation.
func (n Name) Clone() Name {
	size := 0
	for _, c := range n {
		size += len(c.Val)
	}
	vals := make([]byte, 0, size)

	ret := make(Name, len(n))
	for i, c := range n {
		start := len(vals)
		vals = append(vals, c.Val...)
		ret[i] = Component{Typ: c.Typ, Val: vals[start:len(vals):len(vals)]}
	}
	return ret
}

// At returns the i-th component, counting from the end if i is negative.
// Out of range indices give the zero Component.
func (n Name) At(i int) Component {
	if i < 0 {
		i += len(n)
	}
	if i < 0 || i >= len(n) {
		return Component{}
	}
	return n[i]
}

// Prefix returns the first i components, or drops -i components if i is negative.
// The result shares storage with n.
func (n Name) Prefix(i int) Name {
	if i < 0 {
		i += len(n)
	}
	return n[:min(max(i, 0), len(n))]
}

// Append returns a new name; n itself is never extended in place.
func (n Name) Append(rest ...Component) Name {
	if len(rest) == 0 {
		return n
	}
	return slices.Concat(n, Name(rest))
}

func (n Name) Hash() uint64 {
	return pooledHash(n.EncodingLength(), n.EncodeInto)
}

// Compare implements NDN canonical order.
func (n Name) Compare(rhs Name) int {
	return slices.CompareFunc(n, rhs, Component.Compare)
}

func (n Name) Equal(rhs Name) bool {
	return slices.EqualFunc(n, rhs, Component.Equal)
}

// IsPrefix reports whether n is a prefix of rhs, or equal to it.
func (n Name) IsPrefix(rhs Name) bool {
	return len(n) <= len(rhs) && n.Equal(rhs[:len(n)])
}

// NameFromStr parses an NDN URI. Leading and trailing slashes are optional.
func NameFromStr(s string) (Name, error) {
	parts := strings.Split(s, "/")
	if parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	ret := make(Name, len(parts))
	for i, p := range parts {
		if err := parseComponentURI(p, &ret[i]); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// NameFromBytes decodes a complete Name element.
func NameFromBytes(buf []byte) (Name, error) {
	b, err := BlockFromBytes(buf)
	if err != nil {
		return nil, err
	}
	return NameFromBlock(b)
}

func NameFromBlock(b Block) (Name, error) {
	if b.Typ != TypeName {
		return nil, ErrUnexpectedType{Expected: []TLNum{TypeName}, Actual: b.Typ}
	}
	r := NewBufferView(b.Val)
	return r.ReadName()
}

// ReadName reads components until the end of the view.
func (r *WireView) ReadName() (Name, error) {
	ret := make(Name, 0, 8)
	for {
		c, err := r.ReadComponent()
		if err == io.EOF {
			return ret, nil
		} else if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
}
