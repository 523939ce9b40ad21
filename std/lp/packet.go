package lp

import (
	"bytes"
	"slices"
	"strings"

	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/log"
	"github.com/named-data/ndnlp/std/types/optional"
)

// Packet is an LpPacket: an ordered list of header fields followed by an optional fragment.
// The fields are kept in their encoded form and decoded on access.
// A Packet is not safe for concurrent use.
type Packet struct {
	elems []enc.Block
	// cached result of Encode, cleared by every mutation
	wire []byte
}

func (p *Packet) String() string {
	sb := strings.Builder{}
	sb.WriteString("LpPacket(")
	for i, e := range p.elems {
		if i > 0 {
			sb.WriteRune(',')
		}
		sb.WriteString(ResolveField(e.Typ).Name())
	}
	sb.WriteRune(')')
	return sb.String()
}

// DecodePacket decodes an LpPacket, or a bare Interest or Data as a packet with only a Fragment.
func DecodePacket(buf []byte) (*Packet, error) {
	p := &Packet{}
	if err := p.Decode(buf); err != nil {
		return nil, err
	}
	return p, nil
}

// Decode replaces the content of the packet with a decoded wire encoding.
// The input is copied. On error the packet is unchanged.
func (p *Packet) Decode(buf []byte) error {
	outer, err := enc.BlockFromBytes(bytes.Clone(buf))
	if err != nil {
		return err
	}
	return p.DecodeBlock(outer)
}

// DecodeBlock is Decode for an element already split out of a larger buffer.
// The packet keeps a view of outer.
func (p *Packet) DecodeBlock(outer enc.Block) error {
	switch outer.Typ {
	case TypeInterest, TypeData:
		p.elems = []enc.Block{enc.NewBlock(TypeFragment, outer.Bytes())}
		p.wire = nil
		return nil
	case TypeLpPacket:
	default:
		log.Trace(nil, "Dropping packet with unknown type", "type", outer.Typ)
		return ErrNotLpPacket
	}

	elems, err := outer.Elements()
	if err != nil {
		return err
	}
	if err := validateFields(elems); err != nil {
		log.Trace(nil, "Dropping malformed LpPacket", "err", err)
		return err
	}

	p.elems = elems
	p.wire = outer.Bytes()
	return nil
}

// validateFields checks that every field is known or ignorable, in order, and not repeated.
func validateFields(elems []enc.Block) error {
	var prev FieldInfo
	for i, e := range elems {
		info := ResolveField(e.Typ)
		if !info.Recognized && !info.CanIgnore {
			return enc.ErrUnrecognizedField{TypeNum: e.Typ}
		}
		if i > 0 {
			if info.Type == prev.Type {
				if !info.Repeatable {
					return ErrRepeatedField{TypeNum: e.Typ}
				}
			} else if CompareFieldSortOrder(prev, info) >= 0 {
				return ErrSortOrder{Prev: prev.Type, Next: info.Type}
			}
		}
		prev = info
	}
	return nil
}

// Encode returns the wire encoding of the packet.
// A packet holding nothing but a Fragment encodes as the fragment itself.
// The result must not be modified; it remains valid until the next mutation.
func (p *Packet) Encode() []byte {
	if len(p.elems) == 1 && ResolveField(p.elems[0].Typ).SortOrder == LocationFragment {
		return p.elems[0].Val
	}
	if p.wire != nil {
		return p.wire
	}

	size := 0
	for _, e := range p.elems {
		size += e.Size()
	}
	e := enc.NewEncoder(size + 10)
	for i := len(p.elems) - 1; i >= 0; i-- {
		e.PrependBlock(p.elems[i])
	}
	e.PrependTL(TypeLpPacket, size)

	p.wire = e.Bytes()
	return p.wire
}

// Empty is true if the packet has no fields, including ignored ones.
func (p *Packet) Empty() bool {
	return len(p.elems) == 0
}

// Elements returns copies of the encoded fields in wire order, including
// unrecognized ignorable ones.
func (p *Packet) Elements() []enc.Block {
	ret := make([]enc.Block, len(p.elems))
	for i, e := range p.elems {
		ret[i] = enc.NewBlock(e.Typ, bytes.Clone(e.Val))
	}
	return ret
}

func (p *Packet) invalidate() {
	p.wire = nil
}

// insert places b after every field that does not sort after it.
func (p *Packet) insert(b enc.Block) {
	info := ResolveField(b.Typ)
	pos, _ := slices.BinarySearchFunc(p.elems, info, func(e enc.Block, t FieldInfo) int {
		if CompareFieldSortOrder(ResolveField(e.Typ), t) <= 0 {
			return -1
		}
		return 1
	})
	p.elems = slices.Insert(p.elems, pos, b)
	p.invalidate()
}

// Has reports whether the packet contains field f.
func Has[V any](p *Packet, f *Field[V]) bool {
	return slices.ContainsFunc(p.elems, func(e enc.Block) bool { return e.Typ == f.typ })
}

// Count returns the number of occurrences of field f.
func Count[V any](p *Packet, f *Field[V]) int {
	n := 0
	for _, e := range p.elems {
		if e.Typ == f.typ {
			n++
		}
	}
	return n
}

// find returns the position in p.elems of the index-th occurrence of f, or -1.
func find(p *Packet, typ enc.TLNum, index int) int {
	if index < 0 {
		return -1
	}
	for i, e := range p.elems {
		if e.Typ != typ {
			continue
		}
		if index == 0 {
			return i
		}
		index--
	}
	return -1
}

// Get decodes the index-th occurrence of field f.
func Get[V any](p *Packet, f *Field[V], index int) (V, error) {
	pos := find(p, f.typ, index)
	if pos < 0 {
		var zero V
		return zero, ErrIndexOutOfRange{Name: f.name, Index: index, Count: Count(p, f)}
	}
	return f.Decode(p.elems[pos])
}

// GetFirst decodes the first occurrence of field f, if any.
func GetFirst[V any](p *Packet, f *Field[V]) (optional.Optional[V], error) {
	pos := find(p, f.typ, 0)
	if pos < 0 {
		return optional.None[V](), nil
	}
	v, err := f.Decode(p.elems[pos])
	if err != nil {
		return optional.None[V](), err
	}
	return optional.Some(v), nil
}

// List decodes every occurrence of field f in wire order.
func List[V any](p *Packet, f *Field[V]) ([]V, error) {
	ret := make([]V, 0, 1)
	for _, e := range p.elems {
		if e.Typ != f.typ {
			continue
		}
		v, err := f.Decode(e)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Add inserts a new occurrence of field f at its sorted position,
// after any existing occurrences.
func Add[V any](p *Packet, f *Field[V], v V) error {
	if !f.repeatable && Has(p, f) {
		return ErrFieldExists{Name: f.name}
	}
	b, err := f.Encode(v)
	if err != nil {
		return err
	}
	p.insert(b)
	return nil
}

// Set replaces every occurrence of field f with a single one.
// If v cannot be encoded the packet is unchanged.
func Set[V any](p *Packet, f *Field[V], v V) error {
	b, err := f.Encode(v)
	if err != nil {
		return err
	}
	Clear(p, f)
	p.insert(b)
	return nil
}

// Remove deletes the index-th occurrence of field f.
func Remove[V any](p *Packet, f *Field[V], index int) error {
	pos := find(p, f.typ, index)
	if pos < 0 {
		return ErrIndexOutOfRange{Name: f.name, Index: index, Count: Count(p, f)}
	}
	p.elems = slices.Delete(p.elems, pos, pos+1)
	p.invalidate()
	return nil
}

// Clear deletes every occurrence of field f.
func Clear[V any](p *Packet, f *Field[V]) {
	n := len(p.elems)
	p.elems = slices.DeleteFunc(p.elems, func(e enc.Block) bool { return e.Typ == f.typ })
	if len(p.elems) != n {
		p.invalidate()
	}
}
