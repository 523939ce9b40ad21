package lp

import (
	"bytes"
	"encoding/binary"

	enc "github.com/named-data/ndnlp/std/encoding"
)

// Location orders LpPacket fields: every Header field precedes every Fragment field.
type Location int

const (
	LocationHeader   Location = 1
	LocationFragment Location = 2
)

func (l Location) String() string {
	switch l {
	case LocationHeader:
		return "Header"
	case LocationFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// fieldDesc is the part of a field declaration that does not depend on its value type.
type fieldDesc struct {
	name       string
	typ        enc.TLNum
	loc        Location
	repeatable bool
}

// Field declares one LpPacket field and the codec of its value.
// The declared fields are the package level variables below; there is no way to add more.
type Field[V any] struct {
	fieldDesc
	encodeValue func(V) ([]byte, error)
	decodeValue func(enc.Buffer) (V, error)
}

func (f *Field[V]) Name() string {
	return f.name
}

func (f *Field[V]) Type() enc.TLNum {
	return f.typ
}

func (f *Field[V]) Location() Location {
	return f.loc
}

func (f *Field[V]) Repeatable() bool {
	return f.repeatable
}

// Encode encodes a value as a complete field element.
func (f *Field[V]) Encode(v V) (enc.Block, error) {
	val, err := f.encodeValue(v)
	if err != nil {
		return enc.Block{}, err
	}
	return enc.NewBlock(f.typ, val), nil
}

// Decode decodes the value of a field element.
func (f *Field[V]) Decode(b enc.Block) (V, error) {
	if b.Typ != f.typ {
		var zero V
		return zero, enc.ErrUnexpectedType{Expected: []enc.TLNum{f.typ}, Actual: b.Typ}
	}
	v, err := f.decodeValue(b.Val)
	if err != nil {
		var zero V
		return zero, enc.ErrFailToParse{TypeNum: f.typ, Err: err}
	}
	return v, nil
}

func header[V any](name string, typ enc.TLNum, repeatable bool,
	encode func(V) ([]byte, error), decode func(enc.Buffer) (V, error),
) *Field[V] {
	return &Field[V]{
		fieldDesc:   fieldDesc{name: name, typ: typ, loc: LocationHeader, repeatable: repeatable},
		encodeValue: encode,
		decodeValue: decode,
	}
}

var (
	Sequence = header("Sequence", TypeSequence, false, encodeFixed64, decodeFixed64)

	FragIndex = header("FragIndex", TypeFragIndex, false, encodeNat, decodeNat)
	FragCount = header("FragCount", TypeFragCount, false, encodeNat, decodeNat)

	PitToken = header("PitToken", TypePitToken, false, encodePitToken, decodePitToken)
	Nack     = header("Nack", TypeNack, false, NackHeader.encode, decodeNackHeader)

	IncomingFaceId = header("IncomingFaceId", TypeIncomingFaceId, false, encodeNat, decodeNat)
	NextHopFaceId  = header("NextHopFaceId", TypeNextHopFaceId, false, encodeNat, decodeNat)

	CachePolicy    = header("CachePolicy", TypeCachePolicy, false, CachePolicyHeader.encode, decodeCachePolicy)
	CongestionMark = header("CongestionMark", TypeCongestionMark, false, encodeNat, decodeNat)

	// Ack is the only repeatable field; each one acknowledges a TxSequence.
	Ack        = header("Ack", TypeAck, true, encodeFixed64, decodeFixed64)
	TxSequence = header("TxSequence", TypeTxSequence, false, encodeFixed64, decodeFixed64)

	NonDiscovery       = header("NonDiscovery", TypeNonDiscovery, false, encodeEmpty, decodeEmpty)
	PrefixAnnouncement = header("PrefixAnnouncement", TypePrefixAnnouncement, false, encodeDataBlock, decodeDataBlock)

	// Fragment carries the network layer packet or a piece of it.
	Fragment = &Field[[]byte]{
		fieldDesc:   fieldDesc{name: "Fragment", typ: TypeFragment, loc: LocationFragment},
		encodeValue: encodeFragment,
		decodeValue: decodeFragment,
	}
)

// catalog maps every declared TLV-TYPE to its field. It is never modified after init.
var catalog = buildCatalog(
	&Sequence.fieldDesc, &FragIndex.fieldDesc, &FragCount.fieldDesc,
	&PitToken.fieldDesc, &Nack.fieldDesc,
	&IncomingFaceId.fieldDesc, &NextHopFaceId.fieldDesc,
	&CachePolicy.fieldDesc, &CongestionMark.fieldDesc,
	&Ack.fieldDesc, &TxSequence.fieldDesc,
	&NonDiscovery.fieldDesc, &PrefixAnnouncement.fieldDesc,
	&Fragment.fieldDesc,
)

func buildCatalog(fields ...*fieldDesc) map[enc.TLNum]*fieldDesc {
	ret := make(map[enc.TLNum]*fieldDesc, len(fields))
	for _, f := range fields {
		if _, ok := ret[f.typ]; ok {
			panic("duplicate LpPacket field declaration: " + f.name)
		}
		ret[f.typ] = f
	}
	return ret
}

// EmptyValue is the value of a field that only signals presence.
type EmptyValue struct{}

func encodeEmpty(EmptyValue) ([]byte, error) {
	return nil, nil
}

func decodeEmpty(val enc.Buffer) (EmptyValue, error) {
	if len(val) != 0 {
		return EmptyValue{}, enc.ErrFormat{Msg: "field must be empty"}
	}
	return EmptyValue{}, nil
}

func encodeNat(v uint64) ([]byte, error) {
	return enc.Nat(v).Bytes(), nil
}

func decodeNat(val enc.Buffer) (uint64, error) {
	v, _, err := enc.ParseNat(val)
	return uint64(v), err
}

// Sequence numbers are always 8 octets, unlike NonNegativeInteger.
func encodeFixed64(v uint64) ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, v), nil
}

func decodeFixed64(val enc.Buffer) (uint64, error) {
	if len(val) != 8 {
		return 0, enc.ErrFormat{Msg: "field must contain a 64-bit integer"}
	}
	return binary.BigEndian.Uint64(val), nil
}

func encodePitToken(v []byte) ([]byte, error) {
	if _, err := decodePitToken(v); err != nil {
		return nil, err
	}
	return bytes.Clone(v), nil
}

func decodePitToken(val enc.Buffer) ([]byte, error) {
	if len(val) == 0 || len(val) > MaxPitTokenLength {
		return nil, enc.ErrFormat{Msg: "PIT token must be 1 to 32 octets"}
	}
	return bytes.Clone(val), nil
}

func encodeFragment(v []byte) ([]byte, error) {
	if len(v) == 0 {
		return nil, enc.ErrFormat{Msg: "fragment cannot be empty"}
	}
	return bytes.Clone(v), nil
}

func decodeFragment(val enc.Buffer) ([]byte, error) {
	if len(val) == 0 {
		return nil, enc.ErrFormat{Msg: "fragment cannot be empty"}
	}
	return bytes.Clone(val), nil
}

func encodeDataBlock(v enc.Block) ([]byte, error) {
	if v.Typ != TypeData {
		return nil, enc.ErrUnexpectedType{Expected: []enc.TLNum{TypeData}, Actual: v.Typ}
	}
	return bytes.Clone(v.Bytes()), nil
}

func decodeDataBlock(val enc.Buffer) (enc.Block, error) {
	b, err := enc.BlockFromBytes(bytes.Clone(val))
	if err != nil {
		return enc.Block{}, err
	}
	if b.Typ != TypeData {
		return enc.Block{}, enc.ErrUnexpectedType{Expected: []enc.TLNum{TypeData}, Actual: b.Typ}
	}
	return b, nil
}
