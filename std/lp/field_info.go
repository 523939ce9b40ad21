package lp

import (
	"fmt"

	enc "github.com/named-data/ndnlp/std/encoding"
)

// FieldInfo describes how a TLV-TYPE found in an LpPacket is handled.
type FieldInfo struct {
	Type enc.TLNum
	// Recognized is true if the type is a declared field.
	Recognized bool
	// CanIgnore is true if an unrecognized field may be skipped. Always false for recognized fields.
	CanIgnore  bool
	Repeatable bool
	// SortOrder is the Location of the field. Unrecognized fields sort as Header.
	SortOrder Location
}

// ResolveField looks up a TLV-TYPE in the field catalog.
func ResolveField(typ enc.TLNum) FieldInfo {
	if f, ok := catalog[typ]; ok {
		return FieldInfo{
			Type:       typ,
			Recognized: true,
			Repeatable: f.repeatable,
			SortOrder:  f.loc,
		}
	}
	return FieldInfo{
		Type:      typ,
		CanIgnore: IsIgnorable(typ),
		SortOrder: LocationHeader,
	}
}

// IsIgnorable reports whether an unrecognized field of this type may be skipped.
// These are the HEADER3 types whose two least significant bits are zero.
func IsIgnorable(typ enc.TLNum) bool {
	return typ >= Header3Min && typ <= Header3Max && typ&0x03 == 0
}

// Name returns the declared field name or the type number.
func (i FieldInfo) Name() string {
	if f, ok := catalog[i.Type]; ok {
		return f.name
	}
	return fmt.Sprintf("%d", i.Type)
}

// CompareFieldSortOrder orders fields by location, then by TLV-TYPE.
func CompareFieldSortOrder(a, b FieldInfo) int {
	switch {
	case a.SortOrder != b.SortOrder:
		if a.SortOrder < b.SortOrder {
			return -1
		}
		return 1
	case a.Type < b.Type:
		return -1
	case a.Type > b.Type:
		return 1
	default:
		return 0
	}
}
