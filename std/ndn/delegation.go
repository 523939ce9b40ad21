package ndn

import (
	"cmp"
	"strconv"

	enc "github.com/named-data/ndnlp/std/encoding"
)

// Delegation is a name with a preference; a lower preference is preferred.
type Delegation struct {
	Preference uint64
	Name       enc.Name
}

// Compare orders delegations by preference, then by name.
func (d Delegation) Compare(rhs Delegation) int {
	if c := cmp.Compare(d.Preference, rhs.Preference); c != 0 {
		return c
	}
	return d.Name.Compare(rhs.Name)
}

func (d Delegation) Equal(rhs Delegation) bool {
	return d.Preference == rhs.Preference && d.Name.Equal(rhs.Name)
}

func (d Delegation) String() string {
	return d.Name.String() + "(" + strconv.FormatUint(d.Preference, 10) + ")"
}

func (d Delegation) encodeInto(e *enc.Encoder) int {
	l := e.PrependName(d.Name)
	l += e.PrependNatBlock(TypeLinkPreference, d.Preference)
	return l + e.PrependTL(TypeDelegation, l)
}

func decodeDelegation(b enc.Block) (Delegation, error) {
	if b.Typ != TypeDelegation {
		return Delegation{}, ErrDelegationList{
			Msg: "unexpected TLV-TYPE " + strconv.FormatUint(uint64(b.Typ), 10) + " when decoding Delegation",
		}
	}
	elems, err := b.Elements()
	if err != nil {
		return Delegation{}, ErrDelegationList{Msg: "malformed Delegation", Err: err}
	}

	if len(elems) < 1 || elems[0].Typ != TypeLinkPreference {
		return Delegation{}, ErrDelegationList{Msg: "missing Preference field in Delegation"}
	}
	pref, err := elems[0].Nat()
	if err != nil {
		return Delegation{}, ErrDelegationList{Msg: "invalid Preference field in Delegation", Err: err}
	}

	if len(elems) < 2 || elems[1].Typ != TypeName {
		return Delegation{}, ErrDelegationList{Msg: "missing Name field in Delegation"}
	}
	name, err := enc.NameFromBlock(elems[1])
	if err != nil {
		return Delegation{}, ErrDelegationList{Msg: "invalid Name field in Delegation", Err: err}
	}

	return Delegation{Preference: pref, Name: name.Clone()}, nil
}
