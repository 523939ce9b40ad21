package ndn

import (
	"iter"
	"slices"
	"strings"

	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/types/optional"
)

// DelegationList is the list of delegations in a ForwardingHint or a Link object.
// A sorted list keeps its delegations ordered by preference then name;
// an unsorted list keeps them in insertion order.
// The zero value is an empty sorted list.
type DelegationList struct {
	dels     []Delegation
	unsorted bool
}

// NewDelegationList creates a sorted list, inserting each delegation with InsertReplace.
func NewDelegationList(dels ...Delegation) *DelegationList {
	l := &DelegationList{}
	for _, d := range dels {
		l.InsertDelegation(d, InsertReplace)
	}
	return l
}

// DecodeDelegationList decodes a ForwardingHint or Content element.
// If wantSort is set the delegations are sorted, otherwise the wire order is kept.
func DecodeDelegationList(b enc.Block, wantSort bool) (*DelegationList, error) {
	l := &DelegationList{}
	if err := l.Decode(b, wantSort); err != nil {
		return nil, err
	}
	return l, nil
}

func isValidDelegationListType(typ enc.TLNum) bool {
	return typ == TypeContent || typ == TypeForwardingHint
}

// Decode replaces the content of the list. On error the list is unchanged.
func (l *DelegationList) Decode(b enc.Block, wantSort bool) error {
	if !isValidDelegationListType(b.Typ) {
		return ErrDelegationList{Msg: "unexpected TLV-TYPE when decoding DelegationList",
			Err: enc.ErrUnexpectedType{Expected: []enc.TLNum{TypeContent, TypeForwardingHint}, Actual: b.Typ}}
	}
	elems, err := b.Elements()
	if err != nil {
		return ErrDelegationList{Msg: "malformed DelegationList", Err: err}
	}

	scratch := DelegationList{dels: make([]Delegation, 0, len(elems)), unsorted: !wantSort}
	for _, e := range elems {
		d, err := decodeDelegation(e)
		if err != nil {
			return err
		}
		scratch.insert(d)
	}
	if scratch.Empty() {
		return ErrEmptyDelegationList
	}

	*l = scratch
	return nil
}

// Encode encodes the list as a Content or ForwardingHint element.
func (l *DelegationList) Encode(typ enc.TLNum) ([]byte, error) {
	e := enc.NewEncoder(l.estimateSize())
	if _, err := l.EncodeInto(e, typ); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeInto prepends the encoded list to e and returns the number of bytes added.
// Delegations appear on the wire in list order.
func (l *DelegationList) EncodeInto(e *enc.Encoder, typ enc.TLNum) (int, error) {
	if !isValidDelegationListType(typ) {
		return 0, ErrInvalidValue{Item: "DelegationList TLV-TYPE", Value: typ}
	}
	if l.Empty() {
		return 0, ErrEmptyDelegationList
	}

	n := 0
	for i := len(l.dels) - 1; i >= 0; i-- {
		n += l.dels[i].encodeInto(e)
	}
	return n + e.PrependTL(typ, n), nil
}

func (l *DelegationList) estimateSize() int {
	n := 4
	for _, d := range l.dels {
		n += 16 + d.Name.EncodingLength()
	}
	return n
}

func (l *DelegationList) IsSorted() bool {
	return !l.unsorted
}

func (l *DelegationList) Len() int {
	return len(l.dels)
}

func (l *DelegationList) Empty() bool {
	return len(l.dels) == 0
}

// At returns the i-th delegation. It panics if i is out of range.
func (l *DelegationList) At(i int) Delegation {
	return l.dels[i]
}

// All iterates over the delegations in list order.
func (l *DelegationList) All() iter.Seq2[int, Delegation] {
	return slices.All(l.dels)
}

// Insert adds a delegation and reports whether it was inserted.
// Only InsertSkip can decline.
func (l *DelegationList) Insert(preference uint64, name enc.Name, onConflict InsertConflictResolution) bool {
	return l.InsertDelegation(Delegation{Preference: preference, Name: name}, onConflict)
}

func (l *DelegationList) InsertDelegation(d Delegation, onConflict InsertConflictResolution) bool {
	switch onConflict {
	case InsertReplace:
		l.Erase(optional.None[uint64](), d.Name)
	case InsertAppend:
	case InsertSkip:
		if slices.ContainsFunc(l.dels, func(x Delegation) bool { return x.Name.Equal(d.Name) }) {
			return false
		}
	default:
		return false
	}
	d.Name = d.Name.Clone()
	l.insert(d)
	return true
}

// insert places d after every delegation that does not sort after it, or at the end if unsorted.
func (l *DelegationList) insert(d Delegation) {
	if l.unsorted {
		l.dels = append(l.dels, d)
		return
	}
	pos, _ := slices.BinarySearchFunc(l.dels, d, func(x, t Delegation) int {
		if x.Compare(t) <= 0 {
			return -1
		}
		return 1
	})
	l.dels = slices.Insert(l.dels, pos, d)
}

// Erase removes delegations with the given name and, if set, the given preference.
// It returns the number removed.
func (l *DelegationList) Erase(preference optional.Optional[uint64], name enc.Name) int {
	n := len(l.dels)
	l.dels = slices.DeleteFunc(l.dels, func(d Delegation) bool {
		if p, ok := preference.Get(); ok && p != d.Preference {
			return false
		}
		return d.Name.Equal(name)
	})
	return n - len(l.dels)
}

// Sort sorts the list and keeps it sorted from now on.
func (l *DelegationList) Sort() {
	if !l.unsorted {
		return
	}
	dels := l.dels
	l.dels = make([]Delegation, 0, len(dels))
	l.unsorted = false
	for _, d := range dels {
		l.insert(d)
	}
}

// Equal compares the delegations in order. The sorted flag is not compared,
// and a nil list equals an empty one.
func (l *DelegationList) Equal(rhs *DelegationList) bool {
	return slices.EqualFunc(l.delegations(), rhs.delegations(), Delegation.Equal)
}

func (l *DelegationList) delegations() []Delegation {
	if l == nil {
		return nil
	}
	return l.dels
}

func (l *DelegationList) String() string {
	sb := strings.Builder{}
	sb.WriteRune('[')
	for i, d := range l.dels {
		if i > 0 {
			sb.WriteRune(',')
		}
		sb.WriteString(d.String())
	}
	sb.WriteRune(']')
	return sb.String()
}
