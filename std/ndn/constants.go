package ndn

import enc "github.com/named-data/ndnlp/std/encoding"

// MaxNDNPacketSize is the maximum allowed NDN packet size
const MaxNDNPacketSize = 8800

const (
	TypeName           enc.TLNum = enc.TypeName
	TypeContent        enc.TLNum = 0x15
	TypeForwardingHint enc.TLNum = 0x1e
	TypeDelegation     enc.TLNum = 0x1f
	TypeLinkPreference enc.TLNum = 0x1e
)

// InsertConflictResolution decides what DelegationList.Insert does when the name is already listed.
type InsertConflictResolution int

const (
	// InsertReplace removes existing delegations with the same name before inserting.
	InsertReplace InsertConflictResolution = iota
	// InsertAppend inserts regardless of existing delegations.
	InsertAppend
	// InsertSkip inserts only if no delegation has the same name.
	InsertSkip
)

func (r InsertConflictResolution) String() string {
	switch r {
	case InsertReplace:
		return "Replace"
	case InsertAppend:
		return "Append"
	case InsertSkip:
		return "Skip"
	default:
		return "Unknown"
	}
}
