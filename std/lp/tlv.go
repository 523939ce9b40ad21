package lp

import enc "github.com/named-data/ndnlp/std/encoding"

const (
	TypeLpPacket enc.TLNum = 0x64

	// Bare network layer packets accepted in place of an LpPacket.
	TypeInterest enc.TLNum = 0x05
	TypeData     enc.TLNum = 0x06
)

const (
	TypeFragment           enc.TLNum = 0x50
	TypeSequence           enc.TLNum = 0x51
	TypeFragIndex          enc.TLNum = 0x52
	TypeFragCount          enc.TLNum = 0x53
	TypePitToken           enc.TLNum = 0x62
	TypeNack               enc.TLNum = 0x0320
	TypeNackReason         enc.TLNum = 0x0321
	TypeIncomingFaceId     enc.TLNum = 0x032c
	TypeNextHopFaceId      enc.TLNum = 0x0330
	TypeCachePolicy        enc.TLNum = 0x0334
	TypeCachePolicyType    enc.TLNum = 0x0335
	TypeCongestionMark     enc.TLNum = 0x0340
	TypeAck                enc.TLNum = 0x0344
	TypeTxSequence         enc.TLNum = 0x0348
	TypeNonDiscovery       enc.TLNum = 0x034c
	TypePrefixAnnouncement enc.TLNum = 0x0350
)

// HEADER3 is the TLV-TYPE range reserved for link protocol header extensions.
const (
	Header3Min enc.TLNum = 800
	Header3Max enc.TLNum = 959
)

// MaxPitTokenLength is the longest PIT token a forwarder must accept.
const MaxPitTokenLength = 32
