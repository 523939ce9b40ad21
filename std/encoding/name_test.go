package encoding_test

import (
	"testing"
	"unsafe"

	enc "github.com/named-data/ndnlp/std/encoding"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestNameFromStr(t *testing.T) {
	tu.SetT(t)

	name := tu.NoErr(enc.NameFromStr("/localhop/face/256/seq=1000"))
	require.Equal(t, 4, len(name))
	require.Equal(t, enc.NewGenericComponent("localhop"), name[0])
	require.Equal(t, enc.NewGenericComponent("256"), name[2])
	require.Equal(t, enc.NewSequenceNumComponent(1000), name[3])

	require.Equal(t, 25, name.EncodingLength())
	require.Equal(t,
		[]byte("\x07\x19\x08\x08localhop\x08\x04face\x08\x03256\x3a\x02\x03\xe8"),
		name.Bytes())
	require.Equal(t, name.Bytes()[2:], name.BytesInner())

	tu.Err(enc.NameFromStr("/face/a=b=c"))
	tu.Err(enc.NameFromStr("/face/%zz"))
}

func TestNameString(t *testing.T) {
	tu.SetT(t)

	tester := func(in, out string) {
		require.Equal(t, out, tu.NoErr(enc.NameFromStr(in)).String(), in)
	}

	tester("/ndn/edu/ucla", "/ndn/edu/ucla")
	tester("ndn/edu/ucla", "/ndn/edu/ucla")
	tester("/ndn/edu/ucla/", "/ndn/edu/ucla")
	tester("/ndn/ edu", "/ndn/%20edu")
	tester("/:?#[]@", "/%3A%3F%23%5B%5D%40")
	tester("/face/seq=5/v=1", "/face/seq=5/v=1")
	tester("/face/58=%05", "/face/seq=5")

	tester("", "/")
	tester("/", "/")
	tester("//", "//")
	tester("/ndn//ucla", "/ndn//ucla")
	tester("/ndn/./ucla", "/ndn/./ucla")
}

func TestNameFromBytes(t *testing.T) {
	tu.SetT(t)

	wire := []byte("\x07\x0a\x08\x03ndn\x08\x03edu")
	n := tu.NoErr(enc.NameFromBytes(wire))
	require.Equal(t, "/ndn/edu", n.String())
	require.Equal(t, wire, n.Bytes())

	require.Equal(t, []byte("\x07\x00"), enc.Name{}.Bytes())
	require.Equal(t, 0, len(tu.NoErr(enc.NameFromBytes([]byte("\x07\x00")))))

	require.IsType(t, enc.ErrUnexpectedType{}, tu.Err(enc.NameFromBytes([]byte("\x08\x00"))))
	tu.Err(enc.NameFromBytes([]byte("\x07\x03\x08\x05a")))
	tu.Err(enc.NameFromBytes([]byte("\x07\x02\x08\x00\x00")))
}

func TestNameCompare(t *testing.T) {
	tu.SetT(t)

	strs := []string{
		"/",
		"/sha256digest=00",
		"/sha256digest=ff",
		"//",
		"/A",
		"/A/sha256digest=00",
		"/A/B",
		"/A/B/C",
		"/A/C",
		"/A/AA",
		"/B",
		"/AA",
		"/seq=1",
		"/seq=2",
		"/21426=",
	}
	names := make([]enc.Name, len(strs))
	for i, s := range strs {
		names[i] = tu.NoErr(enc.NameFromStr(s))
	}
	for i := range names {
		for j := range names {
			require.Equal(t, i == j, names[i].Equal(names[j]))
			switch {
			case i < j:
				require.Equal(t, -1, names[i].Compare(names[j]), "%s < %s", strs[i], strs[j])
			case i > j:
				require.Equal(t, 1, names[i].Compare(names[j]), "%s > %s", strs[i], strs[j])
			default:
				require.Equal(t, 0, names[i].Compare(names[j]))
			}
		}
	}
}

func TestNameIsPrefix(t *testing.T) {
	tu.SetT(t)

	face := tu.NoErr(enc.NameFromStr("/face/256"))
	require.True(t, enc.Name{}.IsPrefix(face))
	require.True(t, face.IsPrefix(face))
	require.True(t, face.IsPrefix(tu.NoErr(enc.NameFromStr("/face/256/seq=1"))))
	require.False(t, face.IsPrefix(tu.NoErr(enc.NameFromStr("/face"))))
	require.False(t, face.IsPrefix(tu.NoErr(enc.NameFromStr("/face/257/seq=1"))))
}

func TestNameAtPrefix(t *testing.T) {
	tu.SetT(t)

	ping := tu.NoErr(enc.NameFromStr("/ndn/edu/ucla/ping"))
	for i, want := range []string{"ndn", "edu", "ucla", "ping"} {
		require.Equal(t, want, ping.At(i).String())
		require.Equal(t, want, ping.At(i-len(ping)).String())
	}
	require.Zero(t, ping.At(len(ping)))
	require.Zero(t, ping.At(-len(ping)-1))

	prefixes := map[int]string{
		-9: "/",
		-2: "/ndn/edu",
		0:  "/",
		3:  "/ndn/edu/ucla",
		9:  "/ndn/edu/ucla/ping",
	}
	for i, want := range prefixes {
		require.Equal(t, want, ping.Prefix(i).String(), "Prefix(%d)", i)
	}
}

func TestNameClone(t *testing.T) {
	tu.SetT(t)

	wire := []byte("\x07\x0a\x08\x03ndn\x08\x03edu")
	n := tu.NoErr(enc.NameFromBytes(wire))
	n2 := n.Clone()
	require.True(t, n.Equal(n2))
	require.True(t, unsafe.SliceData(n) != unsafe.SliceData(n2))

	// decoded names alias the input, clones do not
	wire[4] = 'N'
	require.Equal(t, "/Ndn/edu", n.String())
	require.Equal(t, "/ndn/edu", n2.String())
}

func TestNameHash(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/face/256/seq=1"))
	require.Equal(t, n.Hash(), n.Clone().Hash())
	require.Equal(t, n.Hash(), tu.NoErr(enc.NameFromBytes(n.Bytes())).Hash())
	require.NotEqual(t, n.Hash(), n.Prefix(-1).Hash())
	require.NotEqual(t, n[0].Hash(), n[1].Hash())
}

func TestNameAppend(t *testing.T) {
	tu.SetT(t)

	prefix := tu.NoErr(enc.NameFromStr("/face/256/z/z"))[:2]
	name1 := prefix.Append(enc.NewSequenceNumComponent(1))
	name2 := prefix.Append(enc.NewSequenceNumComponent(2))
	require.Equal(t, "/face/256/seq=1", name1.String())
	require.Equal(t, "/face/256/seq=2", name2.String())
	require.Equal(t, "/face/256", prefix.String())
	require.True(t, unsafe.SliceData(prefix) != unsafe.SliceData(name1))
}
