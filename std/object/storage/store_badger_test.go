package storage_test

import (
	"testing"

	"github.com/named-data/ndnlp/std/object/storage"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestBadgerStore(t *testing.T) {
	tu.SetT(t)

	store, err := storage.NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	testStoreBasic(t, store)
	testStoreCanonicalOrder(t, store)
	require.NoError(t, store.Close())
}
