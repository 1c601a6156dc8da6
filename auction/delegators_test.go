// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosnet/helios/bytesrepr"
	"github.com/heliosnet/helios/helios"
	"github.com/heliosnet/helios/test/datagen"
)

func TestDelegatorsOrderIndependentOfInsertion(t *testing.T) {
	keys := make([]helios.PublicKey, 8)
	for i := range keys {
		keys[i] = datagen.RandomPublicKey()
	}

	var forward, backward Delegators
	for _, key := range keys {
		forward.Put(key, NewDelegator(datagen.RandomURef(), helios.NewU512(1)))
	}
	for i := len(keys) - 1; i >= 0; i-- {
		backward.Put(keys[i], NewDelegator(datagen.RandomURef(), helios.NewU512(1)))
	}

	fk, bk := forward.Keys(), backward.Keys()
	require.Equal(t, len(fk), len(bk))
	for i := range fk {
		assert.True(t, fk[i].Equal(bk[i]))
	}
	assert.True(t, sort.SliceIsSorted(fk, func(i, j int) bool {
		return fk[i].Cmp(fk[j]) < 0
	}))
}

func TestDelegatorsPutReplaces(t *testing.T) {
	var ds Delegators
	key := datagen.RandomPublicKey()

	ds.Put(key, NewDelegator(datagen.RandomURef(), helios.NewU512(1)))
	ds.Put(key, NewDelegator(datagen.RandomURef(), helios.NewU512(2)))

	assert.Equal(t, 1, ds.Len())
	d, ok := ds.Get(key)
	require.True(t, ok)
	assert.Equal(t, 0, d.StakedAmount().Cmp(helios.NewU512(2)))
}

func TestDelegatorsDelete(t *testing.T) {
	var ds Delegators
	key := datagen.RandomPublicKey()

	assert.False(t, ds.Delete(key))
	ds.Put(key, NewDelegator(datagen.RandomURef(), helios.NewU512(1)))
	assert.True(t, ds.Delete(key))
	assert.Equal(t, 0, ds.Len())
	_, ok := ds.Get(key)
	assert.False(t, ok)
}

func TestDelegatorsIterationStopsEarly(t *testing.T) {
	var ds Delegators
	for i := 0; i < 5; i++ {
		ds.Put(datagen.RandomPublicKey(), NewDelegator(datagen.RandomURef(), helios.NewU512(1)))
	}

	var seen int
	ds.All(func(helios.PublicKey, *Delegator) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestDelegatorsEncodingCanonical(t *testing.T) {
	var ds Delegators
	for i := 0; i < 4; i++ {
		ds.Put(datagen.RandomPublicKey(), NewDelegator(datagen.RandomURef(), datagen.RandomU512(256)))
	}

	data, err := bytesrepr.Marshal(&ds)
	require.NoError(t, err)
	require.Equal(t, ds.SerializedLength(), len(data))

	var decoded Delegators
	require.NoError(t, bytesrepr.Unmarshal(data, &decoded))
	require.Equal(t, ds.Len(), decoded.Len())

	again, err := bytesrepr.Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestDelegatorsDecodingRejectsUnsortedKeys(t *testing.T) {
	a := helios.MustParsePublicKey("01" + repeatHex("22", 32))
	b := helios.MustParsePublicKey("01" + repeatHex("11", 32))

	buf := bytesrepr.Uint32ToBytes(nil, 2)
	for _, key := range []helios.PublicKey{a, b} { // descending on purpose
		kb, err := key.ToBytes()
		require.NoError(t, err)
		buf = append(buf, kb...)
		db, err := NewDelegator(datagen.RandomURef(), helios.NewU512(1)).ToBytes()
		require.NoError(t, err)
		buf = append(buf, db...)
	}

	var decoded Delegators
	assert.ErrorIs(t, bytesrepr.Unmarshal(buf, &decoded), bytesrepr.ErrFormat)
}

func TestDelegatorsDecodingRejectsDuplicateKeys(t *testing.T) {
	key := datagen.RandomPublicKey()

	buf := bytesrepr.Uint32ToBytes(nil, 2)
	for i := 0; i < 2; i++ {
		kb, err := key.ToBytes()
		require.NoError(t, err)
		buf = append(buf, kb...)
		db, err := NewDelegator(datagen.RandomURef(), helios.NewU512(1)).ToBytes()
		require.NoError(t, err)
		buf = append(buf, db...)
	}

	var decoded Delegators
	assert.ErrorIs(t, bytesrepr.Unmarshal(buf, &decoded), bytesrepr.ErrFormat)
}

func TestDelegatorsDecodingRejectsShortCount(t *testing.T) {
	buf := bytesrepr.Uint32ToBytes(nil, 3) // promises 3 entries, delivers none
	var decoded Delegators
	assert.ErrorIs(t, bytesrepr.Unmarshal(buf, &decoded), bytesrepr.ErrEarlyEndOfStream)
}

func repeatHex(b string, n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += b
	}
	return s
}
