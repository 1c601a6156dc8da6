// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/heliosnet/helios/bytesrepr"
	"github.com/heliosnet/helios/helios"
)

// Delegators maps delegator public keys to their entries, kept sorted by the
// key's total order. The ordering is load-bearing: canonical encoding and
// deterministic aggregation both iterate it in key order, so a hash map
// cannot back this type.
type Delegators struct {
	entries []delegatorEntry
}

type delegatorEntry struct {
	key   helios.PublicKey
	value *Delegator
}

// Len returns the number of delegators.
func (ds *Delegators) Len() int {
	return len(ds.entries)
}

// search returns the index where key is or would be inserted.
func (ds *Delegators) search(key helios.PublicKey) int {
	return sort.Search(len(ds.entries), func(i int) bool {
		return ds.entries[i].key.Cmp(key) >= 0
	})
}

// Get returns the delegator stored under key, if any.
func (ds *Delegators) Get(key helios.PublicKey) (*Delegator, bool) {
	i := ds.search(key)
	if i < len(ds.entries) && ds.entries[i].key.Equal(key) {
		return ds.entries[i].value, true
	}
	return nil, false
}

// Put inserts or replaces the delegator stored under key.
func (ds *Delegators) Put(key helios.PublicKey, value *Delegator) {
	i := ds.search(key)
	if i < len(ds.entries) && ds.entries[i].key.Equal(key) {
		ds.entries[i].value = value
		return
	}
	ds.entries = append(ds.entries, delegatorEntry{})
	copy(ds.entries[i+1:], ds.entries[i:])
	ds.entries[i] = delegatorEntry{key: key, value: value}
}

// Delete removes the delegator stored under key, reporting whether it existed.
func (ds *Delegators) Delete(key helios.PublicKey) bool {
	i := ds.search(key)
	if i >= len(ds.entries) || !ds.entries[i].key.Equal(key) {
		return false
	}
	ds.entries = append(ds.entries[:i], ds.entries[i+1:]...)
	return true
}

// Keys returns the delegator public keys in ascending order.
func (ds *Delegators) Keys() []helios.PublicKey {
	keys := make([]helios.PublicKey, len(ds.entries))
	for i, e := range ds.entries {
		keys[i] = e.key
	}
	return keys
}

// All calls fn for every delegator in ascending key order, stopping early if
// fn returns false.
func (ds *Delegators) All(fn func(key helios.PublicKey, value *Delegator) bool) {
	for _, e := range ds.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// ToBytes implements bytesrepr.Marshaler.
// Encoded as a u32 count followed by (key | delegator) pairs in key order.
func (ds *Delegators) ToBytes() ([]byte, error) {
	buf := make([]byte, 0, ds.SerializedLength())
	buf = bytesrepr.Uint32ToBytes(buf, uint32(len(ds.entries)))
	for _, e := range ds.entries {
		kb, err := e.key.ToBytes()
		if err != nil {
			return nil, err
		}
		vb, err := e.value.ToBytes()
		if err != nil {
			return nil, err
		}
		buf = append(buf, kb...)
		buf = append(buf, vb...)
	}
	return buf, nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (ds *Delegators) SerializedLength() int {
	n := bytesrepr.Uint32SerializedLength
	for _, e := range ds.entries {
		n += e.key.SerializedLength() + e.value.SerializedLength()
	}
	return n
}

// FromBytes implements bytesrepr.Unmarshaler.
// Keys must arrive strictly ascending; anything else is a malformed,
// non-canonical stream.
func (ds *Delegators) FromBytes(data []byte) ([]byte, error) {
	count, rest, err := bytesrepr.TakeUint32(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode count")
	}
	entries := make([]delegatorEntry, 0, min(int(count), 1024))
	for i := 0; i < int(count); i++ {
		var key helios.PublicKey
		if rest, err = key.FromBytes(rest); err != nil {
			return nil, errors.Wrapf(err, "decode key %d", i)
		}
		if len(entries) > 0 && entries[len(entries)-1].key.Cmp(key) >= 0 {
			return nil, bytesrepr.ErrFormat
		}
		value := new(Delegator)
		if rest, err = value.FromBytes(rest); err != nil {
			return nil, errors.Wrapf(err, "decode delegator %d", i)
		}
		entries = append(entries, delegatorEntry{key: key, value: value})
	}
	ds.entries = entries
	return rest, nil
}
