// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosnet/helios/bytesrepr"
)

func TestLockStateAccessors(t *testing.T) {
	l := Locked(1234)
	assert.True(t, l.IsLocked())
	release, ok := l.ReleaseTimestamp()
	require.True(t, ok)
	assert.Equal(t, uint64(1234), release)

	u := Unlocked()
	assert.False(t, u.IsLocked())
	_, ok = u.ReleaseTimestamp()
	assert.False(t, ok)
}

func TestLockStateEncoding(t *testing.T) {
	data, err := bytesrepr.Marshal(Unlocked())
	require.NoError(t, err)
	assert.Equal(t, []byte{bytesrepr.OptionNoneTag}, data)

	data, err = bytesrepr.Marshal(Locked(0x0102030405060708))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		bytesrepr.OptionSomeTag,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}, data)

	for _, state := range []LockState{Unlocked(), Locked(0), Locked(^uint64(0))} {
		data, err := bytesrepr.Marshal(state)
		require.NoError(t, err)
		require.Equal(t, state.SerializedLength(), len(data))

		var decoded LockState
		require.NoError(t, bytesrepr.Unmarshal(data, &decoded))
		assert.Equal(t, state, decoded)
	}
}

func TestLockStateDecodingRejectsBadTag(t *testing.T) {
	var decoded LockState
	err := bytesrepr.Unmarshal([]byte{2, 0, 0, 0, 0, 0, 0, 0, 0}, &decoded)
	assert.ErrorIs(t, err, bytesrepr.ErrFormat)

	err = bytesrepr.Unmarshal([]byte{bytesrepr.OptionSomeTag, 1, 2}, &decoded)
	assert.ErrorIs(t, err, bytesrepr.ErrEarlyEndOfStream)
}
