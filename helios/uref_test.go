// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package helios

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliosnet/helios/bytesrepr"
)

func randomURef() URef {
	var addr [URefAddrLength]byte
	rand.Read(addr[:])
	return NewURef(addr, AccessReadAddWrite)
}

func TestURefString(t *testing.T) {
	u := NewURef([URefAddrLength]byte{0x2a}, AccessReadAddWrite)
	s := u.String()
	assert.Equal(t, "uref-2a00000000000000000000000000000000000000000000000000000000000000-007", s)

	parsed, err := ParseURef(s)
	require.NoError(t, err)
	assert.Equal(t, u, parsed)
}

func TestParseURefErrors(t *testing.T) {
	_, err := ParseURef("2a00-007")
	assert.Error(t, err)

	_, err = ParseURef("uref-2a00-007")
	assert.Error(t, err)

	_, err = ParseURef("uref-2a00000000000000000000000000000000000000000000000000000000000000-0x7")
	assert.Error(t, err)
}

func TestURefJSON(t *testing.T) {
	u := randomURef()
	data, err := json.Marshal(&u)
	require.NoError(t, err)

	var decoded URef
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, u, decoded)
}

func TestURefEncoding(t *testing.T) {
	u := randomURef()
	data, err := bytesrepr.Marshal(u)
	require.NoError(t, err)
	require.Equal(t, URefSerializedLength, len(data))
	assert.Equal(t, u.Addr[:], data[:URefAddrLength])
	assert.Equal(t, byte(u.Rights), data[URefAddrLength])

	var decoded URef
	require.NoError(t, bytesrepr.Unmarshal(data, &decoded))
	assert.Equal(t, u, decoded)

	assert.ErrorIs(t, bytesrepr.Unmarshal(data[:10], &decoded), bytesrepr.ErrEarlyEndOfStream)
}

func TestBytesToURefAddr(t *testing.T) {
	addr := BytesToURefAddr([]byte{1, 2, 3})
	// extended from the left
	assert.Equal(t, byte(3), addr[31])
	assert.Equal(t, byte(0), addr[0])
}
