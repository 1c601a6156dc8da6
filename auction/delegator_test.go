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
	"github.com/heliosnet/helios/helios"
	"github.com/heliosnet/helios/test/datagen"
)

func TestNewDelegator(t *testing.T) {
	purse := datagen.RandomURef()
	d := NewDelegator(purse, helios.NewU512(30))

	assert.Equal(t, purse, d.BondingPurse())
	assert.Equal(t, 0, d.StakedAmount().Cmp(helios.NewU512(30)))
	assert.True(t, d.Reward().IsZero())
}

func TestDelegatorStakeMutation(t *testing.T) {
	d := NewDelegator(datagen.RandomURef(), helios.NewU512(100))

	updated, err := d.IncreaseStake(helios.NewU512(20))
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Cmp(helios.NewU512(120)))

	_, err = d.DecreaseStake(helios.NewU512(200))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 0, d.StakedAmount().Cmp(helios.NewU512(120)))

	updated, err = d.DecreaseStake(helios.NewU512(120))
	require.NoError(t, err)
	assert.True(t, updated.IsZero())
}

func TestDelegatorStakeOverflow(t *testing.T) {
	d := NewDelegator(datagen.RandomURef(), helios.MaxU512())
	_, err := d.IncreaseStake(helios.NewU512(1))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDelegatorReward(t *testing.T) {
	d := NewDelegator(datagen.RandomURef(), helios.NewU512(1))

	updated, err := d.IncreaseReward(helios.NewU512(9))
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Cmp(helios.NewU512(9)))

	d.ZeroReward()
	assert.True(t, d.Reward().IsZero())
}

func TestDelegatorRoundTrip(t *testing.T) {
	d := NewDelegator(datagen.RandomURef(), datagen.RandomU512(512))
	_, err := d.IncreaseReward(datagen.RandomU512(64))
	require.NoError(t, err)

	data, err := bytesrepr.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, d.SerializedLength(), len(data))

	decoded := new(Delegator)
	require.NoError(t, bytesrepr.Unmarshal(data, decoded))
	assert.Equal(t, d.BondingPurse(), decoded.BondingPurse())
	assert.Equal(t, 0, d.StakedAmount().Cmp(decoded.StakedAmount()))
	assert.Equal(t, 0, d.Reward().Cmp(decoded.Reward()))
}
