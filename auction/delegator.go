// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/pkg/errors"

	"github.com/heliosnet/helios/helios"
)

// Delegator is a third party staking through a validator's bid.
type Delegator struct {
	bondingPurse helios.URef
	stakedAmount helios.U512
	reward       helios.U512
}

// NewDelegator creates a delegator staking the given amount from the given purse.
func NewDelegator(bondingPurse helios.URef, stakedAmount helios.U512) *Delegator {
	return &Delegator{
		bondingPurse: bondingPurse,
		stakedAmount: stakedAmount,
	}
}

// BondingPurse returns the purse that was used for bonding.
func (d *Delegator) BondingPurse() helios.URef {
	return d.bondingPurse
}

// StakedAmount returns the amount of tokens staked by the delegator.
func (d *Delegator) StakedAmount() helios.U512 {
	return d.stakedAmount
}

// Reward returns the seigniorage reward of the delegator.
func (d *Delegator) Reward() helios.U512 {
	return d.reward
}

// IncreaseStake adds amount to the delegator's stake, returning the new stake.
func (d *Delegator) IncreaseStake(amount helios.U512) (helios.U512, error) {
	updated, ok := d.stakedAmount.Add(amount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	d.stakedAmount = updated
	return updated, nil
}

// DecreaseStake subtracts amount from the delegator's stake, returning the
// new stake. Delegator stakes carry no founder lock, so no lock check here.
func (d *Delegator) DecreaseStake(amount helios.U512) (helios.U512, error) {
	updated, ok := d.stakedAmount.Sub(amount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	d.stakedAmount = updated
	return updated, nil
}

// IncreaseReward adds amount to the delegator's accrued reward.
func (d *Delegator) IncreaseReward(amount helios.U512) (helios.U512, error) {
	updated, ok := d.reward.Add(amount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	d.reward = updated
	return updated, nil
}

// ZeroReward resets the accrued reward.
func (d *Delegator) ZeroReward() {
	d.reward = helios.U512{}
}

// ToBytes implements bytesrepr.Marshaler.
func (d *Delegator) ToBytes() ([]byte, error) {
	buf := make([]byte, 0, d.SerializedLength())
	purse, err := d.bondingPurse.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, purse...)
	staked, err := d.stakedAmount.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, staked...)
	reward, err := d.reward.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(buf, reward...), nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (d *Delegator) SerializedLength() int {
	return d.bondingPurse.SerializedLength() +
		d.stakedAmount.SerializedLength() +
		d.reward.SerializedLength()
}

// FromBytes implements bytesrepr.Unmarshaler.
func (d *Delegator) FromBytes(data []byte) ([]byte, error) {
	rest, err := d.bondingPurse.FromBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode bonding purse")
	}
	if rest, err = d.stakedAmount.FromBytes(rest); err != nil {
		return nil, errors.Wrap(err, "decode staked amount")
	}
	if rest, err = d.reward.FromBytes(rest); err != nil {
		return nil, errors.Wrap(err, "decode reward")
	}
	return rest, nil
}
