// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package auction holds the global-state entities of the validator auction:
// a validator's stake record (Bid), the delegators staking through it, and
// their canonical byte representations. Entities here are plain values with
// no internal locking; the execution layer serializes access to a record.
package auction

import (
	"github.com/pkg/errors"

	"github.com/heliosnet/helios/bytesrepr"
	"github.com/heliosnet/helios/helios"
)

// Bid is a validator's stake record in global state: the validator's own
// stake, its delegation terms, attached delegators, accrued seigniorage
// reward, and an optional funds lock.
//
// The field declaration order below is the canonical encoding order.
type Bid struct {
	bondingPurse   helios.URef // the purse that was used for bonding, identity only
	stakedAmount   helios.U512 // the validator's own stake, excluding delegators
	delegationRate uint8       // the validator's cut of rewards before delegator shares
	lockState      LockState
	delegators     Delegators
	reward         helios.U512 // accrued seigniorage, independent of stake
}

// LockedBid creates a bid whose funds are locked until the given release
// timestamp (in milliseconds since epoch). Locked bids start with a zero
// delegation rate.
func LockedBid(bondingPurse helios.URef, stakedAmount helios.U512, releaseTimestampMillis uint64) *Bid {
	return &Bid{
		bondingPurse: bondingPurse,
		stakedAmount: stakedAmount,
		lockState:    Locked(releaseTimestampMillis),
	}
}

// UnlockedBid creates a bid with withdrawable funds and the given delegation rate.
func UnlockedBid(bondingPurse helios.URef, stakedAmount helios.U512, delegationRate uint8) *Bid {
	return &Bid{
		bondingPurse:   bondingPurse,
		stakedAmount:   stakedAmount,
		delegationRate: delegationRate,
		lockState:      Unlocked(),
	}
}

// BondingPurse returns the purse that was used for bonding.
func (b *Bid) BondingPurse() helios.URef {
	return b.bondingPurse
}

// StakedAmount returns the amount of tokens staked by the validator,
// excluding delegators.
func (b *Bid) StakedAmount() helios.U512 {
	return b.stakedAmount
}

// DelegationRate returns the validator's delegation rate.
func (b *Bid) DelegationRate() uint8 {
	return b.delegationRate
}

// IsLocked returns true if the bid's funds are locked.
func (b *Bid) IsLocked() bool {
	return b.lockState.IsLocked()
}

// ReleaseTimestamp returns the timestamp (in milliseconds since epoch) at
// which the bid unlocks. The second return is false when the bid is unlocked.
func (b *Bid) ReleaseTimestamp() (uint64, bool) {
	return b.lockState.ReleaseTimestamp()
}

// Reward returns the accrued seigniorage reward of the validator.
func (b *Bid) Reward() helios.U512 {
	return b.reward
}

// Delegator returns the delegator registered under key, if any.
func (b *Bid) Delegator(key helios.PublicKey) (*Delegator, bool) {
	return b.delegators.Get(key)
}

// DelegatorCount returns the number of attached delegators.
func (b *Bid) DelegatorCount() int {
	return b.delegators.Len()
}

// DelegatorKeys returns the delegator public keys in ascending order.
func (b *Bid) DelegatorKeys() []helios.PublicKey {
	return b.delegators.Keys()
}

// EachDelegator calls fn for every delegator in ascending key order,
// stopping early if fn returns false.
func (b *Bid) EachDelegator(fn func(key helios.PublicKey, d *Delegator) bool) {
	b.delegators.All(fn)
}

// AddDelegator registers or replaces the delegator stored under key.
func (b *Bid) AddDelegator(key helios.PublicKey, d *Delegator) {
	b.delegators.Put(key, d)
}

// RemoveDelegator drops the delegator stored under key, reporting whether it
// existed.
func (b *Bid) RemoveDelegator(key helios.PublicKey) bool {
	return b.delegators.Delete(key)
}

// DecreaseStake subtracts amount from the validator's stake, returning the
// new stake. Fails with ErrFundsLocked while the bid is locked, and with
// ErrInvalidAmount if amount exceeds the current stake. The bid is unchanged
// on failure.
func (b *Bid) DecreaseStake(amount helios.U512) (helios.U512, error) {
	if b.IsLocked() {
		return helios.U512{}, ErrFundsLocked
	}
	updated, ok := b.stakedAmount.Sub(amount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	b.stakedAmount = updated
	return updated, nil
}

// IncreaseStake adds amount to the validator's stake, returning the new
// stake. Fails with ErrInvalidAmount on overflow; the bid is unchanged on
// failure. Stake increases are allowed while locked.
func (b *Bid) IncreaseStake(amount helios.U512) (helios.U512, error) {
	updated, ok := b.stakedAmount.Add(amount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	b.stakedAmount = updated
	return updated, nil
}

// IncreaseReward adds amount to the validator's seigniorage reward,
// returning the new reward. Fails with ErrInvalidAmount on overflow; the bid
// is unchanged on failure.
func (b *Bid) IncreaseReward(amount helios.U512) (helios.U512, error) {
	updated, ok := b.reward.Add(amount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	b.reward = updated
	return updated, nil
}

// ZeroReward resets the validator's seigniorage reward.
func (b *Bid) ZeroReward() {
	b.reward = helios.U512{}
}

// SetDelegationRate updates the validator's delegation rate. Range
// validation of the rate is the auction runtime's responsibility, not this
// entity's.
func (b *Bid) SetDelegationRate(rate uint8) {
	b.delegationRate = rate
}

// Unlock transitions the bid to unlocked if nowMillis has reached the
// release timestamp.
//
// Returns true if the bid was unlocked by this call. An already unlocked bid
// and a not-yet-due lock are both no-ops returning false.
func (b *Bid) Unlock(nowMillis uint64) bool {
	release, locked := b.lockState.ReleaseTimestamp()
	if !locked {
		return false
	}
	if nowMillis < release {
		return false
	}
	b.lockState = Unlocked()
	return true
}

// TotalStakedAmount returns the stake of the validator plus all delegators,
// folding the delegator stakes in key order with checked addition. Fails
// with ErrInvalidAmount if the sum leaves the unsigned 512-bit range.
func (b *Bid) TotalStakedAmount() (helios.U512, error) {
	total := helios.U512{}
	ok := true
	b.delegators.All(func(_ helios.PublicKey, d *Delegator) bool {
		total, ok = total.Add(d.StakedAmount())
		return ok
	})
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	total, ok = total.Add(b.stakedAmount)
	if !ok {
		return helios.U512{}, ErrInvalidAmount
	}
	return total, nil
}

// ToBytes implements bytesrepr.Marshaler.
func (b *Bid) ToBytes() ([]byte, error) {
	buf := make([]byte, 0, b.SerializedLength())
	purse, err := b.bondingPurse.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, purse...)
	staked, err := b.stakedAmount.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, staked...)
	buf = bytesrepr.Uint8ToBytes(buf, b.delegationRate)
	lock, err := b.lockState.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, lock...)
	delegators, err := b.delegators.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, delegators...)
	reward, err := b.reward.ToBytes()
	if err != nil {
		return nil, err
	}
	return append(buf, reward...), nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (b *Bid) SerializedLength() int {
	return b.bondingPurse.SerializedLength() +
		b.stakedAmount.SerializedLength() +
		bytesrepr.Uint8SerializedLength +
		b.lockState.SerializedLength() +
		b.delegators.SerializedLength() +
		b.reward.SerializedLength()
}

// FromBytes implements bytesrepr.Unmarshaler.
func (b *Bid) FromBytes(data []byte) ([]byte, error) {
	rest, err := b.bondingPurse.FromBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode bonding purse")
	}
	if rest, err = b.stakedAmount.FromBytes(rest); err != nil {
		return nil, errors.Wrap(err, "decode staked amount")
	}
	if b.delegationRate, rest, err = bytesrepr.TakeUint8(rest); err != nil {
		return nil, errors.Wrap(err, "decode delegation rate")
	}
	if rest, err = b.lockState.FromBytes(rest); err != nil {
		return nil, errors.Wrap(err, "decode lock state")
	}
	if rest, err = b.delegators.FromBytes(rest); err != nil {
		return nil, errors.Wrap(err, "decode delegators")
	}
	if rest, err = b.reward.FromBytes(rest); err != nil {
		return nil, errors.Wrap(err, "decode reward")
	}
	return rest, nil
}
