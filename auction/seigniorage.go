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

// SeigniorageRecipient is the reward-distribution view of a bid: the
// validator's stake, its delegation rate and each delegator's stake, with
// none of the bid's purse or lock bookkeeping. Snapshots of these, taken per
// era, are what the reward calculation runs over.
type SeigniorageRecipient struct {
	stake           helios.U512
	delegationRate  uint8
	delegatorKeys   []helios.PublicKey // ascending, parallel to delegatorStakes
	delegatorStakes []helios.U512
}

// NewSeigniorageRecipient snapshots the reward-relevant state of a bid.
func NewSeigniorageRecipient(bid *Bid) *SeigniorageRecipient {
	r := &SeigniorageRecipient{
		stake:          bid.StakedAmount(),
		delegationRate: bid.DelegationRate(),
	}
	bid.EachDelegator(func(key helios.PublicKey, d *Delegator) bool {
		r.delegatorKeys = append(r.delegatorKeys, key)
		r.delegatorStakes = append(r.delegatorStakes, d.StakedAmount())
		return true
	})
	return r
}

// Stake returns the validator's own stake at snapshot time.
func (r *SeigniorageRecipient) Stake() helios.U512 {
	return r.stake
}

// DelegationRate returns the validator's delegation rate at snapshot time.
func (r *SeigniorageRecipient) DelegationRate() uint8 {
	return r.delegationRate
}

// DelegatorStake returns the stake snapshotted for the given delegator key.
func (r *SeigniorageRecipient) DelegatorStake(key helios.PublicKey) (helios.U512, bool) {
	i := sort.Search(len(r.delegatorKeys), func(i int) bool {
		return r.delegatorKeys[i].Cmp(key) >= 0
	})
	if i < len(r.delegatorKeys) && r.delegatorKeys[i].Equal(key) {
		return r.delegatorStakes[i], true
	}
	return helios.U512{}, false
}

// DelegatorCount returns the number of snapshotted delegators.
func (r *SeigniorageRecipient) DelegatorCount() int {
	return len(r.delegatorKeys)
}

// TotalStake returns the validator's stake plus all snapshotted delegator
// stakes, using checked addition. Fails with ErrInvalidAmount on overflow.
func (r *SeigniorageRecipient) TotalStake() (helios.U512, error) {
	total := r.stake
	for _, s := range r.delegatorStakes {
		var ok bool
		if total, ok = total.Add(s); !ok {
			return helios.U512{}, ErrInvalidAmount
		}
	}
	return total, nil
}

// ToBytes implements bytesrepr.Marshaler.
func (r *SeigniorageRecipient) ToBytes() ([]byte, error) {
	buf := make([]byte, 0, r.SerializedLength())
	stake, err := r.stake.ToBytes()
	if err != nil {
		return nil, err
	}
	buf = append(buf, stake...)
	buf = bytesrepr.Uint8ToBytes(buf, r.delegationRate)
	buf = bytesrepr.Uint32ToBytes(buf, uint32(len(r.delegatorKeys)))
	for i, key := range r.delegatorKeys {
		kb, err := key.ToBytes()
		if err != nil {
			return nil, err
		}
		sb, err := r.delegatorStakes[i].ToBytes()
		if err != nil {
			return nil, err
		}
		buf = append(buf, kb...)
		buf = append(buf, sb...)
	}
	return buf, nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (r *SeigniorageRecipient) SerializedLength() int {
	n := r.stake.SerializedLength() +
		bytesrepr.Uint8SerializedLength +
		bytesrepr.Uint32SerializedLength
	for i, key := range r.delegatorKeys {
		n += key.SerializedLength() + r.delegatorStakes[i].SerializedLength()
	}
	return n
}

// FromBytes implements bytesrepr.Unmarshaler.
func (r *SeigniorageRecipient) FromBytes(data []byte) ([]byte, error) {
	rest, err := r.stake.FromBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode stake")
	}
	if r.delegationRate, rest, err = bytesrepr.TakeUint8(rest); err != nil {
		return nil, errors.Wrap(err, "decode delegation rate")
	}
	count, rest, err := bytesrepr.TakeUint32(rest)
	if err != nil {
		return nil, errors.Wrap(err, "decode count")
	}
	keys := make([]helios.PublicKey, 0, min(int(count), 1024))
	stakes := make([]helios.U512, 0, min(int(count), 1024))
	for i := 0; i < int(count); i++ {
		var key helios.PublicKey
		if rest, err = key.FromBytes(rest); err != nil {
			return nil, errors.Wrapf(err, "decode key %d", i)
		}
		if len(keys) > 0 && keys[len(keys)-1].Cmp(key) >= 0 {
			return nil, bytesrepr.ErrFormat
		}
		var stake helios.U512
		if rest, err = stake.FromBytes(rest); err != nil {
			return nil, errors.Wrapf(err, "decode stake %d", i)
		}
		keys = append(keys, key)
		stakes = append(stakes, stake)
	}
	r.delegatorKeys = keys
	r.delegatorStakes = stakes
	return rest, nil
}
