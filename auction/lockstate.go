// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/heliosnet/helios/bytesrepr"
)

// LockState is the two-state lock lifecycle of a bid's funds: either
// Locked with a release timestamp, or Unlocked. The only transition is
// Locked -> Unlocked; nothing in this package re-locks.
type LockState struct {
	locked  bool
	release uint64 // epoch milliseconds, meaningful only while locked
}

// Locked creates a lock state holding funds until the given release
// timestamp (in milliseconds since epoch).
func Locked(releaseTimestampMillis uint64) LockState {
	return LockState{locked: true, release: releaseTimestampMillis}
}

// Unlocked creates a lock state with withdrawable funds.
func Unlocked() LockState {
	return LockState{}
}

// IsLocked returns true if funds are still held.
func (l LockState) IsLocked() bool {
	return l.locked
}

// ReleaseTimestamp returns the release timestamp in epoch milliseconds.
// The second return is false when the state is unlocked.
func (l LockState) ReleaseTimestamp() (uint64, bool) {
	if !l.locked {
		return 0, false
	}
	return l.release, true
}

// ToBytes implements bytesrepr.Marshaler.
// Encoded as a presence byte, followed by the timestamp when locked.
func (l LockState) ToBytes() ([]byte, error) {
	if !l.locked {
		return []byte{bytesrepr.OptionNoneTag}, nil
	}
	buf := make([]byte, 0, l.SerializedLength())
	buf = append(buf, bytesrepr.OptionSomeTag)
	return bytesrepr.Uint64ToBytes(buf, l.release), nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (l LockState) SerializedLength() int {
	if !l.locked {
		return 1
	}
	return 1 + bytesrepr.Uint64SerializedLength
}

// FromBytes implements bytesrepr.Unmarshaler.
func (l *LockState) FromBytes(data []byte) ([]byte, error) {
	tag, rest, err := bytesrepr.TakeUint8(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case bytesrepr.OptionNoneTag:
		*l = Unlocked()
		return rest, nil
	case bytesrepr.OptionSomeTag:
		release, rest, err := bytesrepr.TakeUint64(rest)
		if err != nil {
			return nil, err
		}
		*l = Locked(release)
		return rest, nil
	default:
		return nil, bytesrepr.ErrFormat
	}
}
