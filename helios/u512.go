// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package helios

import (
	"errors"
	"math/big"

	"github.com/heliosnet/helios/bytesrepr"
)

// U512MaxSerializedLength is the largest encoded size of a U512.
const U512MaxSerializedLength = 1 + 64

var maxU512 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 512), big.NewInt(1))

// U512 is an unsigned 512-bit integer.
// It can be used as a value without state sharing; the zero value is 0.
type U512 struct {
	value *big.Int
}

// NewU512 creates a U512 from a uint64.
func NewU512(v uint64) U512 {
	if v == 0 {
		return U512{}
	}
	return U512{value: new(big.Int).SetUint64(v)}
}

// U512FromBig creates a U512 from a big.Int.
// Returns false if bi is negative or exceeds 2^512-1.
func U512FromBig(bi *big.Int) (U512, bool) {
	if bi.Sign() < 0 || bi.Cmp(maxU512) > 0 {
		return U512{}, false
	}
	var u U512
	u.setBig(bi)
	return u, true
}

// MaxU512 returns 2^512-1.
func MaxU512() U512 {
	return U512{value: new(big.Int).Set(maxU512)}
}

func (u *U512) setBig(bi *big.Int) {
	if bi.Sign() == 0 {
		u.value = nil
		return
	}
	u.value = new(big.Int).Set(bi)
}

// ToBig converts to big.Int.
func (u U512) ToBig() *big.Int {
	if u.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.value)
}

// IsZero returns true if u presents a zero value.
func (u U512) IsZero() bool {
	return u.value == nil || u.value.Sign() == 0
}

// Cmp compares with another U512.
// Returns:
//
//	-1 if u <  other
//	 0 if u == other
//	+1 if u >  other
func (u U512) Cmp(other U512) int {
	return u.ToBig().Cmp(other.ToBig())
}

// Add returns u + other.
// Returns false if the sum exceeds 2^512-1; u is unmodified either way.
func (u U512) Add(other U512) (U512, bool) {
	sum := new(big.Int).Add(u.ToBig(), other.ToBig())
	if sum.Cmp(maxU512) > 0 {
		return U512{}, false
	}
	var r U512
	r.setBig(sum)
	return r, true
}

// Sub returns u - other.
// Returns false if other > u; u is unmodified either way.
func (u U512) Sub(other U512) (U512, bool) {
	diff := new(big.Int).Sub(u.ToBig(), other.ToBig())
	if diff.Sign() < 0 {
		return U512{}, false
	}
	var r U512
	r.setBig(diff)
	return r, true
}

// String implements Stringer.
func (u U512) String() string {
	return u.ToBig().String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u U512) MarshalText() ([]byte, error) {
	return u.ToBig().MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *U512) UnmarshalText(text []byte) error {
	bi := new(big.Int)
	if err := bi.UnmarshalText(text); err != nil {
		return err
	}
	if bi.Sign() < 0 || bi.Cmp(maxU512) > 0 {
		return errors.New("value out of the unsigned 512-bit range")
	}
	u.setBig(bi)
	return nil
}

// ToBytes implements bytesrepr.Marshaler.
// The encoding is a 1-byte length n (0..64) followed by the n little-endian
// bytes of the value, with no trailing zero byte.
func (u U512) ToBytes() ([]byte, error) {
	if u.IsZero() {
		return []byte{0}, nil
	}
	le := u.value.Bytes() // big-endian, minimal
	for i, j := 0, len(le)-1; i < j; i, j = i+1, j-1 {
		le[i], le[j] = le[j], le[i]
	}
	buf := make([]byte, 0, 1+len(le))
	buf = append(buf, byte(len(le)))
	return append(buf, le...), nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (u U512) SerializedLength() int {
	if u.IsZero() {
		return 1
	}
	return 1 + (u.value.BitLen()+7)/8
}

// FromBytes implements bytesrepr.Unmarshaler.
func (u *U512) FromBytes(data []byte) ([]byte, error) {
	n, rest, err := bytesrepr.TakeUint8(data)
	if err != nil {
		return nil, err
	}
	if n > 64 {
		return nil, bytesrepr.ErrFormat
	}
	le, rest, err := bytesrepr.TakeBytes(rest, int(n))
	if err != nil {
		return nil, err
	}
	if n > 0 && le[n-1] == 0 {
		// non-minimal representations break canonicity
		return nil, bytesrepr.ErrFormat
	}
	be := make([]byte, n)
	for i := range le {
		be[int(n)-1-i] = le[i]
	}
	u.setBig(new(big.Int).SetBytes(be))
	return rest, nil
}
