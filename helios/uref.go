// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package helios

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/heliosnet/helios/bytesrepr"
)

const (
	// URefAddrLength length of an unforgeable reference address in bytes.
	URefAddrLength = 32
	// URefSerializedLength is the encoded size of a URef.
	URefSerializedLength = URefAddrLength + 1
)

// AccessRights is the bit set of rights a URef grants over its target.
type AccessRights byte

const (
	AccessNone  = AccessRights(0)
	AccessRead  = AccessRights(1 << 0)
	AccessWrite = AccessRights(1 << 1)
	AccessAdd   = AccessRights(1 << 2)

	AccessReadAddWrite = AccessRead | AccessAdd | AccessWrite
)

// URef is an unforgeable reference to a stored value, e.g. a token purse.
// It is identity only: this package never dereferences it.
type URef struct {
	Addr   [URefAddrLength]byte
	Rights AccessRights
}

var (
	_ json.Marshaler   = (*URef)(nil)
	_ json.Unmarshaler = (*URef)(nil)
)

// NewURef creates a URef from an address and access rights.
func NewURef(addr [URefAddrLength]byte, rights AccessRights) URef {
	return URef{Addr: addr, Rights: rights}
}

// String implements the stringer interface.
// Format: uref-<hex addr>-<3 digit rights>.
func (u URef) String() string {
	return "uref-" + hex.EncodeToString(u.Addr[:]) + "-" + rightsDigits(u.Rights)
}

func rightsDigits(r AccessRights) string {
	digits := []byte{'0', '0', '0'}
	digits[0] += byte(r) / 100
	digits[1] += byte(r) / 10 % 10
	digits[2] += byte(r) % 10
	return string(digits)
}

// ParseURef converts a string presented URef into a URef value.
func ParseURef(s string) (URef, error) {
	const prefix = "uref-"
	if !strings.HasPrefix(s, prefix) {
		return URef{}, errors.New("invalid prefix")
	}
	s = s[len(prefix):]
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 || len(parts[0]) != URefAddrLength*2 || len(parts[1]) != 3 {
		return URef{}, errors.New("invalid length")
	}

	var u URef
	if _, err := hex.Decode(u.Addr[:], []byte(parts[0])); err != nil {
		return URef{}, err
	}
	rights := 0
	for _, c := range []byte(parts[1]) {
		if c < '0' || c > '9' {
			return URef{}, errors.New("invalid access rights")
		}
		rights = rights*10 + int(c-'0')
	}
	if rights > 255 {
		return URef{}, errors.New("invalid access rights")
	}
	u.Rights = AccessRights(rights)
	return u, nil
}

// MustParseURef converts a string presented URef into a URef value, panic on error.
func MustParseURef(s string) URef {
	u, err := ParseURef(s)
	if err != nil {
		panic(err)
	}
	return u
}

// BytesToURefAddr converts a bytes slice into a URef address.
// If b is larger than the address length, b will be cropped (from the left).
// If b is smaller than the address length, b will be extended (from the left).
func BytesToURefAddr(b []byte) [URefAddrLength]byte {
	return common.BytesToHash(b)
}

// MarshalJSON implements json.Marshaler.
func (u *URef) MarshalJSON() ([]byte, error) {
	if u == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(u.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *URef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseURef(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ToBytes implements bytesrepr.Marshaler.
func (u URef) ToBytes() ([]byte, error) {
	buf := make([]byte, 0, URefSerializedLength)
	buf = append(buf, u.Addr[:]...)
	return append(buf, byte(u.Rights)), nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (u URef) SerializedLength() int {
	return URefSerializedLength
}

// FromBytes implements bytesrepr.Unmarshaler.
func (u *URef) FromBytes(data []byte) ([]byte, error) {
	addr, rest, err := bytesrepr.TakeBytes(data, URefAddrLength)
	if err != nil {
		return nil, err
	}
	rights, rest, err := bytesrepr.TakeUint8(rest)
	if err != nil {
		return nil, err
	}
	copy(u.Addr[:], addr)
	u.Rights = AccessRights(rights)
	return rest, nil
}
