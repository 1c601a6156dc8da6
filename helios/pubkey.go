// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package helios

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/heliosnet/helios/bytesrepr"
)

// KeyAlgo tags the signature scheme a public key belongs to.
type KeyAlgo byte

const (
	KeyAlgoEd25519   = KeyAlgo(1)
	KeyAlgoSecp256k1 = KeyAlgo(2)

	// Ed25519KeyLength length of an ed25519 public key in bytes.
	Ed25519KeyLength = 32
	// Secp256k1KeyLength length of a compressed secp256k1 public key in bytes.
	Secp256k1KeyLength = 33
)

func (a KeyAlgo) String() string {
	switch a {
	case KeyAlgoEd25519:
		return "ed25519"
	case KeyAlgoSecp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

func keyLength(algo KeyAlgo) (int, bool) {
	switch algo {
	case KeyAlgoEd25519:
		return Ed25519KeyLength, true
	case KeyAlgoSecp256k1:
		return Secp256k1KeyLength, true
	default:
		return 0, false
	}
}

// PublicKey is an account public key, tagged with its signature scheme.
// Keys are totally ordered: first by algorithm tag, then by raw key bytes.
// That order equals the lexicographic order of the canonical encoding.
type PublicKey struct {
	algo KeyAlgo
	key  []byte
}

var (
	_ json.Marshaler   = (*PublicKey)(nil)
	_ json.Unmarshaler = (*PublicKey)(nil)
)

// NewPublicKey creates a PublicKey from an algorithm tag and raw key bytes.
func NewPublicKey(algo KeyAlgo, key []byte) (PublicKey, error) {
	n, ok := keyLength(algo)
	if !ok {
		return PublicKey{}, errors.New("unknown key algorithm")
	}
	if len(key) != n {
		return PublicKey{}, errors.New("invalid key length")
	}
	return PublicKey{algo: algo, key: bytes.Clone(key)}, nil
}

// Algo returns the key's signature scheme tag.
func (p PublicKey) Algo() KeyAlgo {
	return p.algo
}

// Bytes returns a copy of the raw key bytes.
func (p PublicKey) Bytes() []byte {
	return bytes.Clone(p.key)
}

// Equal reports whether two keys are identical.
func (p PublicKey) Equal(other PublicKey) bool {
	return p.algo == other.algo && bytes.Equal(p.key, other.key)
}

// Cmp compares with another PublicKey.
// Returns:
//
//	-1 if p <  other
//	 0 if p == other
//	+1 if p >  other
func (p PublicKey) Cmp(other PublicKey) int {
	if p.algo != other.algo {
		if p.algo < other.algo {
			return -1
		}
		return 1
	}
	return bytes.Compare(p.key, other.key)
}

// AccountHash derives the 32-byte account address owned by this key:
// blake2b-256 over the lowercase algorithm name, a zero separator byte and
// the raw key bytes.
func (p PublicKey) AccountHash() [32]byte {
	preimage := make([]byte, 0, len(p.algo.String())+1+len(p.key))
	preimage = append(preimage, p.algo.String()...)
	preimage = append(preimage, 0)
	preimage = append(preimage, p.key...)
	return blake2b.Sum256(preimage)
}

// String implements the stringer interface.
// Format: <2 hex digit algo tag><hex key bytes>.
func (p PublicKey) String() string {
	return hex.EncodeToString([]byte{byte(p.algo)}) + hex.EncodeToString(p.key)
}

// ParsePublicKey converts a string presented key into a PublicKey value.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return PublicKey{}, err
	}
	if len(raw) < 1 {
		return PublicKey{}, errors.New("invalid length")
	}
	return NewPublicKey(KeyAlgo(raw[0]), raw[1:])
}

// MustParsePublicKey converts a string presented key into a PublicKey value, panic on error.
func MustParsePublicKey(s string) PublicKey {
	p, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalJSON implements json.Marshaler.
func (p *PublicKey) MarshalJSON() ([]byte, error) {
	if p == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ToBytes implements bytesrepr.Marshaler.
func (p PublicKey) ToBytes() ([]byte, error) {
	if _, ok := keyLength(p.algo); !ok {
		return nil, bytesrepr.ErrFormat
	}
	buf := make([]byte, 0, p.SerializedLength())
	buf = append(buf, byte(p.algo))
	return append(buf, p.key...), nil
}

// SerializedLength implements bytesrepr.Marshaler.
func (p PublicKey) SerializedLength() int {
	return 1 + len(p.key)
}

// FromBytes implements bytesrepr.Unmarshaler.
func (p *PublicKey) FromBytes(data []byte) ([]byte, error) {
	tag, rest, err := bytesrepr.TakeUint8(data)
	if err != nil {
		return nil, err
	}
	n, ok := keyLength(KeyAlgo(tag))
	if !ok {
		return nil, bytesrepr.ErrFormat
	}
	key, rest, err := bytesrepr.TakeBytes(rest, n)
	if err != nil {
		return nil, err
	}
	p.algo = KeyAlgo(tag)
	p.key = bytes.Clone(key)
	return rest, nil
}
