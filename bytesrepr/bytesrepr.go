// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bytesrepr implements the canonical byte representation used for
// global-state values. Encoding is deterministic: the same logical value
// always serializes to the same bytes, on every node. Values are
// self-delimiting, so composite types concatenate field encodings without
// external framing and decode field by field, each decoder consuming its
// prefix and handing the remainder to the next.
package bytesrepr

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrEarlyEndOfStream means the input ended before the value was complete.
	ErrEarlyEndOfStream = errors.New("bytesrepr: early end of stream")
	// ErrFormat means the input carried an invalid discriminant or layout.
	ErrFormat = errors.New("bytesrepr: invalid format")
	// ErrLeftoverBytes means a full decode left trailing bytes unconsumed.
	ErrLeftoverBytes = errors.New("bytesrepr: left-over bytes")
	// ErrLengthMismatch means an encoder produced a different number of bytes
	// than its SerializedLength reported.
	ErrLengthMismatch = errors.New("bytesrepr: serialized length mismatch")
)

// Option tags prefix optional values on the wire.
const (
	OptionNoneTag = byte(0)
	OptionSomeTag = byte(1)
)

const (
	// Uint8SerializedLength is the encoded size of a uint8.
	Uint8SerializedLength = 1
	// BoolSerializedLength is the encoded size of a bool.
	BoolSerializedLength = 1
	// Uint32SerializedLength is the encoded size of a uint32.
	Uint32SerializedLength = 4
	// Uint64SerializedLength is the encoded size of a uint64.
	Uint64SerializedLength = 8
)

// Marshaler is a value with a canonical byte representation.
type Marshaler interface {
	// ToBytes returns the canonical encoding.
	ToBytes() ([]byte, error)
	// SerializedLength returns the exact length of ToBytes' output.
	SerializedLength() int
}

// Unmarshaler reconstructs a value from the prefix of a byte stream.
type Unmarshaler interface {
	// FromBytes consumes the value's encoding from the front of data and
	// returns the unconsumed remainder.
	FromBytes(data []byte) (rest []byte, err error)
}

// Marshal encodes v and verifies the output length against
// v.SerializedLength. The two must never diverge; a mismatch is a bug in the
// value's codec, reported as ErrLengthMismatch rather than silently stored.
func Marshal(v Marshaler) ([]byte, error) {
	data, err := v.ToBytes()
	if err != nil {
		return nil, err
	}
	if len(data) != v.SerializedLength() {
		return nil, ErrLengthMismatch
	}
	return data, nil
}

// Unmarshal decodes a complete value from data. The whole input must be
// consumed; trailing bytes are reported as ErrLeftoverBytes.
func Unmarshal(data []byte, v Unmarshaler) error {
	rest, err := v.FromBytes(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return ErrLeftoverBytes
	}
	return nil
}

// Uint8ToBytes appends the encoding of v to buf.
func Uint8ToBytes(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// TakeUint8 splits a uint8 off the front of data.
func TakeUint8(data []byte) (uint8, []byte, error) {
	if len(data) < Uint8SerializedLength {
		return 0, nil, ErrEarlyEndOfStream
	}
	return data[0], data[1:], nil
}

// BoolToBytes appends the encoding of v to buf.
func BoolToBytes(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// TakeBool splits a bool off the front of data. Only 0 and 1 are valid.
func TakeBool(data []byte) (bool, []byte, error) {
	if len(data) < BoolSerializedLength {
		return false, nil, ErrEarlyEndOfStream
	}
	switch data[0] {
	case 0:
		return false, data[1:], nil
	case 1:
		return true, data[1:], nil
	default:
		return false, nil, ErrFormat
	}
}

// Uint32ToBytes appends the little-endian encoding of v to buf.
func Uint32ToBytes(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// TakeUint32 splits a little-endian uint32 off the front of data.
func TakeUint32(data []byte) (uint32, []byte, error) {
	if len(data) < Uint32SerializedLength {
		return 0, nil, ErrEarlyEndOfStream
	}
	return binary.LittleEndian.Uint32(data), data[Uint32SerializedLength:], nil
}

// Uint64ToBytes appends the little-endian encoding of v to buf.
func Uint64ToBytes(buf []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(buf, v)
}

// TakeUint64 splits a little-endian uint64 off the front of data.
func TakeUint64(data []byte) (uint64, []byte, error) {
	if len(data) < Uint64SerializedLength {
		return 0, nil, ErrEarlyEndOfStream
	}
	return binary.LittleEndian.Uint64(data), data[Uint64SerializedLength:], nil
}

// TakeBytes splits a fixed-size prefix of n bytes off the front of data.
// The returned slice aliases data.
func TakeBytes(data []byte, n int) ([]byte, []byte, error) {
	if len(data) < n {
		return nil, nil, ErrEarlyEndOfStream
	}
	return data[:n], data[n:], nil
}
