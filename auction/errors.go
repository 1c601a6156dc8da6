// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import "errors"

var (
	// ErrFundsLocked is returned when a stake decrease is attempted on a bid
	// whose funds are still lock-vested.
	ErrFundsLocked = errors.New("auction: validator funds are locked")

	// ErrInvalidAmount is returned when a checked amount operation would
	// overflow or underflow the unsigned 512-bit range.
	ErrInvalidAmount = errors.New("auction: invalid amount")
)
