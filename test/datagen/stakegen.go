// Copyright (c) 2025 The Helios developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"

	"github.com/heliosnet/helios/helios"
)

func RandomURef() helios.URef {
	var addr [helios.URefAddrLength]byte
	rand.Read(addr[:])
	return helios.NewURef(addr, helios.AccessReadAddWrite)
}

func RandomPublicKey() helios.PublicKey {
	algo := helios.KeyAlgoEd25519
	n := helios.Ed25519KeyLength
	if mathrand.Intn(2) == 0 { //#nosec G404
		algo = helios.KeyAlgoSecp256k1
		n = helios.Secp256k1KeyLength
	}
	key := make([]byte, n)
	rand.Read(key)
	pk, err := helios.NewPublicKey(algo, key)
	if err != nil {
		panic(err)
	}
	return pk
}

// RandomU512 returns a uniformly random value up to maxBits wide, maxBits <= 512.
func RandomU512(maxBits int) helios.U512 {
	raw := make([]byte, maxBits/8)
	rand.Read(raw)
	u, ok := helios.U512FromBig(new(big.Int).SetBytes(raw))
	if !ok {
		panic("random value out of range")
	}
	return u
}

func RandIntN(n int) int {
	return mathrand.Intn(n) //#nosec G404
}
