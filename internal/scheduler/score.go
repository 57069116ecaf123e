package scheduler

import (
	"crypto/md5"
	"math/big"
)

// SyntheticScore derives a repeatable score in [45, 95] from a hash of the
// candidate's name. It is a stand-in scoring policy for the automated
// pre-close evaluation, not a security-sensitive hash use.
func SyntheticScore(name string) int {
	if name == "" {
		name = "Unknown"
	}
	sum := md5.Sum([]byte(name))
	n := new(big.Int).SetBytes(sum[:])
	mod := new(big.Int).Mod(n, big.NewInt(51))
	return 45 + int(mod.Int64())
}
