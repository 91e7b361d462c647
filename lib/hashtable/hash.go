package hashtable

import "github.com/cespare/xxhash/v2"

const (
	fnvSeed  = 0x811C9DC5
	fnvPrime = 0x01000193
	// 2^32 + 1, not 2^32.
	fnvModulus = 0x100000001
)

// Hasher maps a string key to a bucket-independent hash value.
type Hasher func(key string) uint64

// Hash is an FNV-1a style hash: every code point is xored into the
// accumulator, which is then multiplied by the FNV prime and reduced
// modulo 2^32+1.
func Hash(key string) uint64 {
	h := uint64(fnvSeed)
	for _, r := range key {
		h ^= uint64(r)
		h = (h * fnvPrime) % fnvModulus
	}

	return h
}

// XXHash hashes key with xxhash64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// HasherByName resolves a hasher from its configuration name ("fnv" or "xxhash").
func HasherByName(name string) (Hasher, bool) {
	switch name {
	case "", "fnv":
		return Hash, true
	case "xxhash":
		return XXHash, true
	}

	return nil, false
}
