package checksum

import (
	"crypto/sha256"
	"encoding/binary"
)

// CalculateCheckSum returns the first four bytes of the SHA-256 digest of data.
func CalculateCheckSum(data []byte) int {
	sum := sha256.Sum256(data)

	return int(binary.BigEndian.Uint32(sum[:4]))
}

func Verify(data []byte, checkSum int) bool {
	return CalculateCheckSum(data) == checkSum
}
