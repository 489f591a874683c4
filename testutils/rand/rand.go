package rand

import (
	"math/rand"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// I64Between returns a random int64 in [lower, upper)
func I64Between(lower int64, upper int64) int64 {
	return lower + rand.Int63n(upper-lower)
}

// Uint64Between returns a random uint64 in [lower, upper)
func Uint64Between(lower uint64, upper uint64) uint64 {
	return uint64(I64Between(int64(lower), int64(upper)))
}

// Bool returns true with probability 1/2
func Bool() bool {
	return rand.Intn(2) == 0
}

// Bytes returns a random byte slice of the given length
func Bytes(length int) []byte {
	bz := make([]byte, length)
	rand.Read(bz)

	return bz
}

// Str returns a random alphanumeric string of the given length
func Str(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteByte(letters[rand.Intn(len(letters))])
	}

	return sb.String()
}

// StrBetween returns a random alphanumeric string with a length in [lower, upper)
func StrBetween(lower int, upper int) string {
	return Str(int(I64Between(int64(lower), int64(upper))))
}

// Address returns a random EVM address
func Address() common.Address {
	return common.BytesToAddress(Bytes(common.AddressLength))
}

// Of returns a random element of the given values
func Of[T any](values ...T) T {
	return values[rand.Intn(len(values))]
}
