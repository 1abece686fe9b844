package prufer

import (
	"fmt"
	"math/big"
)

// Count returns the number of distinct labeled trees on n nodes, n^(n-2)
// (Cayley's formula), which is also the number of Prüfer sequences of length n-2.
// Count(1) and Count(2) are both 1.
// Errors: ErrInvalidInput when n < 1.
func Count(n int) (*big.Int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d < 1", ErrInvalidInput, n)
	}
	if n <= 2 {
		return big.NewInt(1), nil
	}

	return new(big.Int).Exp(big.NewInt(int64(n)), big.NewInt(int64(n-2)), nil), nil
}
