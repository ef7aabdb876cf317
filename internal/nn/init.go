package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/autograd/internal/vector"
)

// Xavier draws n values from U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
//
// A nil rng uses the package-level source.
func Xavier(n, fanIn, fanOut int, rng *rand.Rand) vector.Vector {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	data := make([]float64, n)
	for i := range data {
		data[i] = (uniform(rng)*2.0 - 1.0) * bound
	}
	return vector.MustNew(data...)
}

func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		//nolint:gosec // Weight initialization is not security-critical
		return rand.Float64()
	}
	return rng.Float64()
}
