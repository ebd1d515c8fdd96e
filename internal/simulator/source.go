package simulator

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the random stream owned by one simulator. It is not safe for
// concurrent use.
type Source struct {
	pcg *rand.PCG
	rnd *rand.Rand
}

// NewSource seeds a PCG stream. Equal seeds yield equal streams.
func NewSource(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed)
	return &Source{pcg: pcg, rnd: rand.New(pcg)}
}

// IntRange draws a uniform integer from [low, high).
func (s *Source) IntRange(low, high int) int {
	return low + s.rnd.IntN(high-low)
}

// Normal draws one sample from N(mu, sigma²).
func (s *Source) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.pcg}.Rand()
}
