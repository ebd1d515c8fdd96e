package simulator

import (
	"fmt"

	"FiscalSim/internal/model"
)

// Simulator generates fiscal years for one parameter set. It owns its random
// stream; successive calls to Year continue that stream. Use one Simulator
// per goroutine.
type Simulator struct {
	params model.Params
	src    *Source
}

// New validates p and seeds a fresh stream from p.Seed.
func New(p model.Params) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{params: p, src: NewSource(p.Seed)}, nil
}

// Year simulates one full fiscal year. Off-season gaps are drawn first, then
// spring, then fall; the values are laid out in calendar order.
func (s *Simulator) Year() (model.Series, error) {
	layout := model.NewLayout(s.params)
	baseline := s.params.BaselineMean()

	offA := s.OffSeason(layout.OffA.Len(), baseline)
	offB := s.OffSeason(layout.OffB.Len(), baseline)
	offC := s.OffSeason(layout.OffC.Len(), baseline)

	spring, err := s.Season(s.params.Spring())
	if err != nil {
		return nil, fmt.Errorf("spring season: %w", err)
	}
	fall, err := s.Season(s.params.Fall())
	if err != nil {
		return nil, fmt.Errorf("fall season: %w", err)
	}

	series, err := Assemble(offA, spring, offB, fall, offC)
	if err != nil {
		return nil, fmt.Errorf("assemble year: %w", err)
	}
	return series, nil
}

// Simulate is a convenience for a single year with a fresh simulator.
func Simulate(p model.Params) (model.Series, error) {
	s, err := New(p)
	if err != nil {
		return nil, err
	}
	return s.Year()
}
