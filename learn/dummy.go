package learn

import (
	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/rng"
)

// Dummy is a minimal, fully in-memory Environment: a single float64
// observation vector that each action perturbs by a fixed per-action
// delta, a score that accumulates the observation's sum, and a fixed
// episode length. It exists purely so the mutator, tpg and progexec
// packages have something concrete to execute against in tests, the way
// the teacher's dummy package stands in for a real tile/buffer
// implementation.
type Dummy struct {
	obs        *data.PrimitiveArray[float64]
	deltas     []float64
	score      float64
	step       int
	episodeLen int
	rng        *rng.RNG
	seed       uint64
	mode       Mode
}

// NewDummy creates a Dummy with the given observation width, one delta per
// action, and episodeLen steps per episode.
func NewDummy(obsWidth int, deltas []float64, episodeLen int) *Dummy {
	return &Dummy{
		obs:        data.NewPrimitiveArray[float64](data.Float64, obsWidth, "dummy.obs"),
		deltas:     append([]float64(nil), deltas...),
		episodeLen: episodeLen,
	}
}

// Reset reseeds the internal RNG, zeroes the observation vector and score,
// and restarts the episode step counter.
func (d *Dummy) Reset(seed uint64, mode Mode) {
	d.seed = seed
	d.mode = mode
	d.rng = rng.New(seed)
	d.obs.Reset()
	d.score = 0
	d.step = 0
}

// DoAction adds deltas[actionID] to every observation slot (scaled by a
// small random jitter from the episode's RNG, so repeated actions don't
// collapse to a static observation) and accumulates the resulting sum into
// the score.
func (d *Dummy) DoAction(actionID uint64) error {
	if actionID >= uint64(len(d.deltas)) {
		return ErrInvalidAction
	}
	delta := d.deltas[actionID]
	jitter := 1.0
	if d.rng != nil {
		jitter = d.rng.Double(0.9, 1.1)
	}
	for i := 0; i < d.obs.Size(); i++ {
		d.obs.SetScalar(i, d.obs.Scalar(i)+delta*jitter)
	}
	for i := 0; i < d.obs.Size(); i++ {
		d.score += d.obs.Scalar(i)
	}
	d.step++
	return nil
}

// DoActions applies actionIDs in order, stopping at the first error.
func (d *Dummy) DoActions(actionIDs []uint64) error {
	for _, id := range actionIDs {
		if err := d.DoAction(id); err != nil {
			return err
		}
	}
	return nil
}

// NbActions returns the number of actions Dummy was constructed with.
func (d *Dummy) NbActions() uint64 { return uint64(len(d.deltas)) }

// DataSources returns the single observation vector as a one-element data
// source list.
func (d *Dummy) DataSources() []data.Handler {
	return []data.Handler{d.obs}
}

// Score returns the accumulated score for the current episode.
func (d *Dummy) Score() float64 { return d.score }

// IsTerminal reports whether the episode has run for episodeLen steps.
func (d *Dummy) IsTerminal() bool { return d.step >= d.episodeLen }

// Clone deep-copies the Dummy, including its observation vector, score and
// step count. The clone's RNG is re-seeded from the original's seed, so its
// jitter sequence restarts from the beginning rather than continuing from
// the original's current position.
func (d *Dummy) Clone() (Environment, bool) {
	clone := &Dummy{
		obs:        d.obs.Clone().(*data.PrimitiveArray[float64]),
		deltas:     append([]float64(nil), d.deltas...),
		score:      d.score,
		step:       d.step,
		episodeLen: d.episodeLen,
		seed:       d.seed,
		mode:       d.mode,
	}
	if d.rng != nil {
		clone.rng = rng.New(d.rng.Seed())
	}
	return clone, true
}

// IsCopyable always returns true for Dummy.
func (d *Dummy) IsCopyable() bool { return true }
