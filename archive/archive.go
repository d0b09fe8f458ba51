// Package archive implements the bounded behavioural memory mutators use to
// enforce diversity: a FIFO of program bids recorded against snapshots of
// the data sources that produced them.
//
// Grounded line-for-line on original_source/gegelatilib/src/archive.cpp for
// FIFO eviction, snapshot retention counting, and areProgramResultsUnique.
package archive

import (
	"math"

	"github.com/tangled-program/tpgo/data"
	"github.com/tangled-program/tpgo/program"
	"github.com/tangled-program/tpgo/rng"
)

// Recording is one archived (program, combined data hash, result) triple.
type Recording struct {
	Program *program.Program
	Hash    uint64
	Result  float64
}

// Archive is a bounded FIFO of Recordings, plus the data-source snapshots
// they reference and a per-program secondary index.
type Archive struct {
	maxSize              int
	archivingProbability float64
	rng                  *rng.RNG

	recordings []Recording
	snapshots  map[uint64][]data.Handler
	perProgram map[*program.Program][]Recording
}

// New creates an Archive with the given capacity and per-execution
// recording probability, seeded for reproducible sampling.
func New(maxSize int, archivingProbability float64, seed uint64) *Archive {
	return &Archive{
		maxSize:              maxSize,
		archivingProbability: archivingProbability,
		rng:                  rng.New(seed),
		snapshots:            make(map[uint64][]data.Handler),
		perProgram:           make(map[*program.Program][]Recording),
	}
}

// CombinedHash is the commutative XOR-fold of every handler's content
// hash, used both to key Archive snapshots and to look a program's
// recorded bid up by the data state that produced it.
func CombinedHash(sources []data.Handler) uint64 {
	var h uint64
	for _, s := range sources {
		h ^= s.Hash()
	}
	return h
}

// AddRecording archives (prog, sources, result). Unless forced, the
// recording is kept only with probability archivingProbability. Recording
// never fails: a skipped toss is silently a no-op.
func (a *Archive) AddRecording(prog *program.Program, sources []data.Handler, result float64, forced bool) {
	if !forced && a.rng.Float64() >= a.archivingProbability {
		return
	}

	hash := CombinedHash(sources)
	if _, ok := a.snapshots[hash]; !ok {
		snapshot := make([]data.Handler, len(sources))
		for i, s := range sources {
			snapshot[i] = s.Clone()
		}
		a.snapshots[hash] = snapshot
	}

	rec := Recording{Program: prog, Hash: hash, Result: result}
	a.recordings = append(a.recordings, rec)
	a.perProgram[prog] = append(a.perProgram[prog], rec)

	for len(a.recordings) > a.maxSize {
		a.evictOldest()
	}
}

func (a *Archive) evictOldest() {
	oldest := a.recordings[0]
	a.recordings = a.recordings[1:]

	stillUsed := false
	for _, r := range a.recordings {
		if r.Hash == oldest.Hash {
			stillUsed = true
			break
		}
	}
	if !stillUsed {
		delete(a.snapshots, oldest.Hash)
	}

	progRecs := a.perProgram[oldest.Program]
	if len(progRecs) > 0 {
		progRecs = progRecs[1:]
	}
	if len(progRecs) == 0 {
		delete(a.perProgram, oldest.Program)
	} else {
		a.perProgram[oldest.Program] = progRecs
	}
}

// AreProgramResultsUnique reports whether no archived program is
// behaviourally equivalent to a hypothetical program whose recorded bids
// are given by hashesAndResults (a snapshot-hash -> bid map). An archived
// program is "equivalent" when every one of its recordings whose hash is a
// key of hashesAndResults has a result within tau of the queried one, and
// at least one such match exists. Returns false as soon as an equivalent
// program is found.
func (a *Archive) AreProgramResultsUnique(hashesAndResults map[uint64]float64, tau float64) bool {
	for _, recordings := range a.perProgram {
		identical := false
		for _, rec := range recordings {
			queried, ok := hashesAndResults[rec.Hash]
			if !ok {
				continue
			}
			if math.Abs(queried-rec.Result) <= tau {
				identical = true
			} else {
				identical = false
				break
			}
		}
		if identical {
			return false
		}
	}
	return true
}

// At returns the n-th oldest recording.
func (a *Archive) At(n int) (Recording, bool) {
	if n < 0 || n >= len(a.recordings) {
		return Recording{}, false
	}
	return a.recordings[n], true
}

// Size returns the current number of recordings.
func (a *Archive) Size() int { return len(a.recordings) }

// HasDataHandlers reports whether a snapshot is retained for hash.
func (a *Archive) HasDataHandlers(hash uint64) bool {
	_, ok := a.snapshots[hash]
	return ok
}

// DataHandlers returns the snapshot retained for hash, if any.
func (a *Archive) DataHandlers(hash uint64) ([]data.Handler, bool) {
	s, ok := a.snapshots[hash]
	return s, ok
}

// Snapshots returns every retained hash -> snapshot pair. Used by mutators
// replaying a program against the whole archive.
func (a *Archive) Snapshots() map[uint64][]data.Handler {
	return a.snapshots
}

// NbDataHandlers returns the number of distinct snapshots retained.
func (a *Archive) NbDataHandlers() int { return len(a.snapshots) }

// SetRandomSeed reseeds the archive's internal RNG.
func (a *Archive) SetRandomSeed(seed uint64) { a.rng.SetSeed(seed) }

// Clear empties the archive.
func (a *Archive) Clear() {
	a.recordings = nil
	a.snapshots = make(map[uint64][]data.Handler)
	a.perProgram = make(map[*program.Program][]Recording)
}
