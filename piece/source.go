package piece

import (
	"fmt"
	"math/rand/v2"
)

// Source decides which piece spawns next.
type Source interface {
	Next() Piece
}

// Random picks one of the seven kinds uniformly, consuming a single draw
// from r.
func Random(r *rand.Rand) Piece {
	return New(Kind(r.IntN(KindCount)))
}

// RandomSource draws pieces uniformly from a seeded generator.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource wraps r. Two sources built from identically seeded
// generators yield the same sequence.
func NewRandomSource(r *rand.Rand) *RandomSource {
	return &RandomSource{rng: r}
}

// NewSeededSource builds a RandomSource on a PCG generator.
func NewSeededSource(seed1, seed2 uint64) *RandomSource {
	return NewRandomSource(rand.New(rand.NewPCG(seed1, seed2)))
}

func (s *RandomSource) Next() Piece {
	return Random(s.rng)
}

// Sequence replays a fixed list of kinds, wrapping around at the end.
type Sequence struct {
	kinds []Kind
	next  int
}

// NewSequence returns a Sequence over kinds. An empty list yields I pieces.
// It panics on a kind outside the seven tetrominoes.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = []Kind{I}
	}
	for _, kind := range kinds {
		if !kind.Valid() {
			panic(fmt.Sprintf("piece: invalid kind %d in sequence", int(kind)))
		}
	}
	return &Sequence{kinds: append([]Kind(nil), kinds...)}
}

func (s *Sequence) Next() Piece {
	kind := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return New(kind)
}
