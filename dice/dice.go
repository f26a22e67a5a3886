// Package dice provides the randomness behind every roll of the game.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Roller returns a value uniformly distributed in [min, max], bounds inclusive.
type Roller interface {
	Roll(min, max int) int
}

type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Roll(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("dice: empty range [%d, %d]", min, max))
	}
	return min + r.rng.Intn(max-min+1)
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays fixed values in order. It panics when exhausted or when
// the next value falls outside the requested range.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Roll(min, max int) int {
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("dice: sequence exhausted after %d rolls", len(s.values)))
	}
	v := s.values[s.next]
	if v < min || v > max {
		panic(fmt.Sprintf("dice: roll %d outside [%d, %d]", v, min, max))
	}
	s.next++
	return v
}

// Remaining is the number of values not yet rolled.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}
