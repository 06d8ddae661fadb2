package engine

import "math/rand"

// Bag produces the sequence of upcoming piece types using the 7-bag policy:
// all seven types are shuffled together, dealt out, then the bag refills.
// Every window of seven consecutive pieces contains each type exactly once.
// The bag owns its RNG so a session can be reseeded for deterministic replay.
type Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewBag creates a bag seeded for deterministic shuffling.
func NewBag(seed int64) *Bag {
	b := &Bag{}
	b.Reseed(seed)
	return b
}

// Reseed resets the RNG and discards any undealt pieces.
func (b *Bag) Reseed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
	b.queue = b.queue[:0]
}

// Next deals the next piece type, refilling and shuffling when the bag runs out.
func (b *Bag) Next() PieceType {
	if len(b.queue) == 0 {
		b.refill()
	}
	t := b.queue[0]
	b.queue = b.queue[1:]
	return t
}

func (b *Bag) refill() {
	b.queue = b.queue[:0]
	for t := PieceType(0); t < PieceCount; t++ {
		b.queue = append(b.queue, t)
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
