package poker

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/lox/clubs/internal/randutil"
)

// Deck is an ordered draw source over a parametric sub-deck of the
// standard 52 cards: between 1 and 4 suits and between 1 and 13 ranks
// (always the top ranks, so a 9-rank deck runs six to ace). A deck can be
// tricked to place a fixed prefix of cards on top for deterministic play.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	numSuits int
	numRanks int
	fullDeck []Card
	cards    []Card
	rng      *rand.Rand

	tricked   bool
	topIdx    []int
	bottomIdx []int
}

// DeckOption configures a Deck during creation.
type DeckOption func(*Deck)

// WithRand injects the random source used for shuffling. The default is a
// time-seeded PCG; tests pass a randutil.New source for reproducibility.
func WithRand(rng *rand.Rand) DeckOption {
	return func(d *Deck) {
		d.rng = rng
	}
}

// NewDeck creates a shuffled deck with the given dimensions. The full deck
// is built rank-ascending, suit-by-suit (2..A by S, H, D, C).
func NewDeck(numSuits, numRanks int, opts ...DeckOption) (*Deck, error) {
	if numRanks < 1 || numRanks > 13 {
		return nil, fmt.Errorf("%w: expected number of ranks between 1 and 13, got %d", ErrInvalidRank, numRanks)
	}
	if numSuits < 1 || numSuits > 4 {
		return nil, fmt.Errorf("%w: expected number of suits between 1 and 4, got %d", ErrInvalidSuit, numSuits)
	}
	d := &Deck{
		numSuits: numSuits,
		numRanks: numRanks,
		fullDeck: make([]Card, 0, numSuits*numRanks),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = randutil.New(time.Now().UnixNano())
	}
	suits := []int{suitSpades, suitHearts, suitDiamonds, suitClubs}
	for rank := 13 - numRanks; rank < 13; rank++ {
		for _, suit := range suits[:numSuits] {
			d.fullDeck = append(d.fullDeck, newCard(rank, suit))
		}
	}
	d.Shuffle()
	return d, nil
}

// Shuffle resets the draw order from the full deck. If the deck is
// tricked, the recorded prefix is placed on top in order and only the
// complement is shuffled.
func (d *Deck) Shuffle() {
	if d.tricked && len(d.topIdx) > 0 {
		bottom := make([]Card, len(d.bottomIdx))
		for i, idx := range d.bottomIdx {
			bottom[i] = d.fullDeck[idx]
		}
		d.rng.Shuffle(len(bottom), func(i, j int) {
			bottom[i], bottom[j] = bottom[j], bottom[i]
		})
		d.cards = make([]Card, 0, len(d.fullDeck))
		for _, idx := range d.topIdx {
			d.cards = append(d.cards, d.fullDeck[idx])
		}
		d.cards = append(d.cards, bottom...)
		return
	}
	d.cards = append([]Card(nil), d.fullDeck...)
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes up to n cards from the top of the deck. When fewer cards
// remain, all remaining cards are returned; drawing from an empty deck
// returns an empty slice.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Trick places a fixed prefix of cards on top of the deck; the complement
// is shuffled beneath it on every reshuffle. A nil prefix re-arms the
// previously recorded prefix, or clears the trick state and reshuffles if
// none was ever recorded. The recorded prefix survives Untrick, so
// Trick(nil, ...) after Untrick restores the original order.
func (d *Deck) Trick(top []Card, shuffle bool) error {
	if len(top) == 0 && len(d.topIdx) == 0 {
		d.tricked = false
		d.Shuffle()
		return nil
	}
	if len(top) > 0 {
		topIdx := make([]int, len(top))
		for i, card := range top {
			idx := d.indexOf(card)
			if idx < 0 {
				return fmt.Errorf("card %s is not in the deck", card)
			}
			topIdx[i] = idx
		}
		used := make(map[int]bool, len(topIdx))
		for _, idx := range topIdx {
			used[idx] = true
		}
		bottomIdx := make([]int, 0, len(d.fullDeck))
		for idx := range d.fullDeck {
			if !used[idx] {
				bottomIdx = append(bottomIdx, idx)
			}
		}
		d.topIdx = topIdx
		d.bottomIdx = bottomIdx
	}
	d.tricked = true
	if shuffle {
		d.Shuffle()
	}
	return nil
}

// Untrick clears the tricked flag but keeps the recorded prefix.
func (d *Deck) Untrick() {
	d.tricked = false
}

func (d *Deck) indexOf(card Card) int {
	for i, c := range d.fullDeck {
		if c == card {
			return i
		}
	}
	return -1
}
