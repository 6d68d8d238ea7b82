package poker

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Evaluator scores poker hands built from hole and community cards for a
// given deck shape. Scores are integer hand ranks in [0, MaxRank());
// lower is better. Construction is cheap for repeated parameter tuples:
// the underlying lookup tables are memoized process-wide.
type Evaluator struct {
	suits              int
	ranks              int
	cardsForHand       int
	mandatoryHoleCards int

	table     *LookupTable
	handRanks string
}

// NewEvaluator creates an evaluator. mandatoryHoleCards forces that many
// hole cards into every scored combination (e.g. 2 for Omaha); zero
// evaluates the best hand over all hole and community cards.
func NewEvaluator(suits, ranks, cardsForHand, mandatoryHoleCards int, lowEndStraight bool, order []Category) (*Evaluator, error) {
	if cardsForHand < 1 || cardsForHand > 5 {
		return nil, fmt.Errorf("%w: evaluation for %d card hands is not supported, expected 1 to 5",
			ErrInvalidHandSize, cardsForHand)
	}

	table, err := tableFor(suits, ranks, cardsForHand, lowEndStraight, order)
	if err != nil {
		return nil, err
	}

	e := &Evaluator{
		suits:              suits,
		ranks:              ranks,
		cardsForHand:       cardsForHand,
		mandatoryHoleCards: mandatoryHoleCards,
		table:              table,
	}

	total := 0
	for _, cat := range table.ranked {
		total += table.stats[cat].Suited
	}
	parts := make([]string, 0, len(table.ranked))
	for _, cat := range table.ranked {
		pct := 100 * float64(table.stats[cat].Suited) / float64(total)
		parts = append(parts, fmt.Sprintf("%s (%.4f%%)", cat.Name(), pct))
	}
	e.handRanks = strings.Join(parts, " > ")

	return e, nil
}

// String lists the hand categories from best to worst with their share of
// all suit-distinguished combinations.
func (e *Evaluator) String() string {
	return e.handRanks
}

// Table returns the underlying lookup table.
func (e *Evaluator) Table() *LookupTable {
	return e.table
}

// MaxRank returns the exclusive upper bound of valid hand ranks.
func (e *Evaluator) MaxRank() int {
	return e.table.maxRank
}

// Evaluate returns the best (lowest) rank over every legal combination of
// the given hole and community cards. With mandatory hole cards the
// combinations are the Cartesian product of hole-card and community-card
// choices; otherwise any cards may form the hand. Callers must supply
// enough cards for at least one combination.
func (e *Evaluator) Evaluate(holeCards, communityCards []Card) int {
	minimum := e.table.maxRank

	consider := func(combo []Card) {
		if rank := e.table.Lookup(combo); rank < minimum {
			minimum = rank
		}
	}

	if e.mandatoryHoleCards > 0 {
		holeCombos := combinations(holeCards, e.mandatoryHoleCards)
		numCommunity := e.cardsForHand - e.mandatoryHoleCards
		if numCommunity > 0 {
			communityCombos := combinations(communityCards, numCommunity)
			combo := make([]Card, e.cardsForHand)
			for _, hole := range holeCombos {
				for _, community := range communityCombos {
					copy(combo, hole)
					copy(combo[len(hole):], community)
					consider(combo)
				}
			}
		} else {
			for _, hole := range holeCombos {
				consider(hole)
			}
		}
		return minimum
	}

	all := make([]Card, 0, len(holeCards)+len(communityCards))
	all = append(all, holeCards...)
	all = append(all, communityCards...)
	for _, combo := range combinations(all, e.cardsForHand) {
		consider(combo)
	}
	return minimum
}

// RankClass returns the category a hand rank falls into.
func (e *Evaluator) RankClass(rank int) (Category, error) {
	if rank < 0 || rank >= e.table.maxRank {
		return 0, fmt.Errorf("%w: expected 0 <= rank < %d, got %d", ErrInvalidHandRank, e.table.maxRank, rank)
	}
	for _, cat := range e.table.ranked {
		if rank < e.table.stats[cat].CumulativeUnsuited {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("%w: expected 0 <= rank < %d, got %d", ErrInvalidHandRank, e.table.maxRank, rank)
}

// Lookup tables are pure for a given parameter tuple, so they are shared
// process-wide. singleflight collapses concurrent builds of the same
// table into one.
var (
	tableCache sync.Map
	tableGroup singleflight.Group
)

func tableFor(suits, ranks, cardsForHand int, lowEndStraight bool, order []Category) (*LookupTable, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	var key strings.Builder
	fmt.Fprintf(&key, "%d/%d/%d/%t", suits, ranks, cardsForHand, lowEndStraight)
	for _, cat := range order {
		key.WriteByte('/')
		key.WriteString(cat.Tag())
	}

	if cached, ok := tableCache.Load(key.String()); ok {
		return cached.(*LookupTable), nil
	}
	table, err, _ := tableGroup.Do(key.String(), func() (any, error) {
		table, err := NewLookupTable(suits, ranks, cardsForHand, lowEndStraight, order)
		if err != nil {
			return nil, err
		}
		tableCache.Store(key.String(), table)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return table.(*LookupTable), nil
}
