package poker

import "errors"

// Errors reported by card parsing, deck construction and hand evaluation.
// These errors wrap one of these sentinels so callers can test with
// errors.Is; the error Deck.Trick returns for a card outside the deck
// wraps none of them.
var (
	// ErrInvalidRank reports a rank character or rank count outside the
	// supported range.
	ErrInvalidRank = errors.New("invalid rank")

	// ErrInvalidSuit reports a suit character or suit count outside the
	// supported range.
	ErrInvalidSuit = errors.New("invalid suit")

	// ErrInvalidHandSize reports an evaluator hand size outside [1, 5].
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrInvalidHandRank reports a hand rank outside the table's range.
	ErrInvalidHandRank = errors.New("invalid hand rank")

	// ErrInvalidOrder reports a custom category order that is not a
	// permutation of the nine hand categories.
	ErrInvalidOrder = errors.New("invalid order")
)
