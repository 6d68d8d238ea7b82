package game

import "github.com/lox/clubs/poker"

// shortDeckOrder ranks flushes above full houses, as played with a
// six-to-ace deck.
func shortDeckOrder() []poker.Category {
	return []poker.Category{
		poker.StraightFlush,
		poker.FourOfAKind,
		poker.Flush,
		poker.FullHouse,
		poker.Straight,
		poker.ThreeOfAKind,
		poker.TwoPair,
		poker.Pair,
		poker.HighCard,
	}
}

// LeducTwoPlayer is the Leduc hold'em research game: one hole card, a
// 2x3 deck, one community card and two limit streets.
func LeducTwoPlayer() Config {
	return Config{
		NumPlayers:        2,
		NumStreets:        2,
		Antes:             []int{1},
		RaiseSizes:        []RaiseSize{FixedRaise(2)},
		NumRaises:         []RaiseCap{CapRaises(2)},
		NumSuits:          2,
		NumRanks:          3,
		NumHoleCards:      1,
		NumCommunityCards: []int{0, 1},
		NumCardsForHand:   2,
		StartStack:        10,
	}
}

// KuhnThreePlayer is the three-player Kuhn poker research game: one hole
// card from a four-card deck and a single one-raise street.
func KuhnThreePlayer() Config {
	return Config{
		NumPlayers:        3,
		NumStreets:        1,
		Antes:             []int{1},
		RaiseSizes:        []RaiseSize{FixedRaise(1)},
		NumRaises:         []RaiseCap{CapRaises(1)},
		NumSuits:          1,
		NumRanks:          4,
		NumHoleCards:      1,
		NumCommunityCards: []int{0},
		NumCardsForHand:   1,
		StartStack:        10,
	}
}

func holdem(numPlayers int) Config {
	// blinds are rolled from the seat after the button (the button itself
	// heads-up), so the schedule starts at index zero
	blinds := make([]int, numPlayers)
	blinds[0], blinds[1] = 1, 2
	return Config{
		NumPlayers:        numPlayers,
		NumStreets:        4,
		Blinds:            blinds,
		NumSuits:          4,
		NumRanks:          13,
		NumHoleCards:      2,
		NumCommunityCards: []int{0, 3, 1, 1},
		NumCardsForHand:   5,
		StartStack:        200,
	}
}

func limitHoldem(numPlayers int) Config {
	cfg := holdem(numPlayers)
	cfg.RaiseSizes = []RaiseSize{FixedRaise(2), FixedRaise(2), FixedRaise(4), FixedRaise(4)}
	cfg.NumRaises = []RaiseCap{CapRaises(3), CapRaises(4), CapRaises(4), CapRaises(4)}
	return cfg
}

// LimitHoldemTwoPlayer is 1-2 heads-up limit Texas hold'em.
func LimitHoldemTwoPlayer() Config { return limitHoldem(2) }

// LimitHoldemSixPlayer is 1-2 six-player limit Texas hold'em.
func LimitHoldemSixPlayer() Config { return limitHoldem(6) }

// LimitHoldemNinePlayer is 1-2 nine-player limit Texas hold'em.
func LimitHoldemNinePlayer() Config { return limitHoldem(9) }

// NoLimitHoldemTwoPlayer is 1-2 heads-up no-limit Texas hold'em.
func NoLimitHoldemTwoPlayer() Config { return holdem(2) }

// NoLimitHoldemSixPlayer is 1-2 six-player no-limit Texas hold'em.
func NoLimitHoldemSixPlayer() Config { return holdem(6) }

// NoLimitHoldemNinePlayer is 1-2 nine-player no-limit Texas hold'em.
func NoLimitHoldemNinePlayer() Config { return holdem(9) }

// NoLimitHoldemBBAnteNinePlayer is 2-4 nine-player no-limit Texas
// hold'em with a big-blind ante.
func NoLimitHoldemBBAnteNinePlayer() Config {
	cfg := holdem(9)
	cfg.Blinds[0], cfg.Blinds[1] = 2, 4
	cfg.Antes = make([]int, 9)
	cfg.Antes[1] = 1
	return cfg
}

func potLimitOmaha(numPlayers int) Config {
	cfg := holdem(numPlayers)
	cfg.RaiseSizes = []RaiseSize{PotRaise}
	cfg.NumHoleCards = 4
	cfg.MandatoryNumHoleCards = 2
	return cfg
}

// PotLimitOmahaTwoPlayer is 1-2 heads-up pot-limit Omaha.
func PotLimitOmahaTwoPlayer() Config { return potLimitOmaha(2) }

// PotLimitOmahaSixPlayer is 1-2 six-player pot-limit Omaha.
func PotLimitOmahaSixPlayer() Config { return potLimitOmaha(6) }

// PotLimitOmahaNinePlayer is 1-2 nine-player pot-limit Omaha.
func PotLimitOmahaNinePlayer() Config { return potLimitOmaha(9) }

func shortDeck(numPlayers int) Config {
	cfg := holdem(numPlayers)
	cfg.NumRanks = 9
	cfg.Order = shortDeckOrder()
	return cfg
}

// ShortDeckTwoPlayer is 1-2 heads-up no-limit short-deck hold'em.
func ShortDeckTwoPlayer() Config { return shortDeck(2) }

// ShortDeckSixPlayer is 1-2 six-player no-limit short-deck hold'em.
func ShortDeckSixPlayer() Config { return shortDeck(6) }

// ShortDeckNinePlayer is 1-2 nine-player no-limit short-deck hold'em.
func ShortDeckNinePlayer() Config { return shortDeck(9) }
