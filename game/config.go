package game

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/lox/clubs/poker"
)

// RaiseSize is the per-street bet-sizing regime: a fixed raise size
// (limit games), pot limit, or no limit.
type RaiseSize struct {
	kind raiseSizeKind
	size int
}

type raiseSizeKind uint8

const (
	raiseFixed raiseSizeKind = iota
	raisePot
	raiseNoLimit
)

// FixedRaise returns a fixed raise size for limit streets.
func FixedRaise(size int) RaiseSize {
	return RaiseSize{kind: raiseFixed, size: size}
}

// PotRaise caps raises at the pot size.
var PotRaise = RaiseSize{kind: raisePot}

// NoLimitRaise allows raising up to the full stack.
var NoLimitRaise = RaiseSize{kind: raiseNoLimit}

// Fixed returns the fixed raise size and true for limit streets.
func (r RaiseSize) Fixed() (int, bool) {
	return r.size, r.kind == raiseFixed
}

// IsPot reports whether raises are pot limited.
func (r RaiseSize) IsPot() bool {
	return r.kind == raisePot
}

func (r RaiseSize) String() string {
	switch r.kind {
	case raisePot:
		return "pot"
	case raiseNoLimit:
		return "inf"
	default:
		return strconv.Itoa(r.size)
	}
}

// ParseRaiseSize parses "pot", "inf" or a nonnegative integer.
func ParseRaiseSize(s string) (RaiseSize, error) {
	switch s {
	case "pot":
		return PotRaise, nil
	case "inf":
		return NoLimitRaise, nil
	}
	size, err := strconv.Atoi(s)
	if err != nil || size < 0 {
		return RaiseSize{}, fmt.Errorf("%w: expected one of (int, \"pot\", \"inf\"), got %q", ErrInvalidRaiseSize, s)
	}
	return FixedRaise(size), nil
}

// RaiseCap is the per-street limit on the number of full raises.
type RaiseCap struct {
	unlimited bool
	limit     int
}

// CapRaises limits a street to n full raises.
func CapRaises(n int) RaiseCap {
	return RaiseCap{limit: n}
}

// UnlimitedRaises places no cap on the number of raises.
var UnlimitedRaises = RaiseCap{unlimited: true}

// Reached reports whether the given raise count has hit the cap.
func (c RaiseCap) Reached(raises int) bool {
	return !c.unlimited && raises >= c.limit
}

func (c RaiseCap) String() string {
	if c.unlimited {
		return "inf"
	}
	return strconv.Itoa(c.limit)
}

// ParseRaiseCap parses "inf" or a nonnegative integer.
func ParseRaiseCap(s string) (RaiseCap, error) {
	if s == "inf" {
		return UnlimitedRaises, nil
	}
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 0 {
		return RaiseCap{}, fmt.Errorf("%w: expected one of (int, \"inf\"), got %q", ErrInvalidRaiseSize, s)
	}
	return CapRaises(limit), nil
}

// Config describes the rule set for a table. Distribution fields
// (Blinds, Antes, RaiseSizes, NumRaises, NumCommunityCards) may be nil
// for all-zero / default, length one to expand to every player or street,
// or fully specified; any other length fails with ErrInvalidConfig.
type Config struct {
	// NumPlayers is the number of seats, at least 2.
	NumPlayers int
	// NumStreets is the number of betting rounds including preflop.
	NumStreets int
	// Blinds distributes forced street commits by seat, measured from the
	// first blind poster (the seat after the button, or the button itself
	// heads-up), e.g. [1, 2, 0] for a three-player game with blinds 1/2.
	Blinds []int
	// Antes distributes forced contributions that do not count as street
	// commits.
	Antes []int
	// RaiseSizes is the per-street bet-sizing regime. Nil means no limit.
	RaiseSizes []RaiseSize
	// NumRaises caps full raises per street. Nil means unlimited.
	NumRaises []RaiseCap
	// NumSuits and NumRanks are the deck dimensions.
	NumSuits int
	NumRanks int
	// NumHoleCards is dealt to every seat, at least 1.
	NumHoleCards int
	// NumCommunityCards is revealed per street including preflop.
	NumCommunityCards []int
	// NumCardsForHand is the hand size at showdown, between 1 and 5.
	NumCardsForHand int
	// MandatoryNumHoleCards forces that many hole cards into every scored
	// hand (2 for Omaha games).
	MandatoryNumHoleCards int
	// StartStack is each seat's starting stack, positive.
	StartStack int
	// NoLowEndStraight excludes the ace-low straight. The zero value
	// keeps it, matching the usual rules.
	NoLowEndStraight bool
	// Order optionally replaces the rarity ordering of hand categories.
	Order []poker.Category
}

// normalize expands scalar distributions, validates lengths and scalars,
// and returns a self-contained copy.
func (c Config) normalize() (Config, error) {
	if c.NumPlayers < 2 {
		return Config{}, fmt.Errorf("%w: need at least 2 players, got %d", ErrInvalidConfig, c.NumPlayers)
	}
	if c.NumStreets < 1 {
		return Config{}, fmt.Errorf("%w: need at least 1 street, got %d", ErrInvalidConfig, c.NumStreets)
	}
	if c.NumHoleCards < 1 {
		return Config{}, fmt.Errorf("%w: need at least 1 hole card, got %d", ErrInvalidConfig, c.NumHoleCards)
	}
	if c.MandatoryNumHoleCards < 0 {
		return Config{}, fmt.Errorf("%w: negative mandatory hole cards", ErrInvalidConfig)
	}
	if c.StartStack <= 0 {
		return Config{}, fmt.Errorf("%w: start stack must be positive, got %d", ErrInvalidConfig, c.StartStack)
	}

	var err error
	if c.Blinds, err = expand(c.Blinds, c.NumPlayers, 0, "blind"); err != nil {
		return Config{}, err
	}
	if c.Antes, err = expand(c.Antes, c.NumPlayers, 0, "ante"); err != nil {
		return Config{}, err
	}
	if c.RaiseSizes, err = expand(c.RaiseSizes, c.NumStreets, NoLimitRaise, "raise size"); err != nil {
		return Config{}, err
	}
	if c.NumRaises, err = expand(c.NumRaises, c.NumStreets, UnlimitedRaises, "number of raises"); err != nil {
		return Config{}, err
	}
	if c.NumCommunityCards, err = expand(c.NumCommunityCards, c.NumStreets, 0, "community card"); err != nil {
		return Config{}, err
	}
	for _, size := range c.RaiseSizes {
		if fixed, ok := size.Fixed(); ok && fixed < 0 {
			return Config{}, fmt.Errorf("%w: negative raise size %d", ErrInvalidRaiseSize, fixed)
		}
	}
	c.Order = slices.Clone(c.Order)
	return c, nil
}

// expand turns a scalar (length-one or nil) distribution into a list of
// the expected length; full-length lists are cloned.
func expand[T any](vals []T, expected int, fill T, what string) ([]T, error) {
	switch len(vals) {
	case expected:
		return slices.Clone(vals), nil
	case 0:
		vals = []T{fill}
		fallthrough
	case 1:
		out := make([]T, expected)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: incorrect %s distribution, expected list of length %d, got %v",
		ErrInvalidConfig, what, expected, vals)
}
