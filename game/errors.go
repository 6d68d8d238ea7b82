package game

import "errors"

// Errors reported by dealer configuration and hand progression. Errors
// about deck dimensions, hand size and category order wrap the poker
// package's sentinels instead; HCL parse and decode failures from
// LoadConfigs wrap neither.
var (
	// ErrInvalidConfig reports a distribution list whose length does not
	// match the number of players or streets, or an out-of-range scalar.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidRaiseSize reports a raise size that is not a nonnegative
	// fixed size, pot limit or no limit.
	ErrInvalidRaiseSize = errors.New("invalid raise size")

	// ErrTooFewActivePlayers reports a Reset without stack resets when
	// fewer than two seats still hold chips.
	ErrTooFewActivePlayers = errors.New("too few active players")

	// ErrTableReset reports a Step on a table that has never been reset.
	ErrTableReset = errors.New("table must be reset")
)
