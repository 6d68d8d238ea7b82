// Package game implements the dealer for configurable poker games.
//
// The main type is Dealer, which runs a single hand at a time for an
// arbitrary rule set: limit, pot-limit and no-limit bet sizing, raise
// caps, blind and ante schedules, arbitrary deck sizes, hole and
// community card counts and custom hand orderings.
//
// # Basic usage
//
// Create a dealer from a preset or custom Config, reset to deal a hand,
// then feed bets until every seat is done:
//
//	d, err := game.New(game.NoLimitHoldemSixPlayer())
//	if err != nil { ... }
//	obs, err := d.Reset(true, true)
//	for {
//	    var done []bool
//	    obs, _, done, err = d.Step(obs.Call)
//	    if err != nil { ... }
//	    if allDone(done) {
//	        break
//	    }
//	}
//
// Bets are snapped to the nearest legal size (fold/check, call, min
// raise, max raise), so feeding back the observation's Call always
// calls and a negative bet always folds.
//
// # Deterministic hands
//
// Inject a seeded random source and trick the deck for reproducible
// hands:
//
//	rng := randutil.New(42)
//	d, _ := game.New(game.LeducTwoPlayer(), game.WithRand(rng))
//	d.Deck().Trick(poker.MustCards("QsKsQh"), true)
//
// # Multi-hand play
//
// Stacks persist across Reset calls unless reset; tournament-style stack
// management stays with the caller via SetStacks.
package game
