package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/clubs/internal/randutil"
	"github.com/lox/clubs/poker"
)

// Dealer runs a single poker hand at a time for an arbitrary rule set:
// any number of players and streets, blind and ante schedules, limit,
// pot-limit and no-limit bet sizing, raise caps, deck dimensions, hole
// and community card counts, mandatory hole cards and custom hand
// orderings.
//
// A Dealer is a shared-mutable state machine driven by Reset and Step; it
// is not safe for concurrent use. Distinct dealers are independent.
type Dealer struct {
	cfg      Config
	bigBlind int
	logger   *log.Logger
	rng      *rand.Rand

	deck      *poker.Deck
	evaluator *poker.Evaluator

	action         int
	active         []bool
	button         int
	communityCards []poker.Card
	history        []HistoryEntry
	holeCards      [][]poker.Card
	largestRaise   int
	pot            int
	potCommit      []int
	stacks         []int
	street         int
	streetCommits  []int
	streetOption   []bool
	streetRaises   int

	settled      bool
	finalPayouts []int
}

// HistoryEntry records one action: the seat, the chips put in, and
// whether the bet carried an explicit fold intent.
type HistoryEntry struct {
	Seat int
	Bet  int
	Fold bool
}

// Option configures a Dealer during creation.
type Option func(*Dealer)

// WithLogger sets the logger used for debug traces. The default discards
// all output.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dealer) {
		d.logger = logger
	}
}

// WithRand injects the random source used for shuffling, making hands
// reproducible from a seed.
func WithRand(rng *rand.Rand) Option {
	return func(d *Dealer) {
		d.rng = rng
	}
}

// New creates a dealer for the given rule set. Configuration errors are
// reported here; a fresh dealer requires Reset before the first Step.
func New(cfg Config, opts ...Option) (*Dealer, error) {
	normalized, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	d := &Dealer{
		cfg:      normalized,
		bigBlind: normalized.Blinds[1],
		action:   -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	if d.rng == nil {
		d.rng = randutil.New(time.Now().UnixNano())
	}

	d.deck, err = poker.NewDeck(normalized.NumSuits, normalized.NumRanks, poker.WithRand(d.rng))
	if err != nil {
		return nil, err
	}
	d.evaluator, err = poker.NewEvaluator(
		normalized.NumSuits,
		normalized.NumRanks,
		normalized.NumCardsForHand,
		normalized.MandatoryNumHoleCards,
		!normalized.NoLowEndStraight,
		normalized.Order,
	)
	if err != nil {
		return nil, err
	}

	n := normalized.NumPlayers
	d.active = make([]bool, n)
	d.stacks = make([]int, n)
	for i := range d.stacks {
		d.stacks[i] = normalized.StartStack
	}
	d.potCommit = make([]int, n)
	d.streetCommits = make([]int, n)
	d.streetOption = make([]bool, n)
	d.holeCards = make([][]poker.Card, n)
	return d, nil
}

// Deck returns the dealer's deck, e.g. to trick it for deterministic
// hands.
func (d *Dealer) Deck() *poker.Deck {
	return d.deck
}

// Evaluator returns the dealer's hand evaluator.
func (d *Dealer) Evaluator() *poker.Evaluator {
	return d.evaluator
}

// History returns the actions of the current hand in order.
func (d *Dealer) History() []HistoryEntry {
	return slices.Clone(d.history)
}

// SetStacks overwrites all stack sizes between hands. Multi-hand play is
// caller-driven: adjust stacks here, then Reset without resetting them.
func (d *Dealer) SetStacks(stacks []int) error {
	if len(stacks) != d.cfg.NumPlayers {
		return fmt.Errorf("%w: expected %d stacks, got %d", ErrInvalidConfig, d.cfg.NumPlayers, len(stacks))
	}
	copy(d.stacks, stacks)
	return nil
}

// Reset starts a new hand: re-activates seats, advances or resets the
// button, shuffles and deals, and posts antes and blinds. Without
// resetStacks, seats with empty stacks sit out; fewer than two funded
// seats fail with ErrTooFewActivePlayers.
func (d *Dealer) Reset(resetButton, resetStacks bool) (Observation, error) {
	n := d.cfg.NumPlayers
	if resetStacks {
		for i := range n {
			d.active[i] = true
			d.stacks[i] = d.cfg.StartStack
		}
	} else {
		funded := 0
		for i := range n {
			d.active[i] = d.stacks[i] > 0
			if d.active[i] {
				funded++
			}
		}
		if funded <= 1 {
			return Observation{}, fmt.Errorf("%w: not enough players have chips, reset stacks to continue", ErrTooFewActivePlayers)
		}
	}
	if resetButton {
		d.button = 0
	} else {
		d.button = (d.button + 1) % n
	}

	d.deck.Shuffle()
	d.communityCards = d.deck.Draw(d.cfg.NumCommunityCards[0])
	d.history = nil
	for i := range n {
		d.holeCards[i] = d.deck.Draw(d.cfg.NumHoleCards)
	}
	d.largestRaise = d.bigBlind
	d.pot = 0
	d.street = 0
	d.streetRaises = 0
	for i := range n {
		d.potCommit[i] = 0
		d.streetCommits[i] = 0
		d.streetOption[i] = false
	}
	d.settled = false
	d.finalPayouts = nil

	// in heads-up play the button posts the small blind and acts first
	d.action = d.button
	if n > 2 {
		d.moveAction()
	}
	d.collectForcedBets(d.cfg.Antes, false)
	d.collectForcedBets(d.cfg.Blinds, true)
	d.moveAction()
	d.moveAction()

	d.logger.Debug("reset table", "button", d.button, "action", d.action, "pot", d.pot)
	return d.observation(), nil
}

// Step processes one bet for the acting seat and advances the hand. The
// bet is snapped to the nearest of fold/check, call, min raise and max
// raise, ties breaking toward the smaller; a negative bet is an explicit
// fold. Step returns the resulting observation, net payouts so far and a
// terminal flag per seat. Once the hand has ended Step is idempotent; on
// a never-reset table it fails with ErrTableReset.
func (d *Dealer) Step(bet int) (Observation, []int, []bool, error) {
	if d.action == -1 {
		for _, a := range d.active {
			if a {
				obs, payouts, done := d.output()
				return obs, payouts, done, nil
			}
		}
		return Observation{}, nil, nil, fmt.Errorf("%w: call Reset before the first Step", ErrTableReset)
	}

	fold := bet < 0

	call, minRaise, maxRaise := d.betSizes()
	bet = cleanBet(bet, call, minRaise, maxRaise)

	// only fold when the seat cannot check
	if call > 0 && (bet < call || fold) {
		d.active[d.action] = false
		bet = 0
	}

	// a full raise reopens the action; an all-in matching the largest
	// raise exactly counts as full
	if bet > 0 && bet-call >= d.largestRaise {
		d.largestRaise = bet - call
		d.streetRaises++
	}

	d.collectBet(bet)
	d.history = append(d.history, HistoryEntry{Seat: d.action, Bet: bet, Fold: fold})
	d.streetOption[d.action] = true
	d.logger.Debug("processed bet", "seat", d.action, "bet", bet, "fold", fold, "pot", d.pot)
	d.moveAction()

	if d.allAgreed() {
		d.action = d.button
		d.moveAction()
		// reveal the remaining streets at once when no further betting is
		// possible
		for {
			d.street++
			if d.street >= d.cfg.NumStreets {
				break
			}
			d.communityCards = append(d.communityCards, d.deck.Draw(d.cfg.NumCommunityCards[d.street])...)
			notAllIn := 0
			for i := range d.active {
				if d.active[i] && d.stacks[i] > 0 {
					notAllIn++
				}
			}
			if notAllIn > 1 {
				break
			}
		}
		for i := range d.streetCommits {
			d.streetCommits[i] = 0
			d.streetOption[i] = !d.active[i]
		}
		d.streetRaises = 0
		d.logger.Debug("street advanced", "street", d.street, "community", len(d.communityCards))
	}

	obs, payouts, done := d.output()
	if allTrue(done) {
		d.action = -1
		obs.Action = -1
	}
	return obs, payouts, done, nil
}

// collectForcedBets posts antes or blinds starting at the acting seat,
// clamped to stacks. Only funded active seats post.
func (d *Dealer) collectForcedBets(amounts []int, streetCommit bool) {
	n := d.cfg.NumPlayers
	for i := range n {
		seat := (i + d.action) % n
		if !d.active[seat] || d.stacks[seat] == 0 {
			continue
		}
		amount := min(amounts[i], d.stacks[seat])
		if amount == 0 {
			continue
		}
		if streetCommit {
			d.streetCommits[seat] += amount
		}
		d.potCommit[seat] += amount
		d.pot += amount
		d.stacks[seat] -= amount
	}
}

// collectBet moves chips from the acting seat into the pot, clamped to
// the stack.
func (d *Dealer) collectBet(bet int) {
	bet = min(bet, d.stacks[d.action])
	d.pot += bet
	d.potCommit[d.action] += bet
	d.streetCommits[d.action] += bet
	d.stacks[d.action] -= bet
}

// moveAction advances to the next active seat. Inactive seats passed
// along the way count as having had their option.
func (d *Dealer) moveAction() {
	n := d.cfg.NumPlayers
	next := d.action
	for i := 1; i <= n; i++ {
		next = (d.action + i) % n
		if d.active[next] {
			break
		}
		d.streetOption[next] = true
	}
	d.action = next
}

// allAgreed reports whether the street is closed: every seat has had its
// option and every seat has matched the street's high commit, is all in,
// or is out of the hand.
func (d *Dealer) allAgreed() bool {
	for _, opt := range d.streetOption {
		if !opt {
			return false
		}
	}
	maxCommit := slices.Max(d.streetCommits)
	for i := range d.active {
		if d.streetCommits[i] != maxCommit && d.stacks[i] != 0 && d.active[i] {
			return false
		}
	}
	return true
}

// done returns the per-seat terminal flags. The whole hand ends when the
// streets are exhausted or at most one seat remains active.
func (d *Dealer) done() []bool {
	n := d.cfg.NumPlayers
	out := make([]bool, n)
	if d.street >= d.cfg.NumStreets || countTrue(d.active) <= 1 {
		for i := range out {
			out[i] = true
		}
		return out
	}
	for i := range out {
		out[i] = !d.active[i]
	}
	return out
}

func (d *Dealer) terminal() bool {
	return d.street >= d.cfg.NumStreets || countTrue(d.active) <= 1
}

func (d *Dealer) output() (Observation, []int, []bool) {
	payouts := d.payouts()
	done := d.done()
	return d.observation(), payouts, done
}

func countTrue(vals []bool) int {
	count := 0
	for _, v := range vals {
		if v {
			count++
		}
	}
	return count
}

func allTrue(vals []bool) bool {
	for _, v := range vals {
		if !v {
			return false
		}
	}
	return true
}
