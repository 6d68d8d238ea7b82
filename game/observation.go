package game

import (
	"slices"

	"github.com/lox/clubs/poker"
)

// Observation is the observable table state returned from Reset and Step.
// Cards are in string form; the caller decides which hole cards a viewer
// may see. When the hand has ended the action seat is -1 and all bet
// sizes are zero.
type Observation struct {
	Action         int
	Active         []bool
	Button         int
	Call           int
	CommunityCards []string
	HoleCards      [][]string
	MaxRaise       int
	MinRaise       int
	Pot            int
	Stacks         []int
	StreetCommits  []int
}

func (d *Dealer) observation() Observation {
	var call, minRaise, maxRaise int
	if !allTrue(d.done()) {
		call, minRaise, maxRaise = d.betSizes()
	}
	holeCards := make([][]string, len(d.holeCards))
	for i, cards := range d.holeCards {
		holeCards[i] = cardStrings(cards)
	}
	return Observation{
		Action:         d.action,
		Active:         slices.Clone(d.active),
		Button:         d.button,
		Call:           call,
		CommunityCards: cardStrings(d.communityCards),
		HoleCards:      holeCards,
		MaxRaise:       maxRaise,
		MinRaise:       minRaise,
		Pot:            d.pot,
		Stacks:         slices.Clone(d.stacks),
		StreetCommits:  slices.Clone(d.streetCommits),
	}
}

// Snapshot is the presentation contract: everything a renderer needs to
// draw the table at any point in the hand.
type Snapshot struct {
	Action         int
	Active         []bool
	AllIn          []bool
	Button         int
	CommunityCards []poker.Card
	Done           bool
	HoleCards      [][]poker.Card
	Pot            int
	Payouts        []int
	PrevAction     *HistoryEntry
	StreetCommits  []int
	Stacks         []int
}

// State returns an immutable snapshot of the table.
func (d *Dealer) State() Snapshot {
	n := d.cfg.NumPlayers
	allIn := make([]bool, n)
	for i := range n {
		allIn[i] = d.active[i] && d.stacks[i] == 0
	}
	holeCards := make([][]poker.Card, n)
	for i, cards := range d.holeCards {
		holeCards[i] = slices.Clone(cards)
	}
	var prev *HistoryEntry
	if len(d.history) > 0 {
		entry := d.history[len(d.history)-1]
		prev = &entry
	}
	return Snapshot{
		Action:         d.action,
		Active:         slices.Clone(d.active),
		AllIn:          allIn,
		Button:         d.button,
		CommunityCards: slices.Clone(d.communityCards),
		Done:           allTrue(d.done()),
		HoleCards:      holeCards,
		Pot:            d.pot,
		Payouts:        d.payouts(),
		PrevAction:     prev,
		StreetCommits:  slices.Clone(d.streetCommits),
		Stacks:         slices.Clone(d.stacks),
	}
}

func cardStrings(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.String()
	}
	return out
}
