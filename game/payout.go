package game

import (
	"slices"
	"sort"
)

// payouts returns the per-seat net payoffs for the hand so far. Folded
// seats are down their pot commit; when the hand ends the winners'
// shares are credited back to the stacks exactly once and the final
// payouts are cached, so terminal steps stay idempotent.
func (d *Dealer) payouts() []int {
	if d.settled {
		return slices.Clone(d.finalPayouts)
	}

	n := d.cfg.NumPlayers
	payouts := make([]int, n)
	for i := range n {
		if !d.active[i] {
			payouts[i] = -d.potCommit[i]
		}
	}
	switch {
	case countTrue(d.active) == 1:
		for i := range n {
			if d.active[i] {
				payouts[i] += d.pot - d.potCommit[i]
			}
		}
	case d.street >= d.cfg.NumStreets:
		winnings := d.evalRound()
		for i := range n {
			payouts[i] = winnings[i] - d.potCommit[i]
		}
	}

	anyWinner := false
	for _, p := range payouts {
		if p > 0 {
			anyWinner = true
			break
		}
	}
	if anyWinner {
		for i := range n {
			d.stacks[i] += payouts[i] + d.potCommit[i]
		}
		d.logger.Debug("settled pot", "pot", d.pot, "payouts", payouts)
	}
	if d.terminal() {
		d.settled = true
		d.finalPayouts = slices.Clone(payouts)
	}
	return payouts
}

// showdownRow pairs a seat with its hand strength and the chips it still
// has in contention; commit shrinks as pot layers are paid out.
type showdownRow struct {
	seat     int
	strength int
	commit   int
}

// evalRound distributes the pot at showdown. Seats are processed from
// strongest hand and smallest commit upward; each round caps every seat's
// remaining commit at the row's commit (the side-pot layer), splits that
// layer among the seats tied at the row's strength, and retires the row.
// Odd chips collect into a remainder paid to the winning seat closest
// after the button.
func (d *Dealer) evalRound() []int {
	n := d.cfg.NumPlayers
	// folded seats rank below every possible hand (ranks lie in
	// [0, MaxRank()))
	worst := d.evaluator.MaxRank() + 1

	rows := make([]showdownRow, n)
	for seat := range n {
		strength := worst
		if d.active[seat] {
			strength = d.evaluator.Evaluate(d.holeCards[seat], d.communityCards)
		}
		rows[seat] = showdownRow{seat: seat, strength: strength, commit: d.potCommit[seat]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].strength != rows[j].strength {
			return rows[i].strength < rows[j].strength
		}
		return rows[i].commit < rows[j].commit
	})

	payouts := make([]int, n)
	pot := d.pot
	remainder := 0
	cut := make([]int, n)
	for idx := range rows {
		strength, capCommit := rows[idx].strength, rows[idx].commit

		var eligible []int
		for _, row := range rows {
			if row.strength == strength {
				eligible = append(eligible, row.seat)
			}
		}

		splitPot := 0
		for j := range rows {
			cut[j] = min(rows[j].commit, capCommit)
			splitPot += cut[j]
		}
		share := splitPot / len(eligible)
		remainder += splitPot % len(eligible)
		for _, seat := range eligible {
			payouts[seat] += share
		}
		for j := range rows {
			rows[j].commit -= cut[j]
		}
		pot -= splitPot
		rows[idx].strength = worst
		if pot == 0 {
			break
		}
	}

	if remainder > 0 {
		// the winner nearest after the button takes the odd chips
		winner, winnerKey := -1, 2*n
		for seat, payout := range payouts {
			if payout == 0 {
				continue
			}
			key := seat
			if seat <= d.button {
				key += n
			}
			if key < winnerKey {
				winner, winnerKey = seat, key
			}
		}
		if winner >= 0 {
			payouts[winner] += remainder
		}
	}
	return payouts
}
