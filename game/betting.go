package game

import "slices"

// betSizes computes the legal bet sizes for the acting seat: the call
// amount and the minimum and maximum raise, all clipped to the stack.
func (d *Dealer) betSizes() (call, minRaise, maxRaise int) {
	call = slices.Max(d.streetCommits) - d.streetCommits[d.action]

	// limit streets pin both raise bounds to the fixed size; otherwise the
	// minimum raise is at least the largest previous raise
	if size, ok := d.cfg.RaiseSizes[d.street].Fixed(); ok {
		minRaise = size + call
		maxRaise = size + call
	} else {
		minRaise = max(d.bigBlind, d.largestRaise+call)
		if d.cfg.RaiseSizes[d.street].IsPot() {
			// call, then raise by the resulting pot
			maxRaise = d.pot + 2*call
		} else {
			maxRaise = d.stacks[d.action]
		}
	}

	// raise cap reached: call or fold only
	if d.cfg.NumRaises[d.street].Reached(d.streetRaises) {
		minRaise, maxRaise = 0, 0
	}
	// facing an incomplete raise (an all-in short of the largest raise)
	// does not reopen the action
	if d.streetRaises > 0 && call < d.largestRaise {
		minRaise, maxRaise = 0, 0
	}

	stack := d.stacks[d.action]
	return min(call, stack), min(minRaise, stack), min(maxRaise, stack)
}

// cleanBet snaps a bet to the nearest of fold/check, call, min raise and
// max raise. Ties break toward the earlier option, which is the
// pessimistic choice for the bettor. Raises are clamped into
// [minRaise, maxRaise].
func cleanBet(bet, call, minRaise, maxRaise int) int {
	sizes := [4]int{0, call, minRaise, maxRaise}
	closest := 0
	for i := 1; i < len(sizes); i++ {
		if abs(sizes[i]-bet) < abs(sizes[closest]-bet) {
			closest = i
		}
	}
	switch closest {
	case 1:
		return call
	case 2, 3:
		return min(maxRaise, max(minRaise, bet))
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
