package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/clubs/poker"
)

// checkDown feeds zero bets until every seat is done and returns the
// final results, verifying payouts balance and the terminal observation
// has no acting seat and zero bet sizes.
func checkDown(t *testing.T, d *Dealer) (Observation, []int, []bool) {
	t.Helper()
	for {
		obs, payouts, done, err := d.Step(0)
		require.NoError(t, err)
		if allTrue(done) {
			assert.Zero(t, sum(payouts), "terminal payouts must balance")
			assert.Equal(t, -1, obs.Action)
			assert.Zero(t, obs.Call)
			assert.Zero(t, obs.MinRaise)
			assert.Zero(t, obs.MaxRaise)
			return obs, payouts, done
		}
	}
}

func TestLeducShowdown(t *testing.T) {
	t.Parallel()

	d := newDealer(t, LeducTwoPlayer())
	require.NoError(t, d.Deck().Trick(poker.MustCards("QsKsQh"), true))
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	obs, payouts, done := mustStep(t, d, 2, 4, 2, 0, 2, 2)
	require.True(t, allTrue(done))
	assert.Equal(t, 14, obs.Pot)
	assert.Greater(t, payouts[0], payouts[1])
	assert.Equal(t, 7, payouts[0])
	assert.Equal(t, -7, payouts[1])
	assert.Equal(t, []int{17, 3}, obs.Stacks)

	// terminal steps are idempotent: no re-crediting, same payouts
	again, payoutsAgain, doneAgain := mustStep(t, d, 0)
	assert.Equal(t, obs.Stacks, again.Stacks)
	assert.Equal(t, payouts, payoutsAgain)
	assert.Equal(t, done, doneAgain)
}

func TestAllButOneFold(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemSixPlayer())
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	obs, payouts, done := mustStep(t, d, -1, -1, -1, -1, -1)
	require.True(t, allTrue(done))
	assert.Equal(t, 3, obs.Pot)
	assert.Equal(t, []int{0, -1, 1, 0, 0, 0}, payouts)
	assert.Equal(t, []int{200, 199, 201, 200, 200, 200}, obs.Stacks)
}

func TestAllAllInRevealsEveryStreet(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemSixPlayer())
	require.NoError(t, d.Deck().Trick(poker.MustCards("2s4h2d5c2c5d3s6c3h6dAsAhAcKd7s8d9c"), true))
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	obs, payouts, done := mustStep(t, d, 200, 200, 200, 200, 200, 200)
	require.True(t, allTrue(done))
	assert.Equal(t, 1200, obs.Pot)
	assert.Len(t, obs.CommunityCards, 5, "all community cards reveal at once")
	assert.Equal(t, []int{-200, -200, -200, -200, -200, 1000}, payouts)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1200}, obs.Stacks)
}

func TestStepAfterHandEnds(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemSixPlayer())
	require.NoError(t, d.Deck().Trick(poker.MustCards("2s4h2d5c2c5d3s6c3h6dAsAhAcKd7s8d9c"), true))
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	obs, _, done := mustStep(t, d, 200, 200, 200, 200, 200, 200)
	require.True(t, allTrue(done))

	// stepping a finished hand changes nothing
	for range 3 {
		next, payouts, nextDone := mustStep(t, d, 200)
		assert.True(t, allTrue(nextDone))
		assert.Equal(t, -1, next.Action)
		assert.Zero(t, next.Call)
		assert.Zero(t, next.MinRaise)
		assert.Zero(t, next.MaxRaise)
		assert.Equal(t, obs.Stacks, next.Stacks)
		assert.Equal(t, []int{-200, -200, -200, -200, -200, 1000}, payouts)
	}
}

// Nine-player hand ending in a two-way chopped pot with an odd chip. The
// remainder lands on the winning seat closest after the button.
func TestSplitPotRemainder(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemNinePlayer())
	trick := poker.MustCards(
		"6c8sAcAdKd2hTh9cJsJc6h8d5c7dQh2c3d4s" + "4d5h7cAcKh")
	require.NoError(t, d.Deck().Trick(trick, true))
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	obs, _, _ := mustStep(t, d, -1, 5, 5, 5, -1, -1, 5, 4, -1)
	assert.Equal(t, 27, obs.Pot)

	obs, _, _ = mustStep(t, d, 4, -1, 4, 4, 4)
	assert.Equal(t, 43, obs.Pot)

	_, payouts, _ := checkDown(t, d)
	assert.Equal(t, []int{12, -9, -2, 0, -5, 13, -9, 0, 0}, payouts)
}

// Nine-player hand where a short stack gets it in and two callers check
// the hand down; the short stack's straight scoops the capped pot.
func TestAllInSidePot(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemNinePlayer())
	trick := poker.MustCards(
		"6c8sAcAdKd2hTh9cJsJc6h8d5c7dQh2c3d4s" + "4d5h7cAcKh")
	require.NoError(t, d.Deck().Trick(trick, true))
	require.NoError(t, d.SetStacks([]int{20, 380, 200, 200, 200, 200, 200, 200, 200}))
	_, err := d.Reset(true, false)
	require.NoError(t, err)

	obs, _, _ := mustStep(t, d, -1, 50, 0, -1, -1, -1, 20, 49, -1)
	assert.Equal(t, 122, obs.Pot)

	_, payouts, _ := checkDown(t, d)
	assert.Equal(t, []int{42, 10, -2, 0, -50, 0, 0, 0, 0}, payouts)
}

// Two short stacks all in against a raiser and a caller; three straights
// chop the pot layer by layer with odd chips collected for the winning
// seat closest after the button.
func TestThreeWayAllInSidePots(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemNinePlayer())
	trick := poker.MustCards(
		"6c8sAcAdKd2hTh9c6d8h6h8d5c7dQh2c3d4s" + "4d5h7cAcKh")
	require.NoError(t, d.Deck().Trick(trick, true))
	require.NoError(t, d.SetStacks([]int{20, 380, 200, 200, 200, 35, 200, 365, 200}))
	_, err := d.Reset(true, false)
	require.NoError(t, err)

	obs, _, _ := mustStep(t, d, -1, 45, 35, -1, -1, -1, 20, 44, -1)
	assert.Equal(t, 147, obs.Pot)

	_, payouts, _ := checkDown(t, d)
	assert.Equal(t, []int{7, -45, -2, 0, 26, 14, 0, 0, 0}, payouts)
}

func TestKuhnShowdown(t *testing.T) {
	t.Parallel()

	d := newDealer(t, KuhnThreePlayer())
	require.NoError(t, d.Deck().Trick(poker.MustCards("KsAsJs"), true))
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	// everyone checks the single street; the ace takes the antes
	_, payouts, done := mustStep(t, d, 0, 0, 0)
	require.True(t, allTrue(done))
	assert.Equal(t, []int{-1, 2, -1}, payouts)
	assert.Zero(t, sum(payouts))
}

func TestDoneFlagsAreMonotone(t *testing.T) {
	t.Parallel()

	d := newDealer(t, NoLimitHoldemSixPlayer())
	_, err := d.Reset(true, true)
	require.NoError(t, err)

	folded := make([]bool, 6)
	for {
		_, _, done, err := d.Step(-1)
		require.NoError(t, err)
		for i, wasDone := range folded {
			if wasDone {
				assert.True(t, done[i], "done flag for seat %d regressed", i)
			}
		}
		copy(folded, done)
		if allTrue(done) {
			break
		}
	}
}
