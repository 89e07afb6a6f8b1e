package domain

import "errors"

// LevelExperienceStep is the per-level experience threshold: a player at
// level N levels up once accumulated experience reaches N * LevelExperienceStep.
const LevelExperienceStep = 1000

// ErrAlreadyCompleted is returned when a completion is attempted on an
// entity whose flag has already been flipped.
var ErrAlreadyCompleted = errors.New("already completed")

// ApplyReward credits a reward to a player's progression triple and returns
// the new triple. Experience and coins only ever grow. The level check runs
// once per call: a reward large enough to cross several thresholds still
// advances a single level, and the next reward picks up from there.
//
// Callers must validate that the reward amounts are non-negative before
// invoking; this rule does not defend against negative rewards.
func ApplyReward(level, experience, coins, expReward, coinReward int) (newLevel, newExperience, newCoins int) {
	newExperience = experience + expReward
	newCoins = coins + coinReward
	newLevel = level
	if newExperience >= level*LevelExperienceStep {
		newLevel = level + 1
	}
	return newLevel, newExperience, newCoins
}

// Completable is a reward-bearing entity with a one-way completion flag.
// Quest and Achievement both satisfy it, sharing a single completion
// transition.
type Completable interface {
	Completed() bool
	MarkCompleted()
	// Reward returns the experience and coin amounts granted on completion.
	Reward() (experience, coins int)
	// RewardSource identifies the entity for the reward ledger.
	RewardSource() (RewardSource, int64)
}

// CompleteAndReward performs the pending-to-completed transition on c and
// credits its reward to player, returning the ledger entry describing the
// mutation. It fails with ErrAlreadyCompleted and touches nothing when the
// transition already happened. The caller is responsible for persisting the
// mutated entity, the player and the entry atomically.
func CompleteAndReward(c Completable, player *Player) (*RewardEntry, error) {
	if c.Completed() {
		return nil, ErrAlreadyCompleted
	}
	c.MarkCompleted()

	expReward, coinReward := c.Reward()
	entry := &RewardEntry{
		PlayerID:      player.ID,
		Experience:    expReward,
		Coins:         coinReward,
		OldLevel:      player.Level,
		OldExperience: player.Experience,
		OldCoins:      player.Coins,
	}
	entry.SourceType, entry.SourceID = c.RewardSource()

	player.Level, player.Experience, player.Coins = ApplyReward(
		player.Level, player.Experience, player.Coins, expReward, coinReward,
	)

	entry.NewLevel = player.Level
	entry.NewExperience = player.Experience
	entry.NewCoins = player.Coins
	return entry, nil
}
