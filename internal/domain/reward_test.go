package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyReward(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		experience int
		coins      int
		expReward  int
		coinReward int
		wantLevel  int
		wantExp    int
		wantCoins  int
	}{
		{
			name:  "NoThresholdCrossed",
			level: 1, experience: 100, coins: 50,
			expReward: 100, coinReward: 20,
			wantLevel: 1, wantExp: 200, wantCoins: 70,
		},
		{
			name:  "ThresholdCrossedOnce",
			level: 1, experience: 950, coins: 100,
			expReward: 100, coinReward: 20,
			wantLevel: 2, wantExp: 1050, wantCoins: 120,
		},
		{
			name:  "LargeRewardAdvancesSingleLevel",
			level: 1, experience: 0, coins: 0,
			expReward: 2500, coinReward: 0,
			wantLevel: 2, wantExp: 2500, wantCoins: 0,
		},
		{
			name:  "ExactThreshold",
			level: 3, experience: 2900, coins: 10,
			expReward: 100, coinReward: 0,
			wantLevel: 4, wantExp: 3000, wantCoins: 10,
		},
		{
			name:  "ZeroReward",
			level: 2, experience: 500, coins: 500,
			expReward: 0, coinReward: 0,
			wantLevel: 2, wantExp: 500, wantCoins: 500,
		},
		{
			name:  "CoinOnlyReward",
			level: 5, experience: 4000, coins: 0,
			expReward: 0, coinReward: 300,
			wantLevel: 5, wantExp: 4000, wantCoins: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, exp, coins := ApplyReward(tt.level, tt.experience, tt.coins, tt.expReward, tt.coinReward)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantExp, exp)
			assert.Equal(t, tt.wantCoins, coins)
		})
	}
}

func TestApplyRewardProperties(t *testing.T) {
	// Experience and coins never shrink, and a single call advances at most
	// one level regardless of the reward size.
	for level := 1; level <= 5; level++ {
		for _, exp := range []int{0, 500, 999, 1000, 4999} {
			for _, reward := range []int{0, 1, 100, 999, 1000, 5000} {
				newLevel, newExp, newCoins := ApplyReward(level, exp, 10, reward, reward)
				assert.GreaterOrEqual(t, newExp, exp)
				assert.GreaterOrEqual(t, newCoins, 10)
				assert.Contains(t, []int{0, 1}, newLevel-level)

				crossed := exp+reward >= level*LevelExperienceStep
				assert.Equal(t, crossed, newLevel == level+1,
					"level %d exp %d reward %d", level, exp, reward)
			}
		}
	}
}

func TestCompleteAndReward(t *testing.T) {
	t.Run("QuestTransition", func(t *testing.T) {
		quest := &Quest{ID: 7, ExperienceReward: 100, CoinReward: 20}
		player := &Player{ID: 1, Level: 1, Experience: 950, Coins: 100}

		entry, err := CompleteAndReward(quest, player)
		assert.NoError(t, err)
		assert.True(t, quest.IsCompleted)
		assert.Equal(t, 2, player.Level)
		assert.Equal(t, 1050, player.Experience)
		assert.Equal(t, 120, player.Coins)

		assert.Equal(t, RewardSourceQuest, entry.SourceType)
		assert.Equal(t, int64(7), entry.SourceID)
		assert.Equal(t, 1, entry.OldLevel)
		assert.Equal(t, 2, entry.NewLevel)
		assert.Equal(t, 950, entry.OldExperience)
		assert.Equal(t, 1050, entry.NewExperience)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		quest := &Quest{ID: 7, ExperienceReward: 100, CoinReward: 20, IsCompleted: true}
		player := &Player{ID: 1, Level: 1, Experience: 950, Coins: 100}

		entry, err := CompleteAndReward(quest, player)
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
		assert.Nil(t, entry)
		assert.Equal(t, 1, player.Level)
		assert.Equal(t, 950, player.Experience)
		assert.Equal(t, 100, player.Coins)
	})

	t.Run("AchievementIgnoresProgress", func(t *testing.T) {
		achievement := &Achievement{ID: 3, PlayerID: 1, Requirement: 10, Progress: 0, ExperienceReward: 50, CoinReward: 5}
		player := &Player{ID: 1, Level: 1, Experience: 0, Coins: 0}

		entry, err := CompleteAndReward(achievement, player)
		assert.NoError(t, err)
		assert.True(t, achievement.IsCompleted)
		assert.Equal(t, RewardSourceAchievement, entry.SourceType)
		assert.Equal(t, 50, player.Experience)
	})
}
