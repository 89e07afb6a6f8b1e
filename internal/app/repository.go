package app

import (
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (
	domain.PlayerRepository,
	domain.TeaCardRepository,
	domain.UserCardRepository,
	domain.QuestRepository,
	domain.AchievementRepository,
	domain.WeeklyEventRepository,
	domain.RewardEntryRepository,
) {
	return repository.NewPlayerRepository(db),
		repository.NewTeaCardRepository(db),
		repository.NewUserCardRepository(db),
		repository.NewQuestRepository(db),
		repository.NewAchievementRepository(db),
		repository.NewWeeklyEventRepository(db),
		repository.NewRewardEntryRepository(db)
}
