package app

import (
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/auth"
	"github.com/ksoltys/teagarden/internal/infrastructure/lock"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"github.com/ksoltys/teagarden/internal/usecase/achievement"
	"github.com/ksoltys/teagarden/internal/usecase/catalog"
	"github.com/ksoltys/teagarden/internal/usecase/collection"
	"github.com/ksoltys/teagarden/internal/usecase/player"
	"github.com/ksoltys/teagarden/internal/usecase/quest"
	"gorm.io/gorm"
)

func (a *application) InitPlayerUseCase(
	pr domain.PlayerRepository,
	rr domain.RewardEntryRepository,
	jwt auth.JWTService,
	log *logger.Logger,
) domain.PlayerUseCase {
	return player.NewPlayerUseCase(pr, rr, jwt, log)
}

func (a *application) InitTeaCardUseCase(tr domain.TeaCardRepository, log *logger.Logger) domain.TeaCardUseCase {
	return catalog.NewTeaCardUseCase(tr, log)
}

func (a *application) InitWeeklyEventUseCase(wr domain.WeeklyEventRepository, log *logger.Logger) domain.WeeklyEventUseCase {
	return catalog.NewWeeklyEventUseCase(wr, log)
}

func (a *application) InitUserCardUseCase(
	ucr domain.UserCardRepository,
	tr domain.TeaCardRepository,
	pr domain.PlayerRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.UserCardUseCase {
	return collection.NewUserCardUseCase(ucr, tr, pr, db, log)
}

func (a *application) InitQuestUseCase(
	qr domain.QuestRepository,
	pr domain.PlayerRepository,
	rr domain.RewardEntryRepository,
	db *gorm.DB,
	log *logger.Logger,
	locks *lock.PlayerLockManager,
) domain.QuestUseCase {
	return quest.NewQuestUseCase(qr, pr, rr, db, log, locks)
}

func (a *application) InitAchievementUseCase(
	ar domain.AchievementRepository,
	pr domain.PlayerRepository,
	rr domain.RewardEntryRepository,
	db *gorm.DB,
	log *logger.Logger,
	locks *lock.PlayerLockManager,
) domain.AchievementUseCase {
	return achievement.NewAchievementUseCase(ar, pr, rr, db, log, locks)
}
