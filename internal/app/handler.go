package app

import (
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/http/handlers"
	"github.com/ksoltys/teagarden/internal/infrastructure/auth"
)

func (a *application) InitPlayerHandler(uc domain.PlayerUseCase, jwt auth.JWTService) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(uc, jwt)
}

func (a *application) InitTeaCardHandler(uc domain.TeaCardUseCase) *handlers.TeaCardHandler {
	return handlers.NewTeaCardHandler(uc)
}

func (a *application) InitUserCardHandler(uc domain.UserCardUseCase, pc domain.PlayerUseCase) *handlers.UserCardHandler {
	return handlers.NewUserCardHandler(uc, pc)
}

func (a *application) InitQuestHandler(uc domain.QuestUseCase) *handlers.QuestHandler {
	return handlers.NewQuestHandler(uc)
}

func (a *application) InitAchievementHandler(uc domain.AchievementUseCase) *handlers.AchievementHandler {
	return handlers.NewAchievementHandler(uc)
}

func (a *application) InitWeeklyEventHandler(uc domain.WeeklyEventUseCase) *handlers.WeeklyEventHandler {
	return handlers.NewWeeklyEventHandler(uc)
}
