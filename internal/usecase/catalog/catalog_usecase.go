package catalog

import (
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
)

// TeaCardUseCase implements domain.TeaCardUseCase over the read-only catalog
type TeaCardUseCase struct {
	teaCardRepo domain.TeaCardRepository
	logger      *logger.Logger
}

// NewTeaCardUseCase creates a new tea card use case
func NewTeaCardUseCase(teaCardRepo domain.TeaCardRepository, logger *logger.Logger) domain.TeaCardUseCase {
	return &TeaCardUseCase{teaCardRepo: teaCardRepo, logger: logger}
}

// GetByID retrieves a tea card by ID
func (uc *TeaCardUseCase) GetByID(id int64) (*domain.TeaCard, error) {
	card, err := uc.teaCardRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get tea card", 500, err)
	}
	if card == nil {
		return nil, domain.NewAppError(domain.ErrCodeTeaCardNotFound, "Tea card not found", 404, nil)
	}
	return card, nil
}

// List retrieves the full card catalog
func (uc *TeaCardUseCase) List() ([]*domain.TeaCard, error) {
	cards, err := uc.teaCardRepo.List()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list tea cards", 500, err)
	}
	return cards, nil
}

// WeeklyEventUseCase implements domain.WeeklyEventUseCase over the read-only
// event schedule
type WeeklyEventUseCase struct {
	eventRepo domain.WeeklyEventRepository
	logger    *logger.Logger
}

// NewWeeklyEventUseCase creates a new weekly event use case
func NewWeeklyEventUseCase(eventRepo domain.WeeklyEventRepository, logger *logger.Logger) domain.WeeklyEventUseCase {
	return &WeeklyEventUseCase{eventRepo: eventRepo, logger: logger}
}

// GetByID retrieves a weekly event by ID
func (uc *WeeklyEventUseCase) GetByID(id int64) (*domain.WeeklyEvent, error) {
	event, err := uc.eventRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get weekly event", 500, err)
	}
	if event == nil {
		return nil, domain.NewAppError(domain.ErrCodeEventNotFound, "Weekly event not found", 404, nil)
	}
	return event, nil
}

// List retrieves the full event schedule
func (uc *WeeklyEventUseCase) List() ([]*domain.WeeklyEvent, error) {
	events, err := uc.eventRepo.List()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list weekly events", 500, err)
	}
	return events, nil
}
