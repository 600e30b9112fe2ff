package usecase

import (
	"context"

	"desert-war-service/internal/domain"
)

// EventUseCase реализует бизнес-логику для работы с событиями.
type EventUseCase struct {
	eventRepo domain.EventRepository
}

// NewEventUseCase создает новый экземпляр EventUseCase.
func NewEventUseCase(eventRepo domain.EventRepository) domain.EventUseCase {
	return &EventUseCase{
		eventRepo: eventRepo,
	}
}

// CreateEvent регистрирует событие с составом, полученным от внешней системы.
func (uc *EventUseCase) CreateEvent(ctx context.Context, event *domain.Event) error {
	// Валидация
	if event.ID == "" {
		return domain.ErrInvalidEventID
	}
	if event.Name == "" {
		return domain.ErrInvalidEventName
	}
	if len(event.Members) == 0 {
		return domain.ErrEventMustHaveMembers
	}
	for _, member := range event.Members {
		if member.UserID == "" {
			return domain.ErrInvalidUserID
		}
		if !domain.ValidPosition(member.Position) {
			return domain.ErrInvalidPosition
		}
	}

	// Проверяем, что событие не существует
	exists, err := uc.eventRepo.ExistsEvent(ctx, event.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEventAlreadyExists
	}

	return uc.eventRepo.Create(ctx, event)
}
