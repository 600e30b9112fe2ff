package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"desert-war-service/internal/database"
	"desert-war-service/internal/domain"
)

// EventRepository реализует взаимодействие с данными событий в БД.
type EventRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewEventRepository создает новый экземпляр EventRepository.
func NewEventRepository(db *sql.DB, queries *database.Queries) domain.EventRepository {
	return &EventRepository{
		db:      db,
		queries: queries,
	}
}

// Create создает событие и добавляет/обновляет участников состава.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Создаем событие
	err = txQueries.CreateEvent(ctx, database.CreateEventParams{
		EventID: event.ID,
		Name:    event.Name,
	})
	if err != nil {
		// параллельный импорт того же события успел создать его раньше
		if isUniqueViolation(err) {
			err = domain.ErrEventAlreadyExists
			return err
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	// 2. Создаем/обновляем участников
	for _, member := range event.Members {
		err = txQueries.UpsertRosterMember(ctx, toDBMember(event.ID, member))
		if err != nil {
			return fmt.Errorf("failed to upsert member %s: %w", member.UserID, err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ExistsEvent проверяет существование события.
func (r *EventRepository) ExistsEvent(ctx context.Context, eventID string) (bool, error) {
	count, err := r.queries.EventExists(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %w", err)
	}
	return count > 0, nil
}

// IsConfirmed сообщает, был ли состав события подтверждён.
func (r *EventRepository) IsConfirmed(ctx context.Context, eventID string) (bool, error) {
	confirmed, err := r.queries.EventConfirmed(ctx, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("failed to get event confirmation: %w", err)
	}
	return confirmed, nil
}
