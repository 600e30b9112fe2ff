package repository

import (
	"context"
	"database/sql"
	"fmt"

	"desert-war-service/internal/database"
	"desert-war-service/internal/domain"

	"github.com/google/uuid"
)

// RosterRepository реализует порт хранения состава поверх БД.
type RosterRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewRosterRepository создает новый экземпляр RosterRepository.
func NewRosterRepository(db *sql.DB, queries *database.Queries) domain.RosterRepository {
	return &RosterRepository{
		db:      db,
		queries: queries,
	}
}

// LoadRoster возвращает состав события.
func (r *RosterRepository) LoadRoster(ctx context.Context, eventID string) ([]*domain.RosterMember, error) {
	count, err := r.queries.EventExists(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event existence: %w", err)
	}
	if count == 0 {
		return nil, domain.ErrEventNotFound
	}

	rows, err := r.queries.ListRosterMembers(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster members: %w", err)
	}

	members := make([]*domain.RosterMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, toDomainMember(row))
	}

	return members, nil
}

// SaveRosterAssignments атомарно записывает пакет назначений. Пакет
// подтверждения дополнительно отмечает событие подтверждённым.
func (r *RosterRepository) SaveRosterAssignments(ctx context.Context, eventID string, kind domain.CommitKind, entries []domain.AssignmentEntry) (err error) {
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

	// 1. Назначения участников
	for _, entry := range entries {
		var affected int64
		affected, err = txQueries.UpdateRosterAssignment(ctx, toAssignmentParams(eventID, entry))
		if err != nil {
			return fmt.Errorf("failed to update assignment for %s: %w", entry.UserID, err)
		}
		if affected == 0 {
			err = fmt.Errorf("%w: user %s is not in roster of %s", domain.ErrAssignmentValidation, entry.UserID, eventID)
			return err
		}
	}

	// 2. Флаг подтверждения
	if kind == domain.CommitConfirm {
		var affected int64
		affected, err = txQueries.MarkEventConfirmed(ctx, eventID)
		if err != nil {
			return fmt.Errorf("failed to mark event confirmed: %w", err)
		}
		if affected == 0 {
			err = domain.ErrEventNotFound
			return err
		}
	}

	// 3. Журнал фиксаций
	err = txQueries.InsertRosterCommit(ctx, database.InsertRosterCommitParams{
		CommitID: uuid.NewString(),
		EventID:  eventID,
		Kind:     string(kind),
		Entries:  int32(len(entries)),
	})
	if err != nil {
		return fmt.Errorf("failed to record commit: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
