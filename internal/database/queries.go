package database

import (
	"context"
	"database/sql"
)

// DBTX общий интерфейс *sql.DB и *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries собирает SQL-запросы сервиса. Плейсхолдеры $N поддерживаются
// и pgx, и modernc sqlite.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// RosterMember строка таблицы roster_members.
type RosterMember struct {
	EventID      string
	UserID       string
	DisplayName  string
	Level        int32
	Power        int64
	IntentType   string
	AssignedTeam sql.NullString
	Position     sql.NullInt64
	IsCandidate  bool
}

const createEvent = `
INSERT INTO events (event_id, name) VALUES ($1, $2)
`

type CreateEventParams struct {
	EventID string
	Name    string
}

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx, createEvent, arg.EventID, arg.Name)
	return err
}

const eventExists = `
SELECT COUNT(*) FROM events WHERE event_id = $1
`

func (q *Queries) EventExists(ctx context.Context, eventID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, eventExists, eventID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const eventConfirmed = `
SELECT confirmed_at IS NOT NULL FROM events WHERE event_id = $1
`

func (q *Queries) EventConfirmed(ctx context.Context, eventID string) (bool, error) {
	row := q.db.QueryRowContext(ctx, eventConfirmed, eventID)
	var confirmed bool
	err := row.Scan(&confirmed)
	return confirmed, err
}

const markEventConfirmed = `
UPDATE events SET confirmed_at = CURRENT_TIMESTAMP WHERE event_id = $1
`

func (q *Queries) MarkEventConfirmed(ctx context.Context, eventID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, markEventConfirmed, eventID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const upsertRosterMember = `
INSERT INTO roster_members (event_id, user_id, display_name, level, power, intent_type, assigned_team, position, is_candidate)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (event_id, user_id) DO UPDATE SET
    display_name = excluded.display_name,
    level        = excluded.level,
    power        = excluded.power,
    intent_type  = excluded.intent_type
`

func (q *Queries) UpsertRosterMember(ctx context.Context, arg RosterMember) error {
	_, err := q.db.ExecContext(ctx, upsertRosterMember,
		arg.EventID,
		arg.UserID,
		arg.DisplayName,
		arg.Level,
		arg.Power,
		arg.IntentType,
		arg.AssignedTeam,
		arg.Position,
		arg.IsCandidate,
	)
	return err
}

const listRosterMembers = `
SELECT event_id, user_id, display_name, level, power, intent_type, assigned_team, position, is_candidate
FROM roster_members
WHERE event_id = $1
ORDER BY user_id
`

func (q *Queries) ListRosterMembers(ctx context.Context, eventID string) ([]RosterMember, error) {
	rows, err := q.db.QueryContext(ctx, listRosterMembers, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RosterMember
	for rows.Next() {
		var i RosterMember
		if err := rows.Scan(
			&i.EventID,
			&i.UserID,
			&i.DisplayName,
			&i.Level,
			&i.Power,
			&i.IntentType,
			&i.AssignedTeam,
			&i.Position,
			&i.IsCandidate,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRosterAssignment = `
UPDATE roster_members
SET assigned_team = $3,
    position      = $4,
    is_candidate  = COALESCE($5, is_candidate),
    updated_at    = CURRENT_TIMESTAMP
WHERE event_id = $1 AND user_id = $2
`

type UpdateRosterAssignmentParams struct {
	EventID      string
	UserID       string
	AssignedTeam sql.NullString
	Position     sql.NullInt64
	IsCandidate  sql.NullBool
}

func (q *Queries) UpdateRosterAssignment(ctx context.Context, arg UpdateRosterAssignmentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateRosterAssignment,
		arg.EventID,
		arg.UserID,
		arg.AssignedTeam,
		arg.Position,
		arg.IsCandidate,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const insertRosterCommit = `
INSERT INTO roster_commits (commit_id, event_id, kind, entries) VALUES ($1, $2, $3, $4)
`

type InsertRosterCommitParams struct {
	CommitID string
	EventID  string
	Kind     string
	Entries  int32
}

func (q *Queries) InsertRosterCommit(ctx context.Context, arg InsertRosterCommitParams) error {
	_, err := q.db.ExecContext(ctx, insertRosterCommit, arg.CommitID, arg.EventID, arg.Kind, arg.Entries)
	return err
}

const countRosterCommits = `
SELECT COUNT(*) FROM roster_commits WHERE event_id = $1 AND kind = $2
`

type CountRosterCommitsParams struct {
	EventID string
	Kind    string
}

func (q *Queries) CountRosterCommits(ctx context.Context, arg CountRosterCommitsParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRosterCommits, arg.EventID, arg.Kind)
	var count int64
	err := row.Scan(&count)
	return count, err
}
