package repository

import (
	"database/sql"

	"desert-war-service/internal/database"
	"desert-war-service/internal/domain"
)

// Вспомогательные функции преобразования строк БД в доменные модели.
// TeamUnassigned и PositionNone хранятся как NULL.

func toDomainMember(row database.RosterMember) *domain.RosterMember {
	member := &domain.RosterMember{
		UserID:      row.UserID,
		DisplayName: row.DisplayName,
		Level:       int(row.Level),
		Power:       row.Power,
		IntentType:  domain.Intent(row.IntentType),
		Position:    domain.PositionNone,
		IsCandidate: row.IsCandidate,
	}
	if row.AssignedTeam.Valid {
		member.AssignedTeam = domain.Team(row.AssignedTeam.String)
	}
	if row.Position.Valid {
		member.Position = int(row.Position.Int64)
	}
	return member
}

func toDBMember(eventID string, member *domain.RosterMember) database.RosterMember {
	return database.RosterMember{
		EventID:      eventID,
		UserID:       member.UserID,
		DisplayName:  member.DisplayName,
		Level:        int32(member.Level),
		Power:        member.Power,
		IntentType:   string(member.IntentType),
		AssignedTeam: nullTeam(member.AssignedTeam),
		Position:     nullPosition(member.Position),
		IsCandidate:  member.IsCandidate,
	}
}

func toAssignmentParams(eventID string, entry domain.AssignmentEntry) database.UpdateRosterAssignmentParams {
	params := database.UpdateRosterAssignmentParams{
		EventID:      eventID,
		UserID:       entry.UserID,
		AssignedTeam: nullTeam(entry.AssignedTeam),
		Position:     nullPosition(entry.Position),
	}
	if entry.IsCandidate != nil {
		params.IsCandidate = sql.NullBool{Bool: *entry.IsCandidate, Valid: true}
	}
	return params
}

func nullTeam(team domain.Team) sql.NullString {
	if !team.IsSet() {
		return sql.NullString{}
	}
	return sql.NullString{String: string(team), Valid: true}
}

func nullPosition(position int) sql.NullInt64 {
	if position == domain.PositionNone {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(position), Valid: true}
}
