package handler

import (
	"errors"
	"net/http"

	"desert-war-service/api"
	"desert-war-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIMember(member *domain.RosterMember) api.RosterMember {
	var assignedTeam *string
	if member.AssignedTeam.IsSet() {
		team := string(member.AssignedTeam)
		assignedTeam = &team
	}
	return api.RosterMember{
		UserId:       member.UserID,
		DisplayName:  member.DisplayName,
		Level:        member.Level,
		Power:        member.Power,
		IntentType:   string(member.IntentType),
		AssignedTeam: assignedTeam,
		Position:     member.Position,
		IsCandidate:  member.IsCandidate,
	}
}

func toDomainMember(member api.RosterMember) *domain.RosterMember {
	result := &domain.RosterMember{
		UserID:      member.UserId,
		DisplayName: member.DisplayName,
		Level:       member.Level,
		Power:       member.Power,
		IntentType:  domain.Intent(member.IntentType),
		Position:    member.Position,
		IsCandidate: member.IsCandidate,
	}
	if member.AssignedTeam != nil {
		result.AssignedTeam = domain.Team(*member.AssignedTeam)
	}
	// слоты нумеруются с 1, отсутствующее в JSON поле означает «без позиции»
	if result.Position == 0 {
		result.Position = domain.PositionNone
	}
	return result
}

func toAPIRosterView(view *domain.RosterView) api.RosterView {
	buckets := make(map[string][]api.RosterMember, len(view.Buckets))
	for bucket, members := range view.Buckets {
		list := make([]api.RosterMember, len(members))
		for i, member := range members {
			list[i] = toAPIMember(member)
		}
		buckets[string(bucket)] = list
	}

	limits := make(map[string]int, len(view.Limits))
	for bucket, limit := range view.Limits {
		limits[string(bucket)] = limit
	}

	return api.RosterView{
		EventId:      view.EventID,
		State:        string(view.State),
		Confirmed:    view.Confirmed,
		PendingCount: view.PendingCount,
		Buckets:      buckets,
		Limits:       limits,
	}
}

func toAPICapacityWarning(warning *domain.CapacityWarning) *api.CapacityWarning {
	if warning == nil {
		return nil
	}
	return &api.CapacityWarning{
		Bucket:       api.Bucket(warning.Bucket),
		CurrentCount: warning.CurrentCount,
		Limit:        warning.Limit,
	}
}

func toAPICommitResult(outcome *domain.CommitOutcome) api.CommitResult {
	return api.CommitResult{
		EventId: outcome.EventID,
		Kind:    string(outcome.Kind),
		Entries: outcome.Entries,
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrEventAlreadyExists),
		errors.Is(err, domain.ErrMemberNotInBucket),
		errors.Is(err, domain.ErrMemberNotFlexible),
		errors.Is(err, domain.ErrPendingUndecidedMembers),
		errors.Is(err, domain.ErrCommitInProgress):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidEventID),
		errors.Is(err, domain.ErrInvalidEventName),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidBucket),
		errors.Is(err, domain.ErrInvalidPosition),
		errors.Is(err, domain.ErrEventMustHaveMembers):
		return http.StatusBadRequest

	// Хранилище отклонило пакет (422)
	case errors.Is(err, domain.ErrAssignmentValidation):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
