package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidEventID       = errors.New("invalid event id")
	ErrInvalidEventName     = errors.New("invalid event name")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidBucket        = errors.New("invalid bucket")
	ErrInvalidPosition      = errors.New("invalid position")
	ErrEventMustHaveMembers = errors.New("event must have members")

	// Event errors
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event already exists")

	// Roster errors
	ErrMemberNotFound    = errors.New("member not found in roster")
	ErrMemberNotInBucket = errors.New("member is not in the source bucket")
	ErrMemberNotFlexible = errors.New("only AB_POSSIBLE members can be undecided")

	// Commit errors
	ErrPendingUndecidedMembers = errors.New("undecided members must be assigned before confirm")
	ErrCommitInProgress        = errors.New("save or confirm already in progress")
	ErrAssignmentValidation    = errors.New("roster assignment rejected by storage")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidEventID:          {Code: "INVALID_REQUEST", Message: "event_id is required"},
	ErrInvalidEventName:        {Code: "INVALID_REQUEST", Message: "event name is required"},
	ErrInvalidUserID:           {Code: "INVALID_REQUEST", Message: "user_id is required"},
	ErrInvalidBucket:           {Code: "INVALID_REQUEST", Message: "unknown bucket"},
	ErrInvalidPosition:         {Code: "INVALID_REQUEST", Message: "unknown position slot"},
	ErrEventMustHaveMembers:    {Code: "INVALID_REQUEST", Message: "event must have roster members"},
	ErrEventNotFound:           {Code: "NOT_FOUND", Message: "event not found"},
	ErrEventAlreadyExists:      {Code: "EVENT_EXISTS", Message: "event_id already exists"},
	ErrMemberNotFound:          {Code: "NOT_FOUND", Message: "member not found in roster"},
	ErrMemberNotInBucket:       {Code: "BUCKET_MISMATCH", Message: "member is not in the source bucket"},
	ErrMemberNotFlexible:       {Code: "NOT_FLEXIBLE", Message: "only AB_POSSIBLE members can be moved to UNDECIDED"},
	ErrPendingUndecidedMembers: {Code: "PENDING_UNDECIDED_MEMBERS", Message: "assign all undecided members before confirm"},
	ErrCommitInProgress:        {Code: "COMMIT_IN_PROGRESS", Message: "another save or confirm is in progress"},
	ErrAssignmentValidation:    {Code: "VALIDATION_ERROR", Message: "roster assignment rejected"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку.
// Обёрнутые ошибки раскрываются через errors.Is.
func ToHTTPError(err error) (HTTPError, bool) {
	if httpErr, exists := ErrorMapping[err]; exists {
		return httpErr, true
	}
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
