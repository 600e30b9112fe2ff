package domain

import "context"

// EventUseCase определяет бизнес-логику для работы с событиями.
type EventUseCase interface {
	CreateEvent(ctx context.Context, event *Event) error
}

// RosterView отсортированное представление состава события.
type RosterView struct {
	EventID      string
	State        RosterState
	Confirmed    bool
	PendingCount int
	Buckets      map[Bucket][]*RosterMember
	Limits       map[Bucket]int
}

// RosterState состояние редактирования состава.
type RosterState string

const (
	StateLoaded    RosterState = "LOADED"
	StateEditing   RosterState = "EDITING"
	StateSaved     RosterState = "SAVED"
	StateConfirmed RosterState = "CONFIRMED"
)

// MoveResult результат перемещения участника.
type MoveResult struct {
	View    *RosterView
	Warning *CapacityWarning
}

// AllocationUseCase определяет бизнес-логику распределения состава.
type AllocationUseCase interface {
	GetRoster(ctx context.Context, eventID string) (*RosterView, error)
	ReloadRoster(ctx context.Context, eventID string) (*RosterView, error)
	MoveMember(ctx context.Context, eventID, userID string, from, to Bucket) (*MoveResult, error)
	SetPosition(ctx context.Context, eventID, userID string, position int) (*RosterView, error)
	SaveRoster(ctx context.Context, eventID string) (*CommitOutcome, error)
	ConfirmRoster(ctx context.Context, eventID string) (*CommitOutcome, error)
}
