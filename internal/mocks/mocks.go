// Package mocks содержит testify-моки доменных портов.
package mocks

import (
	"context"

	"desert-war-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RosterRepository мок порта хранения состава.
type RosterRepository struct {
	mock.Mock
}

func (m *RosterRepository) LoadRoster(ctx context.Context, eventID string) ([]*domain.RosterMember, error) {
	args := m.Called(ctx, eventID)
	members, _ := args.Get(0).([]*domain.RosterMember)
	return members, args.Error(1)
}

func (m *RosterRepository) SaveRosterAssignments(ctx context.Context, eventID string, kind domain.CommitKind, entries []domain.AssignmentEntry) error {
	args := m.Called(ctx, eventID, kind, entries)
	return args.Error(0)
}

// EventRepository мок хранилища событий.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventRepository) ExistsEvent(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *EventRepository) IsConfirmed(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

// Notifier мок порта уведомлений.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) CapacityWarning(ctx context.Context, eventID string, warning domain.CapacityWarning) {
	m.Called(ctx, eventID, warning)
}

func (m *Notifier) CommitSucceeded(ctx context.Context, outcome domain.CommitOutcome) {
	m.Called(ctx, outcome)
}

func (m *Notifier) CommitFailed(ctx context.Context, eventID string, kind domain.CommitKind, err error) {
	m.Called(ctx, eventID, kind, err)
}
