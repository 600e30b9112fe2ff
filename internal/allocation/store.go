package allocation

import (
	"maps"

	"desert-war-service/internal/domain"
)

// Store хранит зафиксированный состав события и таблицу несохранённых изменений.
// Ошибок не возвращает, валидацией занимается Controller.
type Store struct {
	members []*domain.RosterMember
	index   map[string]*domain.RosterMember
	pending map[string]domain.PendingChange
}

// NewStore создает хранилище с копией переданного состава.
func NewStore(members []*domain.RosterMember) *Store {
	s := &Store{pending: make(map[string]domain.PendingChange)}
	s.ReplaceAll(members)
	return s
}

// Effective возвращает команду и позицию с учётом несохранённого изменения.
func (s *Store) Effective(m *domain.RosterMember) (domain.Team, int) {
	if p, ok := s.pending[m.UserID]; ok {
		return p.AssignedTeam, p.Position
	}
	return m.AssignedTeam, m.Position
}

// EffectiveCandidate возвращает флаг кандидата, который получит участник
// после фиксации несохранённого изменения. Без изменения возвращается
// сохранённый флаг.
func (s *Store) EffectiveCandidate(m *domain.RosterMember) bool {
	if p, ok := s.pending[m.UserID]; ok {
		if isCandidate, defined := CandidateFlag(m.IntentType, p.AssignedTeam); defined {
			return isCandidate
		}
	}
	return m.IsCandidate
}

// RecordPending добавляет или перезаписывает изменение участника.
func (s *Store) RecordPending(userID string, team domain.Team, position int) {
	s.pending[userID] = domain.PendingChange{AssignedTeam: team, Position: position}
}

// ClearPending сбрасывает все несохранённые изменения.
func (s *Store) ClearPending() {
	clear(s.pending)
}

// ReplaceAll заменяет зафиксированный состав. Записи копируются, чтобы
// вызывающий код не мог изменить состав в обход контроллера.
func (s *Store) ReplaceAll(members []*domain.RosterMember) {
	s.members = make([]*domain.RosterMember, 0, len(members))
	s.index = make(map[string]*domain.RosterMember, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		cp := *m
		s.members = append(s.members, &cp)
		s.index[cp.UserID] = &cp
	}
}

// Member возвращает участника по ID.
func (s *Store) Member(userID string) (*domain.RosterMember, bool) {
	m, ok := s.index[userID]
	return m, ok
}

// Members возвращает участников в порядке загрузки.
func (s *Store) Members() []*domain.RosterMember {
	return s.members
}

// Pending возвращает копию таблицы изменений.
func (s *Store) Pending() map[string]domain.PendingChange {
	return maps.Clone(s.pending)
}

// PendingFor возвращает изменение конкретного участника.
func (s *Store) PendingFor(userID string) (domain.PendingChange, bool) {
	p, ok := s.pending[userID]
	return p, ok
}

func (s *Store) PendingCount() int {
	return len(s.pending)
}

// MergeCommitted переносит успешно записанный пакет в зафиксированные записи.
func (s *Store) MergeCommitted(entries []domain.AssignmentEntry) {
	for _, e := range entries {
		m, ok := s.index[e.UserID]
		if !ok {
			continue
		}
		m.AssignedTeam = e.AssignedTeam
		m.Position = e.Position
		if e.IsCandidate != nil {
			m.IsCandidate = *e.IsCandidate
		}
	}
}
