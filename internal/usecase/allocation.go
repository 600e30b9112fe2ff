package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"desert-war-service/internal/allocation"
	"desert-war-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// session хранит состояние редактирования состава одного события.
type session struct {
	mu         sync.Mutex
	committing atomic.Bool
	controller *allocation.Controller
}

// AllocationUseCase реализует бизнес-логику распределения состава.
// На каждое событие держится одна сессия; сохранение и подтверждение
// выполняются не более одного одновременно (single-flight).
type AllocationUseCase struct {
	rosterRepo domain.RosterRepository
	eventRepo  domain.EventRepository
	notifier   domain.Notifier
	limits     allocation.Limits
	logger     *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewAllocationUseCase создает новый экземпляр AllocationUseCase.
func NewAllocationUseCase(
	rosterRepo domain.RosterRepository,
	eventRepo domain.EventRepository,
	notifier domain.Notifier,
	limits allocation.Limits,
	logger *logrus.Logger,
) domain.AllocationUseCase {
	return &AllocationUseCase{
		rosterRepo: rosterRepo,
		eventRepo:  eventRepo,
		notifier:   notifier,
		limits:     limits,
		logger:     logger,
		sessions:   make(map[string]*session),
	}
}

// GetRoster возвращает текущие группы события.
func (uc *AllocationUseCase) GetRoster(ctx context.Context, eventID string) (*domain.RosterView, error) {
	s, err := uc.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return buildView(s.controller), nil
}

// ReloadRoster отбрасывает несохранённые изменения и перечитывает состав.
func (uc *AllocationUseCase) ReloadRoster(ctx context.Context, eventID string) (*domain.RosterView, error) {
	s, fresh, err := uc.openSession(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Сессия только что загружена из хранилища, перечитывать нечего
	if fresh {
		s.mu.Lock()
		defer s.mu.Unlock()
		return buildView(s.controller), nil
	}

	members, confirmed, err := uc.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dropped := s.controller.Store().PendingCount(); dropped > 0 {
		uc.logger.WithFields(logrus.Fields{
			"event_id": eventID,
			"dropped":  dropped,
		}).Warn("Pending roster changes discarded by reload")
	}
	s.controller.Reload(members, confirmed)

	return buildView(s.controller), nil
}

// MoveMember перемещает участника между группами.
func (uc *AllocationUseCase) MoveMember(ctx context.Context, eventID, userID string, from, to domain.Bucket) (*domain.MoveResult, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if !from.Valid() || !to.Valid() {
		return nil, domain.ErrInvalidBucket
	}

	s, err := uc.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	warning, err := s.controller.MoveMember(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.MoveResult{View: buildView(s.controller), Warning: warning}, nil
}

// SetPosition назначает позицию участнику.
func (uc *AllocationUseCase) SetPosition(ctx context.Context, eventID, userID string, position int) (*domain.RosterView, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if !domain.ValidPosition(position) {
		return nil, domain.ErrInvalidPosition
	}

	s, err := uc.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.controller.SetPosition(userID, position); err != nil {
		return nil, err
	}

	return buildView(s.controller), nil
}

// SaveRoster сохраняет несохранённые изменения.
func (uc *AllocationUseCase) SaveRoster(ctx context.Context, eventID string) (*domain.CommitOutcome, error) {
	return uc.commit(ctx, eventID, (*allocation.Controller).Save)
}

// ConfirmRoster подтверждает состав целиком.
func (uc *AllocationUseCase) ConfirmRoster(ctx context.Context, eventID string) (*domain.CommitOutcome, error) {
	return uc.commit(ctx, eventID, (*allocation.Controller).Confirm)
}

func (uc *AllocationUseCase) commit(
	ctx context.Context,
	eventID string,
	op func(*allocation.Controller, context.Context) (*domain.CommitOutcome, error),
) (*domain.CommitOutcome, error) {
	s, err := uc.session(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !s.committing.CompareAndSwap(false, true) {
		return nil, domain.ErrCommitInProgress
	}
	defer s.committing.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	return op(s.controller, ctx)
}

// session возвращает сессию события, загружая состав при первом обращении.
func (uc *AllocationUseCase) session(ctx context.Context, eventID string) (*session, error) {
	s, _, err := uc.openSession(ctx, eventID)
	return s, err
}

// openSession работает как session; второй результат true, если состав
// был загружен этим вызовом.
func (uc *AllocationUseCase) openSession(ctx context.Context, eventID string) (*session, bool, error) {
	if eventID == "" {
		return nil, false, domain.ErrInvalidEventID
	}

	uc.mu.Lock()
	s, ok := uc.sessions[eventID]
	uc.mu.Unlock()
	if ok {
		return s, false, nil
	}

	members, confirmed, err := uc.load(ctx, eventID)
	if err != nil {
		return nil, false, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Параллельный запрос мог успеть создать сессию
	if s, ok := uc.sessions[eventID]; ok {
		return s, false, nil
	}

	s = &session{
		controller: allocation.NewController(eventID, members, confirmed, uc.rosterRepo, uc.notifier, uc.limits),
	}
	uc.sessions[eventID] = s

	uc.logger.WithFields(logrus.Fields{
		"event_id": eventID,
		"members":  len(members),
	}).Info("Roster session opened")

	return s, true, nil
}

func (uc *AllocationUseCase) load(ctx context.Context, eventID string) ([]*domain.RosterMember, bool, error) {
	members, err := uc.rosterRepo.LoadRoster(ctx, eventID)
	if err != nil {
		return nil, false, err
	}

	confirmed, err := uc.eventRepo.IsConfirmed(ctx, eventID)
	if err != nil {
		return nil, false, err
	}

	return members, confirmed, nil
}

// buildView строит снимок групп с эффективными командой, позицией и флагом кандидата.
func buildView(c *allocation.Controller) *domain.RosterView {
	store := c.Store()
	buckets := c.Buckets()
	limits := c.Limits()

	view := &domain.RosterView{
		EventID:      c.EventID(),
		State:        c.State(),
		Confirmed:    c.Confirmed(),
		PendingCount: store.PendingCount(),
		Buckets:      make(map[domain.Bucket][]*domain.RosterMember, len(domain.AllBuckets)),
		Limits:       make(map[domain.Bucket]int),
	}

	for _, bucket := range domain.AllBuckets {
		members := buckets.Members(bucket)
		list := make([]*domain.RosterMember, 0, len(members))
		for _, m := range members {
			cp := *m
			cp.AssignedTeam, cp.Position = store.Effective(m)
			cp.IsCandidate = store.EffectiveCandidate(m)
			list = append(list, &cp)
		}
		view.Buckets[bucket] = list

		if limit, ok := limits.For(bucket); ok {
			view.Limits[bucket] = limit
		}
	}

	return view
}
