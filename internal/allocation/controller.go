package allocation

import (
	"context"

	"desert-war-service/internal/domain"
)

// Limits задаёт рекомендуемую вместимость групп. Превышение не блокирует перемещение.
type Limits struct {
	Team    int
	Reserve int
}

// DefaultLimits возвращает вместимость по умолчанию: 20 в составе, 10 в резерве.
func DefaultLimits() Limits {
	return Limits{Team: 20, Reserve: 10}
}

// For возвращает лимит группы; для UNDECIDED и EXCLUDED лимита нет.
func (l Limits) For(bucket domain.Bucket) (int, bool) {
	switch {
	case bucket.IsMainTeam():
		return l.Team, true
	case bucket.IsReserve():
		return l.Reserve, true
	}
	return 0, false
}

// Controller выполняет изменяющие операции над составом одного события.
// Не потокобезопасен: сериализация вызовов лежит на вызывающем коде.
type Controller struct {
	eventID   string
	store     *Store
	repo      domain.RosterRepository
	notifier  domain.Notifier
	limits    Limits
	state     domain.RosterState
	confirmed bool
}

// NewController создает контроллер для загруженного состава.
func NewController(
	eventID string,
	members []*domain.RosterMember,
	confirmed bool,
	repo domain.RosterRepository,
	notifier domain.Notifier,
	limits Limits,
) *Controller {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	c := &Controller{
		eventID:  eventID,
		store:    NewStore(members),
		repo:     repo,
		notifier: notifier,
		limits:   limits,
	}
	c.reset(members, confirmed)
	return c
}

func (c *Controller) reset(members []*domain.RosterMember, confirmed bool) {
	c.store.ReplaceAll(members)
	c.store.ClearPending()
	c.confirmed = confirmed
	c.state = domain.StateLoaded
	if confirmed {
		c.state = domain.StateConfirmed
	}
}

// Reload заменяет состав каноническим состоянием из хранилища.
func (c *Controller) Reload(members []*domain.RosterMember, confirmed bool) {
	c.reset(members, confirmed)
}

func (c *Controller) EventID() string { return c.eventID }

func (c *Controller) State() domain.RosterState { return c.state }

func (c *Controller) Confirmed() bool { return c.confirmed }

func (c *Controller) Limits() Limits { return c.limits }

func (c *Controller) Store() *Store { return c.store }

// Buckets пересчитывает группы по текущему состоянию.
func (c *Controller) Buckets() Buckets {
	return Classify(c.store.Members(), c.store.Pending())
}

// MoveMember перемещает участника из группы from в группу to.
// Возвращает предупреждение о заполненности, если группа назначения
// достигает лимита; перемещение при этом всё равно выполняется.
func (c *Controller) MoveMember(ctx context.Context, userID string, from, to domain.Bucket) (*domain.CapacityWarning, error) {
	if !from.Valid() || !to.Valid() {
		return nil, domain.ErrInvalidBucket
	}

	m, ok := c.store.Member(userID)
	if !ok {
		return nil, domain.ErrMemberNotFound
	}

	buckets := c.Buckets()
	current, _ := buckets.Locate(userID)
	if current != from {
		return nil, domain.ErrMemberNotInBucket
	}

	// UNDECIDED существует только для гибких участников без команды
	if to == domain.BucketUndecided && !m.IntentType.IsFlexible() {
		return nil, domain.ErrMemberNotFlexible
	}

	var warning *domain.CapacityWarning
	if limit, limited := c.limits.For(to); limited {
		count := buckets.Count(to)
		if from != to {
			count++
		}
		if count >= limit {
			warning = &domain.CapacityWarning{Bucket: to, CurrentCount: count, Limit: limit}
			c.notifier.CapacityWarning(ctx, c.eventID, *warning)
		}
	}

	c.store.RecordPending(userID, domain.TeamForBucket(to), domain.PositionNone)
	c.state = domain.StateEditing

	return warning, nil
}

// SetPosition меняет позицию участника, сохраняя его эффективную команду.
func (c *Controller) SetPosition(userID string, position int) error {
	m, ok := c.store.Member(userID)
	if !ok {
		return domain.ErrMemberNotFound
	}
	if !domain.ValidPosition(position) {
		return domain.ErrInvalidPosition
	}

	team, _ := c.store.Effective(m)
	c.store.RecordPending(userID, team, position)
	c.state = domain.StateEditing

	return nil
}

// Save отправляет несохранённые изменения и участников из UNDECIDED без
// явного изменения. При ошибке хранилища изменения остаются нетронутыми.
func (c *Controller) Save(ctx context.Context) (*domain.CommitOutcome, error) {
	buckets := c.Buckets()

	batch := make([]domain.AssignmentEntry, 0, c.store.PendingCount())
	for _, m := range c.store.Members() {
		if p, ok := c.store.PendingFor(m.UserID); ok {
			batch = append(batch, newEntry(m, p.AssignedTeam, p.Position))
			continue
		}
		if bucket, _ := buckets.Locate(m.UserID); bucket == domain.BucketUndecided {
			_, position := c.store.Effective(m)
			batch = append(batch, newEntry(m, domain.TeamUnassigned, position))
		}
	}

	if len(batch) == 0 {
		return &domain.CommitOutcome{EventID: c.eventID, Kind: domain.CommitSave}, nil
	}

	return c.commit(ctx, domain.CommitSave, batch)
}

// Confirm фиксирует весь состав. Пока в UNDECIDED кто-то есть, возвращает
// ErrPendingUndecidedMembers и не обращается к хранилищу.
func (c *Controller) Confirm(ctx context.Context) (*domain.CommitOutcome, error) {
	buckets := c.Buckets()
	if buckets.Count(domain.BucketUndecided) > 0 {
		return nil, domain.ErrPendingUndecidedMembers
	}

	members := c.store.Members()
	batch := make([]domain.AssignmentEntry, 0, len(members))
	for _, m := range members {
		bucket, _ := buckets.Locate(m.UserID)
		_, position := c.store.Effective(m)
		batch = append(batch, newEntry(m, domain.TeamForBucket(bucket), position))
	}

	return c.commit(ctx, domain.CommitConfirm, batch)
}

func (c *Controller) commit(ctx context.Context, kind domain.CommitKind, batch []domain.AssignmentEntry) (*domain.CommitOutcome, error) {
	if err := c.repo.SaveRosterAssignments(ctx, c.eventID, kind, batch); err != nil {
		c.notifier.CommitFailed(ctx, c.eventID, kind, err)
		return nil, err
	}

	c.store.MergeCommitted(batch)
	c.store.ClearPending()

	if kind == domain.CommitConfirm {
		c.confirmed = true
		c.state = domain.StateConfirmed
	} else {
		c.state = domain.StateSaved
	}

	outcome := &domain.CommitOutcome{EventID: c.eventID, Kind: kind, Entries: len(batch)}
	c.notifier.CommitSucceeded(ctx, *outcome)

	return outcome, nil
}

// CandidateFlag вычисляет флаг кандидата для назначения team. Флаг
// определяется только для гибких участников: true при явном исключении,
// иначе false. Для остальных второй результат false.
func CandidateFlag(intent domain.Intent, team domain.Team) (bool, bool) {
	if !intent.IsFlexible() {
		return false, false
	}
	return team == domain.TeamExcluded, true
}

// newEntry строит запись пакета.
func newEntry(m *domain.RosterMember, team domain.Team, position int) domain.AssignmentEntry {
	entry := domain.AssignmentEntry{
		UserID:       m.UserID,
		AssignedTeam: team,
		Position:     position,
	}
	if isCandidate, ok := CandidateFlag(m.IntentType, team); ok {
		entry.IsCandidate = &isCandidate
	}
	return entry
}

type nopNotifier struct{}

func (nopNotifier) CapacityWarning(context.Context, string, domain.CapacityWarning) {}
func (nopNotifier) CommitSucceeded(context.Context, domain.CommitOutcome) {}
func (nopNotifier) CommitFailed(context.Context, string, domain.CommitKind, error) {}
