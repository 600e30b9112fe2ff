package domain

import "context"

// Bucket одна из шести групп распределения состава. Хранится только как
// производное представление, в БД не пишется.
type Bucket string

const (
	BucketATeam     Bucket = "A_TEAM"
	BucketBTeam     Bucket = "B_TEAM"
	BucketAReserve  Bucket = "A_RESERVE"
	BucketBReserve  Bucket = "B_RESERVE"
	BucketUndecided Bucket = "UNDECIDED"
	BucketExcluded  Bucket = "EXCLUDED"
)

// AllBuckets перечисляет группы в порядке отображения.
var AllBuckets = []Bucket{
	BucketATeam,
	BucketBTeam,
	BucketAReserve,
	BucketBReserve,
	BucketUndecided,
	BucketExcluded,
}

// Valid сообщает, является ли значение одной из шести групп.
func (b Bucket) Valid() bool {
	switch b {
	case BucketATeam, BucketBTeam, BucketAReserve, BucketBReserve, BucketUndecided, BucketExcluded:
		return true
	}
	return false
}

// IsMainTeam сообщает, что группа является основным составом A или B.
func (b Bucket) IsMainTeam() bool {
	return b == BucketATeam || b == BucketBTeam
}

// IsReserve сообщает, что группа является резервом A или B.
func (b Bucket) IsReserve() bool {
	return b == BucketAReserve || b == BucketBReserve
}

// Intent заявленное участником предпочтение, собранное опросом.
type Intent string

const (
	IntentATeam        Intent = "A_TEAM"
	IntentBTeam        Intent = "B_TEAM"
	IntentAReserve     Intent = "A_RESERVE"
	IntentBReserve     Intent = "B_RESERVE"
	IntentABPossible   Intent = "AB_POSSIBLE"
	IntentABImpossible Intent = "AB_IMPOSSIBLE"
	IntentNone         Intent = "NONE"
)

// IsFlexible: участник готов играть за любую команду.
func (i Intent) IsFlexible() bool {
	return i == IntentABPossible
}

// Team зафиксированная команда участника.
//
// TeamUnassigned и TeamExcluded различаются: первое означает
// «вернуть в общий пул» (NULL в БД), второе означает явное исключение ("NONE").
// Неизвестные строки из хранилища допускаются и классифицируются как EXCLUDED.
type Team string

const (
	TeamUnassigned Team = ""
	TeamA          Team = "A_TEAM"
	TeamB          Team = "B_TEAM"
	TeamAReserve   Team = "A_RESERVE"
	TeamBReserve   Team = "B_RESERVE"
	TeamExcluded   Team = "NONE"
)

// IsSet возвращает false только для TeamUnassigned.
func (t Team) IsSet() bool {
	return t != TeamUnassigned
}

// Bucket возвращает группу, соответствующую зафиксированной команде.
// Для TeamUnassigned второй результат false.
func (t Team) Bucket() (Bucket, bool) {
	switch t {
	case TeamA:
		return BucketATeam, true
	case TeamB:
		return BucketBTeam, true
	case TeamAReserve:
		return BucketAReserve, true
	case TeamBReserve:
		return BucketBReserve, true
	case TeamUnassigned:
		return "", false
	default:
		return BucketExcluded, true
	}
}

// TeamForBucket возвращает значение команды, которое фиксируется для группы.
// UNDECIDED соответствует TeamUnassigned, EXCLUDED соответствует TeamExcluded.
func TeamForBucket(b Bucket) Team {
	switch b {
	case BucketATeam:
		return TeamA
	case BucketBTeam:
		return TeamB
	case BucketAReserve:
		return TeamAReserve
	case BucketBReserve:
		return TeamBReserve
	case BucketUndecided:
		return TeamUnassigned
	default:
		return TeamExcluded
	}
}

// PositionNone означает, что у участника нет позиции.
const PositionNone = -1

// MaxPosition последний допустимый номер слота.
const MaxPosition = 12

// ValidPosition проверяет, что позиция входит в перечень слотов (или PositionNone).
func ValidPosition(p int) bool {
	return p == PositionNone || (p >= 1 && p <= MaxPosition)
}

// RosterMember представляет состояние участника клана для одного события.
type RosterMember struct {
	UserID       string
	DisplayName  string
	Level        int
	Power        int64
	IntentType   Intent
	AssignedTeam Team
	Position     int
	IsCandidate  bool
}

// PendingChange предложенное, но ещё не сохранённое назначение.
type PendingChange struct {
	AssignedTeam Team
	Position     int
}

// AssignmentEntry одна запись пакета фиксации, отправляемого в хранилище.
// IsCandidate == nil означает «не менять флаг».
type AssignmentEntry struct {
	UserID       string
	AssignedTeam Team
	Position     int
	IsCandidate  *bool
}

// Event событие «пустынной войны» с составом.
type Event struct {
	ID        string
	Name      string
	Confirmed bool
	Members   []*RosterMember
}

// CommitKind различает частичное сохранение и финальное подтверждение.
type CommitKind string

const (
	CommitSave    CommitKind = "save"
	CommitConfirm CommitKind = "confirm"
)

// RosterRepository порт хранения состава.
// Пакет с kind == CommitConfirm дополнительно отмечает событие подтверждённым.
type RosterRepository interface {
	LoadRoster(ctx context.Context, eventID string) ([]*RosterMember, error)
	SaveRosterAssignments(ctx context.Context, eventID string, kind CommitKind, entries []AssignmentEntry) error
}

// EventRepository определяет контракт для работы с событиями.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	ExistsEvent(ctx context.Context, eventID string) (bool, error)
	IsConfirmed(ctx context.Context, eventID string) (bool, error)
}

// CapacityWarning рекомендательное предупреждение о заполненности группы.
type CapacityWarning struct {
	Bucket       Bucket
	CurrentCount int
	Limit        int
}

// CommitOutcome итог сохранения или подтверждения состава.
type CommitOutcome struct {
	EventID string
	Kind    CommitKind
	Entries int
}

// Notifier порт уведомлений. Вызовы не влияют на результат операций.
type Notifier interface {
	CapacityWarning(ctx context.Context, eventID string, warning CapacityWarning)
	CommitSucceeded(ctx context.Context, outcome CommitOutcome)
	CommitFailed(ctx context.Context, eventID string, kind CommitKind, err error)
}
