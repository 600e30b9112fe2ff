package allocation

import (
	"cmp"
	"slices"

	"desert-war-service/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameLocale задаёт правила сравнения имён при сортировке внутри группы.
var NameLocale = language.English

// Buckets содержит шесть групп и обратный индекс участник -> группа.
type Buckets struct {
	lists map[domain.Bucket][]*domain.RosterMember
	index map[string]domain.Bucket
}

// Members возвращает отсортированных участников группы.
func (b Buckets) Members(bucket domain.Bucket) []*domain.RosterMember {
	return b.lists[bucket]
}

// Count возвращает число участников в группе.
func (b Buckets) Count(bucket domain.Bucket) int {
	return len(b.lists[bucket])
}

// Locate возвращает группу участника.
func (b Buckets) Locate(userID string) (domain.Bucket, bool) {
	bucket, ok := b.index[userID]
	return bucket, ok
}

// Classify раскладывает участников по группам с учётом несохранённых изменений.
// Функция чистая: повторный вызов на тех же данных даёт тот же результат и порядок.
func Classify(members []*domain.RosterMember, pending map[string]domain.PendingChange) Buckets {
	b := Buckets{
		lists: make(map[domain.Bucket][]*domain.RosterMember, len(domain.AllBuckets)),
		index: make(map[string]domain.Bucket, len(members)),
	}
	for _, bucket := range domain.AllBuckets {
		b.lists[bucket] = []*domain.RosterMember{}
	}

	for _, m := range members {
		team := m.AssignedTeam
		if p, ok := pending[m.UserID]; ok {
			team = p.AssignedTeam
		}
		bucket := ClassifyMember(m, team)
		b.lists[bucket] = append(b.lists[bucket], m)
		b.index[m.UserID] = bucket
	}

	// collate.Collator не потокобезопасен, поэтому создаётся на каждый вызов.
	col := collate.New(NameLocale)
	for _, bucket := range domain.AllBuckets {
		slices.SortStableFunc(b.lists[bucket], func(x, y *domain.RosterMember) int {
			if x.Level != y.Level {
				return cmp.Compare(y.Level, x.Level)
			}
			return col.CompareString(x.DisplayName, y.DisplayName)
		})
	}

	return b
}

// ClassifyMember определяет группу участника по эффективной команде team.
func ClassifyMember(m *domain.RosterMember, team domain.Team) domain.Bucket {
	// 1. Зафиксированная команда (включая NONE и неизвестные значения)
	if bucket, ok := team.Bucket(); ok {
		return bucket
	}

	// 2. Команды нет, решает заявленное предпочтение
	switch m.IntentType {
	case domain.IntentABPossible:
		return domain.BucketUndecided
	case domain.IntentATeam:
		return domain.BucketATeam
	case domain.IntentBTeam:
		return domain.BucketBTeam
	case domain.IntentAReserve:
		return domain.BucketAReserve
	case domain.IntentBReserve:
		return domain.BucketBReserve
	default:
		return domain.BucketExcluded
	}
}
