package schedule

import (
	"maps"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

// TemplateKey 는 템플릿 한 행의 유일 키다.
type TemplateKey struct {
	DayOfWeek int             `json:"dayOfWeek"`
	Shift     domain.Shift    `json:"shift"`
	WeekType  domain.WeekType `json:"weekType"`
}

// CellKey 는 관리 화면의 한 칸, 즉 (요일, 시간대) 조합이다.
type CellKey struct {
	DayOfWeek int          `json:"dayOfWeek"`
	Shift     domain.Shift `json:"shift"`
}

// Assignments 는 전체 템플릿 상태의 스냅샷이다. 키가 없으면 미배정이다.
type Assignments map[TemplateKey]string

type CellMode string

const (
	ModeEvery    CellMode = "every"
	ModeBiweekly CellMode = "biweekly"
)

// CellModes 는 칸별 모드 집합이다. 키가 없으면 매주(every) 모드다.
type CellModes map[CellKey]bool // true = 격주

// AssignmentsFromTemplates 는 저장소에서 읽어온 행들을 스냅샷으로 바꾼다.
func AssignmentsFromTemplates(templates []*domain.ScheduleTemplate) Assignments {
	m := make(Assignments, len(templates))
	for _, t := range templates {
		m[TemplateKey{DayOfWeek: t.DayOfWeek, Shift: t.Shift, WeekType: t.WeekType}] = t.StaffName
	}
	return m
}

// ModesFromTemplates 는 행 집합에서 칸별 모드를 복원한다. A 나 B 행이
// 하나라도 있으면 그 칸은 격주 모드다.
func ModesFromTemplates(templates []*domain.ScheduleTemplate) CellModes {
	m := make(CellModes)
	for _, t := range templates {
		if t.WeekType == domain.WeekTypeA || t.WeekType == domain.WeekTypeB {
			m[CellKey{DayOfWeek: t.DayOfWeek, Shift: t.Shift}] = true
		}
	}
	return m
}

// ToggleCellMode 는 편집 중인 초안에서 한 칸의 모드를 전환한다.
//
// 격주 → 매주: A주 값을 every 로 옮기고 A/B 를 모두 지운다. B주 값은
// 이때 사라지며, 다시 격주로 돌려도 복원되지 않는다. 기존 동작을 그대로
// 유지한다.
//
// 매주 → 격주: every 값을 A주로 옮기고 B주는 비워 둔다.
func ToggleCellMode(draft Assignments, modes CellModes, cell CellKey) {
	aKey := TemplateKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift, WeekType: domain.WeekTypeA}
	bKey := TemplateKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift, WeekType: domain.WeekTypeB}
	everyKey := TemplateKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift, WeekType: domain.WeekTypeEvery}

	if modes[cell] {
		aVal := draft[aKey]
		delete(draft, aKey)
		delete(draft, bKey)
		if aVal != "" {
			draft[everyKey] = aVal
		}
		modes[cell] = false
	} else {
		everyVal := draft[everyKey]
		delete(draft, everyKey)
		if everyVal != "" {
			draft[aKey] = everyVal
		}
		modes[cell] = true
	}
}

// HasChanges 는 초안과 마지막으로 저장된 스냅샷을 구조적으로 비교한다.
// 별도의 dirty 플래그를 두지 않고 항상 이 비교로 판단한다.
func HasChanges(draft, saved Assignments, draftModes, savedModes CellModes) bool {
	return !maps.Equal(draft, saved) || !modesEqual(draftModes, savedModes)
}

// modesEqual 은 키가 없는 것과 false 를 같은 것으로 취급한다.
func modesEqual(a, b CellModes) bool {
	for k, v := range a {
		if v != b[k] {
			return false
		}
	}
	for k, v := range b {
		if v != a[k] {
			return false
		}
	}
	return true
}
