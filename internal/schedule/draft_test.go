package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

func key(day int, shift domain.Shift, wt domain.WeekType) TemplateKey {
	return TemplateKey{DayOfWeek: day, Shift: shift, WeekType: wt}
}

func TestToggleCellModeEveryToBiweekly(t *testing.T) {
	cell := CellKey{DayOfWeek: 1, Shift: domain.ShiftMorning}
	draft := Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeEvery): "Carol",
	}
	modes := CellModes{}

	ToggleCellMode(draft, modes, cell)

	assert.True(t, modes[cell])
	assert.Equal(t, Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeA): "Carol",
	}, draft)
}

func TestToggleCellModeBiweeklyToEvery(t *testing.T) {
	cell := CellKey{DayOfWeek: 1, Shift: domain.ShiftMorning}
	draft := Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeA): "Alice",
		key(1, domain.ShiftMorning, domain.WeekTypeB): "Bob",
	}
	modes := CellModes{cell: true}

	ToggleCellMode(draft, modes, cell)

	assert.False(t, modes[cell])
	assert.Equal(t, Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeEvery): "Alice",
	}, draft)
}

// 격주 → 매주 → 격주로 되돌리면 B주 값은 사라진다. 원래부터 이렇게
// 동작했고, 여기서도 그대로 유지한다.
func TestToggleCellModeRoundTripLosesB(t *testing.T) {
	cell := CellKey{DayOfWeek: 1, Shift: domain.ShiftMorning}
	draft := Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeA): "Alice",
		key(1, domain.ShiftMorning, domain.WeekTypeB): "Bob",
	}
	modes := CellModes{cell: true}

	ToggleCellMode(draft, modes, cell) // 격주 → 매주
	ToggleCellMode(draft, modes, cell) // 매주 → 격주

	assert.True(t, modes[cell])
	assert.Equal(t, "Alice", draft[key(1, domain.ShiftMorning, domain.WeekTypeA)])
	assert.Empty(t, draft[key(1, domain.ShiftMorning, domain.WeekTypeB)])
}

func TestToggleCellModeEmptyCell(t *testing.T) {
	cell := CellKey{DayOfWeek: 3, Shift: domain.ShiftAfternoon}
	draft := Assignments{}
	modes := CellModes{}

	ToggleCellMode(draft, modes, cell)
	assert.True(t, modes[cell])
	assert.Empty(t, draft)

	ToggleCellMode(draft, modes, cell)
	assert.False(t, modes[cell])
	assert.Empty(t, draft)
}

func TestToggleCellModeLeavesOtherCellsAlone(t *testing.T) {
	cell := CellKey{DayOfWeek: 1, Shift: domain.ShiftMorning}
	draft := Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeEvery):   "Carol",
		key(1, domain.ShiftAfternoon, domain.WeekTypeEvery): "Erin",
		key(2, domain.ShiftMorning, domain.WeekTypeA):       "Alice",
	}
	modes := CellModes{{DayOfWeek: 2, Shift: domain.ShiftMorning}: true}

	ToggleCellMode(draft, modes, cell)

	assert.Equal(t, "Erin", draft[key(1, domain.ShiftAfternoon, domain.WeekTypeEvery)])
	assert.Equal(t, "Alice", draft[key(2, domain.ShiftMorning, domain.WeekTypeA)])
	assert.True(t, modes[CellKey{DayOfWeek: 2, Shift: domain.ShiftMorning}])
}

func TestHasChanges(t *testing.T) {
	saved := Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeEvery): "Carol",
	}
	savedModes := CellModes{}

	draft := Assignments{
		key(1, domain.ShiftMorning, domain.WeekTypeEvery): "Carol",
	}
	draftModes := CellModes{}

	assert.False(t, HasChanges(draft, saved, draftModes, savedModes))

	draft[key(1, domain.ShiftMorning, domain.WeekTypeEvery)] = "Dave"
	assert.True(t, HasChanges(draft, saved, draftModes, savedModes))

	draft[key(1, domain.ShiftMorning, domain.WeekTypeEvery)] = "Carol"
	draftModes[CellKey{DayOfWeek: 1, Shift: domain.ShiftMorning}] = true
	assert.True(t, HasChanges(draft, saved, draftModes, savedModes))

	// 명시적 false 는 키가 없는 것과 같다.
	draftModes[CellKey{DayOfWeek: 1, Shift: domain.ShiftMorning}] = false
	assert.False(t, HasChanges(draft, saved, draftModes, savedModes))
}

func TestAssignmentsFromTemplates(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		templateRow(0, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
		templateRow(1, domain.ShiftAfternoon, domain.WeekTypeA, "Alice"),
		templateRow(1, domain.ShiftAfternoon, domain.WeekTypeB, "Bob"),
	}

	assert.Equal(t, Assignments{
		key(0, domain.ShiftMorning, domain.WeekTypeEvery): "Carol",
		key(1, domain.ShiftAfternoon, domain.WeekTypeA):   "Alice",
		key(1, domain.ShiftAfternoon, domain.WeekTypeB):   "Bob",
	}, AssignmentsFromTemplates(templates))

	assert.Equal(t, CellModes{
		{DayOfWeek: 1, Shift: domain.ShiftAfternoon}: true,
	}, ModesFromTemplates(templates))
}
