package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slab-org/slab-gangnam4/internal/domain"
	"github.com/slab-org/slab-gangnam4/internal/schedule"
)

func TestCellModesListFromTemplates(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		{DayOfWeek: 1, Shift: domain.ShiftMorning, WeekType: domain.WeekTypeEvery, StaffName: "김민지"},
		{DayOfWeek: 6, Shift: domain.ShiftAfternoon, WeekType: domain.WeekTypeA, StaffName: "이서준"},
		{DayOfWeek: 6, Shift: domain.ShiftAfternoon, WeekType: domain.WeekTypeB, StaffName: "박지후"},
		{DayOfWeek: 0, Shift: domain.ShiftAfternoon, WeekType: domain.WeekTypeA, StaffName: "최수아"},
	}

	list := cellModesList(schedule.ModesFromTemplates(templates))

	// A/B 행이 있는 칸만, 요일/시간대 순으로
	assert.Equal(t, []cellModeResponse{
		{DayOfWeek: 0, Shift: domain.ShiftAfternoon},
		{DayOfWeek: 6, Shift: domain.ShiftAfternoon},
	}, list)
}

func TestCellModesListEmpty(t *testing.T) {
	list := cellModesList(schedule.ModesFromTemplates(nil))
	assert.Empty(t, list)
}
