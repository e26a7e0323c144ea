package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWeekParity(t *testing.T) {
	epoch := date(2026, 2, 2) // 월요일

	tests := []struct {
		name string
		date time.Time
		want domain.WeekType
	}{
		{"기준일 당일", date(2026, 2, 2), domain.WeekTypeA},
		{"기준일과 같은 주", date(2026, 2, 6), domain.WeekTypeA},
		{"같은 주의 일요일", date(2026, 2, 8), domain.WeekTypeA},
		{"다음 주", date(2026, 2, 9), domain.WeekTypeB},
		{"다음 주의 일요일", date(2026, 2, 15), domain.WeekTypeB},
		{"2주 뒤", date(2026, 2, 16), domain.WeekTypeA},
		{"한 주 전", date(2026, 1, 26), domain.WeekTypeB},
		{"한 주 전의 토요일", date(2026, 1, 31), domain.WeekTypeB},
		{"두 주 전", date(2026, 1, 19), domain.WeekTypeA},
		{"여덟 주 전", date(2025, 12, 8), domain.WeekTypeA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWeekParity(tt.date, &epoch))
		})
	}
}

func TestResolveWeekParityNoEpoch(t *testing.T) {
	for d := 0; d < 30; d++ {
		assert.Equal(t, domain.WeekTypeNone, ResolveWeekParity(date(2026, 2, 1).AddDate(0, 0, d), nil))
	}
}

// 14일 주기성: 어떤 날짜든 2주를 더하면 같은 주차가 나와야 한다.
func TestResolveWeekParityPeriod(t *testing.T) {
	epoch := date(2026, 2, 2)

	start := date(2025, 11, 1)
	for d := 0; d < 120; d++ {
		cur := start.AddDate(0, 0, d)
		assert.Equal(t,
			ResolveWeekParity(cur, &epoch),
			ResolveWeekParity(cur.AddDate(0, 0, 14), &epoch),
			"date %s", cur.Format("2006-01-02"),
		)
	}
}

// 기준일이 무슨 요일이든 그 주는 항상 A주다.
func TestResolveWeekParityEpochWeekIsA(t *testing.T) {
	for d := 0; d < 14; d++ {
		epoch := date(2026, 3, 1).AddDate(0, 0, d)
		assert.Equal(t, domain.WeekTypeA, ResolveWeekParity(epoch, &epoch),
			"epoch %s", epoch.Format("2006-01-02"))
	}
}

func templateRow(day int, shift domain.Shift, wt domain.WeekType, staff string) *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{DayOfWeek: day, Shift: shift, WeekType: wt, StaffName: staff}
}

func TestResolveShiftOverrideWins(t *testing.T) {
	epoch := date(2026, 2, 2)
	templates := []*domain.ScheduleTemplate{
		templateRow(1, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
	}
	overrides := []*domain.ScheduleOverride{
		{Date: date(2026, 2, 9), Shift: domain.ShiftMorning, StaffName: "Dave"},
	}

	got := ResolveShift(date(2026, 2, 9), domain.ShiftMorning, templates, overrides, &epoch)
	assert.Equal(t, Resolution{StaffName: "Dave", Overridden: true}, got)

	// 오버라이드가 없는 다른 월요일은 템플릿으로 돌아간다.
	got = ResolveShift(date(2026, 2, 16), domain.ShiftMorning, templates, overrides, &epoch)
	assert.Equal(t, Resolution{StaffName: "Carol", Overridden: false}, got)
}

func TestResolveShiftWeekSpecificBeatsEvery(t *testing.T) {
	epoch := date(2026, 2, 2)
	templates := []*domain.ScheduleTemplate{
		templateRow(1, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
		templateRow(1, domain.ShiftMorning, domain.WeekTypeA, "Alice"),
		templateRow(1, domain.ShiftMorning, domain.WeekTypeB, "Bob"),
	}

	// 2026-02-02 는 A주, 2026-02-09 는 B주 월요일
	assert.Equal(t, "Alice", ResolveShift(date(2026, 2, 2), domain.ShiftMorning, templates, nil, &epoch).StaffName)
	assert.Equal(t, "Bob", ResolveShift(date(2026, 2, 9), domain.ShiftMorning, templates, nil, &epoch).StaffName)
}

func TestResolveShiftFallsBackToEvery(t *testing.T) {
	epoch := date(2026, 2, 2)
	templates := []*domain.ScheduleTemplate{
		templateRow(1, domain.ShiftMorning, domain.WeekTypeA, "Alice"),
		templateRow(1, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
	}

	// B주인데 B 행이 없으면 every 로 내려간다.
	got := ResolveShift(date(2026, 2, 9), domain.ShiftMorning, templates, nil, &epoch)
	assert.Equal(t, Resolution{StaffName: "Carol", Overridden: false}, got)
}

func TestResolveShiftNoEpochUsesEveryOnly(t *testing.T) {
	templates := []*domain.ScheduleTemplate{
		templateRow(1, domain.ShiftMorning, domain.WeekTypeA, "Alice"),
		templateRow(1, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
	}

	got := ResolveShift(date(2026, 2, 2), domain.ShiftMorning, templates, nil, nil)
	assert.Equal(t, "Carol", got.StaffName)
}

func TestResolveShiftUnassigned(t *testing.T) {
	epoch := date(2026, 2, 2)
	got := ResolveShift(date(2026, 2, 2), domain.ShiftMorning, nil, nil, &epoch)
	assert.Equal(t, Resolution{}, got)
}

// 오전과 오후는 상태를 공유하지 않는다.
func TestResolveShiftIndependentShifts(t *testing.T) {
	epoch := date(2026, 2, 2)
	templates := []*domain.ScheduleTemplate{
		templateRow(1, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
		templateRow(1, domain.ShiftAfternoon, domain.WeekTypeEvery, "Erin"),
	}
	overrides := []*domain.ScheduleOverride{
		{Date: date(2026, 2, 2), Shift: domain.ShiftAfternoon, StaffName: "Dave"},
	}

	morning := ResolveShift(date(2026, 2, 2), domain.ShiftMorning, templates, overrides, &epoch)
	afternoon := ResolveShift(date(2026, 2, 2), domain.ShiftAfternoon, templates, overrides, &epoch)

	require.False(t, morning.Overridden)
	assert.Equal(t, "Carol", morning.StaffName)
	require.True(t, afternoon.Overridden)
	assert.Equal(t, "Dave", afternoon.StaffName)
}

func TestEffectiveTemplateStaffIgnoresOverrides(t *testing.T) {
	epoch := date(2026, 2, 2)
	templates := []*domain.ScheduleTemplate{
		templateRow(1, domain.ShiftMorning, domain.WeekTypeEvery, "Carol"),
	}

	// 오버라이드 유무와 무관하게 템플릿 계층의 답만 본다.
	assert.Equal(t, "Carol", EffectiveTemplateStaff(date(2026, 2, 9), domain.ShiftMorning, templates, &epoch))
}

// 빈 값을 제안하면 오버라이드를 저장하는 게 아니라 기존 오버라이드를
// 지워서 템플릿 값으로 돌아가야 한다.
func TestShouldOverride(t *testing.T) {
	tests := []struct {
		name          string
		proposed      string
		templateStaff string
		want          bool
	}{
		{"빈 제안, 템플릿 있음", "", "Carol", false},
		{"빈 제안, 템플릿 없음", "", "", false},
		{"템플릿과 같은 제안", "Carol", "Carol", false},
		{"템플릿과 다른 제안", "Dave", "Carol", true},
		{"미배정 칸에 새 제안", "Dave", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldOverride(tt.proposed, tt.templateStaff))
		})
	}
}
