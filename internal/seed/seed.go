// Package seed 는 개발 환경에서 쓸 표본 데이터를 넣는다.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/slab-org/slab-gangnam4/internal/domain"
	"github.com/slab-org/slab-gangnam4/internal/repository"
)

var sampleStaffNames = []string{"김민지", "이서준", "박지후", "최수아"}

type sampleTemplate struct {
	dayOfWeek int
	shift     domain.Shift
	weekType  domain.WeekType
	staffName string
}

// 월~금 오전은 매주 같은 사람이 서고, 주말 오후만 격주로 돌아가는
// 전형적인 패턴이다.
var sampleTemplates = []sampleTemplate{
	{1, domain.ShiftMorning, domain.WeekTypeEvery, "김민지"},
	{2, domain.ShiftMorning, domain.WeekTypeEvery, "김민지"},
	{3, domain.ShiftMorning, domain.WeekTypeEvery, "이서준"},
	{4, domain.ShiftMorning, domain.WeekTypeEvery, "이서준"},
	{5, domain.ShiftMorning, domain.WeekTypeEvery, "박지후"},
	{1, domain.ShiftAfternoon, domain.WeekTypeEvery, "최수아"},
	{2, domain.ShiftAfternoon, domain.WeekTypeEvery, "최수아"},
	{3, domain.ShiftAfternoon, domain.WeekTypeEvery, "박지후"},
	{4, domain.ShiftAfternoon, domain.WeekTypeEvery, "박지후"},
	{5, domain.ShiftAfternoon, domain.WeekTypeEvery, "최수아"},
	{6, domain.ShiftAfternoon, domain.WeekTypeA, "김민지"},
	{6, domain.ShiftAfternoon, domain.WeekTypeB, "이서준"},
	{0, domain.ShiftAfternoon, domain.WeekTypeA, "박지후"},
	{0, domain.ShiftAfternoon, domain.WeekTypeB, "최수아"},
}

var sampleHandovers = []struct {
	author  string
	content string
	daysAgo int
}{
	{"김민지", "3번 테이블 의자 다리가 흔들립니다. 다음 근무자분은 사용 자제 안내 부탁드려요.", 0},
	{"이서준", "원두 재고가 거의 떨어져서 발주 넣었습니다. 수요일 도착 예정입니다.", 1},
	{"박지후", "라운지존 창가쪽 에어컨에서 소음이 납니다. 점장님께 보고했습니다.", 3},
}

// SampleData 는 표본 근무자, 템플릿, 격주 기준일, 인수인계 메모를 넣는다.
// 이미 있는 데이터와 충돌하면 해당 건만 건너뛴다.
func SampleData(repo *repository.Repository) {
	for _, name := range sampleStaffNames {
		if err := repo.CreateStaff(&domain.Staff{Name: name}); err != nil {
			slog.Error("근무자 삽입 실패", slog.String("name", name), slog.String("error", err.Error()))
			continue
		}
	}

	ctx := context.Background()
	for _, t := range sampleTemplates {
		if err := repo.UpsertScheduleTemplate(ctx, t.dayOfWeek, t.shift, t.weekType, t.staffName); err != nil {
			slog.Error("템플릿 삽입 실패", slog.Int("dayOfWeek", t.dayOfWeek), slog.String("error", err.Error()))
			continue
		}
	}

	// 기준일은 이번 주 월요일로 잡는다
	today := time.Now().UTC()
	offset := int(today.Weekday()) - 1
	if today.Weekday() == time.Sunday {
		offset = 6
	}
	monday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	if err := repo.UpsertSetting(domain.SettingKeyBiweeklyStartDate, monday.Format("2006-01-02")); err != nil {
		slog.Error("격주 기준일 설정 실패", slog.String("error", err.Error()))
	}

	for _, m := range sampleHandovers {
		memo := &domain.Handover{
			Author:  m.author,
			Content: m.content,
			Date:    monday.AddDate(0, 0, -m.daysAgo),
		}
		if err := repo.CreateHandover(memo); err != nil {
			slog.Error("인수인계 메모 삽입 실패", slog.String("error", err.Error()))
			continue
		}
	}

	slog.Info("표본 데이터 삽입 완료")
}
