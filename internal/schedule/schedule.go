// Package schedule 은 격주 순환 근무표의 해석 로직을 담당한다.
// 템플릿(요일 단위 기본 근무)과 오버라이드(특정 날짜의 변경)를 조합해서
// 임의의 날짜의 실제 근무자를 계산한다.
package schedule

import (
	"time"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

// alignToMonday 는 날짜를 그 주의 월요일로 내린다. 일요일은 6일 전
// 월요일로 돌아간다.
func alignToMonday(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch d.Weekday() {
	case time.Sunday:
		return d.AddDate(0, 0, -6)
	default:
		return d.AddDate(0, 0, -(int(d.Weekday()) - 1))
	}
}

// ResolveWeekParity 는 날짜가 A주인지 B주인지 판별한다. 기준일이 속한
// 주(월요일 기준)가 A주이고, 주 차이가 짝수면 A, 홀수면 B 이다.
// 기준일이 없으면 WeekTypeNone 을 돌려준다.
//
// 기준일보다 앞선 날짜는 주 차이가 음수가 되므로 나머지 연산이 아니라
// floor 방식의 모듈로를 써야 한다.
func ResolveWeekParity(date time.Time, epoch *time.Time) domain.WeekType {
	if epoch == nil {
		return domain.WeekTypeNone
	}

	startMonday := alignToMonday(*epoch)
	targetMonday := alignToMonday(date)

	// 둘 다 UTC 자정의 월요일이므로 차이는 정확히 7일의 배수다.
	weeks := int(targetMonday.Sub(startMonday) / (7 * 24 * time.Hour))

	if ((weeks%2)+2)%2 == 0 {
		return domain.WeekTypeA
	}
	return domain.WeekTypeB
}

// Resolution 은 특정 날짜/시간대의 해석 결과다. StaffName 이 빈 문자열이면
// 미배정을 뜻한다.
type Resolution struct {
	StaffName  string `json:"staffName"`
	Overridden bool   `json:"overridden"`
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func findTemplate(templates []*domain.ScheduleTemplate, dayOfWeek int, shift domain.Shift, weekType domain.WeekType) *domain.ScheduleTemplate {
	for _, t := range templates {
		if t.DayOfWeek == dayOfWeek && t.Shift == shift && t.WeekType == weekType {
			return t
		}
	}
	return nil
}

// EffectiveTemplateStaff 는 오버라이드를 무시하고 템플릿 계층만으로
// 정해지는 근무자를 돌려준다. 주차별(A/B) 행이 있으면 그것이 우선이고,
// 없으면 every 행으로 내려간다.
func EffectiveTemplateStaff(date time.Time, shift domain.Shift, templates []*domain.ScheduleTemplate, epoch *time.Time) string {
	dayOfWeek := int(date.Weekday())

	if weekType := ResolveWeekParity(date, epoch); weekType != domain.WeekTypeNone {
		if t := findTemplate(templates, dayOfWeek, shift, weekType); t != nil {
			return t.StaffName
		}
	}
	if t := findTemplate(templates, dayOfWeek, shift, domain.WeekTypeEvery); t != nil {
		return t.StaffName
	}
	return ""
}

// ShouldOverride 는 제안된 배정을 오버라이드로 저장할지 판단한다.
// 비어 있거나 템플릿이 정하는 값과 같으면 저장하지 않는다. 이때 호출
// 쪽은 기존 오버라이드를 지워서 템플릿 값으로 돌아가게 한다.
func ShouldOverride(proposed, templateStaff string) bool {
	return proposed != "" && proposed != templateStaff
}

// ResolveShift 는 우선순위에 따라 근무자를 결정한다.
//
//  1. 해당 (날짜, 시간대)의 오버라이드
//  2. 주차가 정해져 있으면 (요일, 시간대, 주차) 템플릿
//  3. (요일, 시간대, every) 템플릿
//  4. 아무것도 없으면 미배정
//
// 오전과 오후는 서로 독립적으로 해석된다.
func ResolveShift(date time.Time, shift domain.Shift, templates []*domain.ScheduleTemplate, overrides []*domain.ScheduleOverride, epoch *time.Time) Resolution {
	for _, o := range overrides {
		if o.Shift == shift && sameDate(o.Date, date) {
			return Resolution{StaffName: o.StaffName, Overridden: true}
		}
	}

	return Resolution{StaffName: EffectiveTemplateStaff(date, shift, templates, epoch)}
}
