package domain

import (
	"time"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

type WeekType string

const (
	WeekTypeA     WeekType = "A"
	WeekTypeB     WeekType = "B"
	WeekTypeEvery WeekType = "every"
	WeekTypeNone  WeekType = ""
)

// ScheduleTemplate 은 (요일, 시간대, 주차) 조합의 기본 근무자를 나타낸다.
// 근무자는 id 가 아니라 이름으로 참조된다. 근무자 이름을 바꿔도
// 기존 배정에는 반영되지 않는다.
type ScheduleTemplate struct {
	ID        int64     `json:"id"`
	DayOfWeek int       `json:"dayOfWeek"` // 0 = 일요일
	Shift     Shift     `json:"shift"`
	WeekType  WeekType  `json:"weekType"` // A, B 또는 every
	StaffName string    `json:"staffName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScheduleOverride 는 특정 날짜 하루에만 적용되는 근무 변경이다.
type ScheduleOverride struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Shift     Shift     `json:"shift"`
	StaffName string    `json:"staffName"`
	CreatedAt time.Time `json:"createdAt"`
}

const SettingKeyBiweeklyStartDate = "biweekly_start_date"
