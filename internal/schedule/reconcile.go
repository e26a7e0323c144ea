package schedule

import (
	"github.com/slab-org/slab-gangnam4/internal/domain"
)

type OpKind string

const (
	OpUpsert OpKind = "upsert"
	OpDelete OpKind = "delete"
)

// Op 은 저장소에 내릴 쓰기 연산 하나다.
type Op struct {
	Kind      OpKind
	Key       TemplateKey
	StaffName string // OpUpsert 일 때만 사용
}

var shifts = []domain.Shift{domain.ShiftMorning, domain.ShiftAfternoon}

// Reconcile 은 원하는 템플릿 상태와 마지막으로 저장된 상태를 비교해서
// 필요한 최소한의 쓰기 연산을 계산한다. 7x2 격자 전체를 칸 단위로 돈다.
//
// 격주 모드 칸은 저장돼 있던 every 행을 지우고 A/B 를 각각 맞추고,
// 매주 모드 칸은 저장돼 있던 A/B 행을 지우고 every 를 맞춘다. 값이
// 비어 있으면 삭제, 비어 있지 않고 다르면 업서트다.
//
// desired == persisted 이고 모드도 정리된 상태면 연산이 하나도 나오지
// 않으므로, 저장 직후 다시 실행해도 추가 쓰기는 발생하지 않는다.
func Reconcile(desired, persisted Assignments, modes CellModes) []Op {
	var ops []Op

	for day := 0; day < 7; day++ {
		for _, shift := range shifts {
			cell := CellKey{DayOfWeek: day, Shift: shift}
			everyKey := TemplateKey{DayOfWeek: day, Shift: shift, WeekType: domain.WeekTypeEvery}

			if modes[cell] {
				// 남아 있는 every 행 제거
				if persisted[everyKey] != "" {
					ops = append(ops, Op{Kind: OpDelete, Key: everyKey})
				}

				for _, wt := range []domain.WeekType{domain.WeekTypeA, domain.WeekTypeB} {
					key := TemplateKey{DayOfWeek: day, Shift: shift, WeekType: wt}
					ops = appendDiff(ops, key, desired[key], persisted[key])
				}
			} else {
				// 남아 있는 A/B 행 제거
				for _, wt := range []domain.WeekType{domain.WeekTypeA, domain.WeekTypeB} {
					key := TemplateKey{DayOfWeek: day, Shift: shift, WeekType: wt}
					if persisted[key] != "" {
						ops = append(ops, Op{Kind: OpDelete, Key: key})
					}
				}

				ops = appendDiff(ops, everyKey, desired[everyKey], persisted[everyKey])
			}
		}
	}

	return ops
}

func appendDiff(ops []Op, key TemplateKey, desired, persisted string) []Op {
	if desired == persisted {
		return ops
	}
	if desired != "" {
		return append(ops, Op{Kind: OpUpsert, Key: key, StaffName: desired})
	}
	return append(ops, Op{Kind: OpDelete, Key: key})
}
