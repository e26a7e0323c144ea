// Package report 는 재고/환경 현황을 메신저에 붙여넣을 수 있는 보고
// 문구로 만든다. 문구 형식은 지점에서 실제로 쓰던 양식을 그대로 따른다.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyReport 는 보고할 내용이 하나도 없을 때 반환된다.
var ErrEmptyReport = errors.New("복사할 정보가 없습니다")

// InventoryCount 는 물품 하나의 실사 수량이다. Quantity 가 -1 이면
// "충분"으로 간주하고 보고에서 제외한다.
type InventoryCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ACState 는 에어컨 한 대의 상태다. Mode 는 off, cool, fan, dry, heat
// 중 하나다.
type ACState struct {
	Location         string `json:"location"`
	Mode             string `json:"mode"`
	Temperature      string `json:"temperature"`
	ReservationHours string `json:"reservationHours"`
}

// RoomStatus 는 구역 하나의 온습도와 에어컨 상태다.
type RoomStatus struct {
	Name            string    `json:"name"`
	Temperature     string    `json:"temperature"`
	Humidity        string    `json:"humidity"`
	AirConditioners []ACState `json:"airConditioners"`
}

var acModeNames = map[string]string{
	"off":  "꺼짐",
	"cool": "냉방",
	"fan":  "송풍",
	"dry":  "제습",
	"heat": "난방",
}

func acModeName(mode string) string {
	if name, ok := acModeNames[mode]; ok {
		return name
	}
	return mode
}

// inventoryLines 는 재고 부분의 본문을 만든다. 수량이 입력된 물품이
// 하나도 없으면 특이사항 없음으로 처리한다.
func inventoryLines(counts []InventoryCount) string {
	var checked []InventoryCount
	for _, c := range counts {
		if c.Quantity >= 0 {
			checked = append(checked, c)
		}
	}
	if len(checked) == 0 {
		return "재고 특이사항 없음.\n"
	}

	var b strings.Builder
	b.WriteString("현재 재고 현황:\n")
	for _, c := range checked {
		fmt.Fprintf(&b, "%s: %d개\n", c.Name, c.Quantity)
	}
	return b.String()
}

// InventoryReport 는 재고 실사 결과를 보고 문구로 만든다.
func InventoryReport(branchName string, counts []InventoryCount, note string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s 입니다.\n\n", branchName)
	b.WriteString(inventoryLines(counts))

	if strings.TrimSpace(note) != "" {
		b.WriteString("\n재고 관련 추가 사항:\n")
		b.WriteString(note)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// environmentLines 는 구역별 온습도/에어컨/체크리스트 본문을 만든다.
// 아무 입력도 없으면 빈 문자열을 돌려준다.
func environmentLines(rooms []RoomStatus, checklistDone []string, note string) string {
	var b strings.Builder

	for _, room := range rooms {
		switch {
		case room.Temperature != "" && room.Humidity != "":
			fmt.Fprintf(&b, "\n%s 온도 %s℃, 습도 %s%% 입니다.\n", room.Name, room.Temperature, room.Humidity)
		case room.Temperature != "":
			fmt.Fprintf(&b, "\n%s 온도 %s℃ 입니다.\n", room.Name, room.Temperature)
		case room.Humidity != "":
			fmt.Fprintf(&b, "\n%s 습도 %s%% 입니다.\n", room.Name, room.Humidity)
		}

		for _, ac := range room.AirConditioners {
			if ac.Mode == "" || ac.Mode == "off" {
				continue
			}
			fmt.Fprintf(&b, "- %s %s 에어컨: %s", room.Name, ac.Location, acModeName(ac.Mode))
			if ac.Temperature != "" {
				fmt.Fprintf(&b, ", %s℃", ac.Temperature)
			}
			if ac.ReservationHours != "" {
				fmt.Fprintf(&b, ", %s시간 예약", ac.ReservationHours)
			}
			b.WriteString("\n")
		}
	}

	for _, item := range checklistDone {
		fmt.Fprintf(&b, "\n- %s 완료", item)
	}

	if strings.TrimSpace(note) != "" {
		b.WriteString("\n추가 사항:\n")
		b.WriteString(note)
	}

	return strings.TrimSpace(b.String())
}

// EnvironmentReport 는 온습도 보고 문구를 만든다. 입력이 하나도 없으면
// ErrEmptyReport 를 돌려준다.
func EnvironmentReport(branchName string, rooms []RoomStatus, checklistDone []string, note string) (string, error) {
	body := environmentLines(rooms, checklistDone, note)
	if body == "" {
		return "", ErrEmptyReport
	}

	return fmt.Sprintf("%s 입니다.\n\n%s", branchName, body), nil
}
