package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryReport(t *testing.T) {
	counts := []InventoryCount{
		{Name: "물", Quantity: 3},
		{Name: "원두", Quantity: -1}, // 충분, 보고 제외
		{Name: "A4 용지", Quantity: 0},
	}

	got := InventoryReport("강남4호점", counts, "")
	assert.Equal(t, "강남4호점 입니다.\n\n현재 재고 현황:\n물: 3개\nA4 용지: 0개", got)
}

func TestInventoryReportAllPlenty(t *testing.T) {
	counts := []InventoryCount{
		{Name: "물", Quantity: -1},
		{Name: "원두", Quantity: -1},
	}

	got := InventoryReport("강남4호점", counts, "")
	assert.Equal(t, "강남4호점 입니다.\n\n재고 특이사항 없음.", got)
}

func TestInventoryReportWithNote(t *testing.T) {
	got := InventoryReport("강남4호점", nil, "우유 유통기한 확인 필요")
	assert.Equal(t, "강남4호점 입니다.\n\n재고 특이사항 없음.\n\n재고 관련 추가 사항:\n우유 유통기한 확인 필요", got)
}

func TestEnvironmentReport(t *testing.T) {
	rooms := []RoomStatus{
		{
			Name:        "스터디존",
			Temperature: "24",
			Humidity:    "55",
			AirConditioners: []ACState{
				{Location: "입구쪽", Mode: "cool", Temperature: "23"},
				{Location: "창가쪽", Mode: "off"},
			},
		},
		{
			Name:        "라운지존",
			Temperature: "25",
		},
	}

	got, err := EnvironmentReport("강남4호점", rooms, nil, "")
	require.NoError(t, err)
	assert.Equal(t,
		"강남4호점 입니다.\n\n"+
			"스터디존 온도 24℃, 습도 55% 입니다.\n"+
			"- 스터디존 입구쪽 에어컨: 냉방, 23℃\n"+
			"\n라운지존 온도 25℃ 입니다.",
		got)
}

func TestEnvironmentReportHumidityOnly(t *testing.T) {
	rooms := []RoomStatus{{Name: "스터디존", Humidity: "60"}}

	got, err := EnvironmentReport("강남4호점", rooms, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "강남4호점 입니다.\n\n스터디존 습도 60% 입니다.", got)
}

func TestEnvironmentReportACReservation(t *testing.T) {
	rooms := []RoomStatus{
		{
			Name: "라운지존",
			AirConditioners: []ACState{
				{Location: "창가쪽", Mode: "heat", Temperature: "26", ReservationHours: "2"},
				{Location: "입구쪽", Mode: "fan"},
			},
		},
	}

	got, err := EnvironmentReport("강남4호점", rooms, nil, "")
	require.NoError(t, err)
	assert.Equal(t,
		"강남4호점 입니다.\n\n"+
			"- 라운지존 창가쪽 에어컨: 난방, 26℃, 2시간 예약\n"+
			"- 라운지존 입구쪽 에어컨: 송풍",
		got)
}

func TestEnvironmentReportChecklistAndNote(t *testing.T) {
	got, err := EnvironmentReport("강남4호점", nil, []string{"창문 닫기"}, "제습기 가동했습니다")
	require.NoError(t, err)
	assert.Equal(t, "강남4호점 입니다.\n\n- 창문 닫기 완료\n추가 사항:\n제습기 가동했습니다", got)
}

func TestEnvironmentReportEmpty(t *testing.T) {
	rooms := []RoomStatus{
		{Name: "스터디존", AirConditioners: []ACState{{Location: "입구쪽", Mode: "off"}}},
	}

	_, err := EnvironmentReport("강남4호점", rooms, nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyReport)
}
