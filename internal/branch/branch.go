// Package branch 는 지점 고유의 정적 데이터(물품 목록, 구역 구성,
// 체크리스트, 안내 문구)를 담는다. 지점이 늘어나면 이 패키지를 지점별로
// 분리한다.
package branch

const Name = "강남4호점"

// InventoryItem 은 재고 실사 대상 물품이다.
type InventoryItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	MinimumStock int    `json:"minimumStock"`
}

// 물품 목록은 이름 가나다순이다.
var InventoryItems = []InventoryItem{
	{ID: 1, Name: "5핀 충전기", Unit: "개", MinimumStock: 1},
	{ID: 2, Name: "A4 용지", Unit: "장", MinimumStock: 100},
	{ID: 3, Name: "B4 용지", Unit: "장", MinimumStock: 50},
	{ID: 4, Name: "c타입 충전기", Unit: "개", MinimumStock: 1},
	{ID: 5, Name: "둥글레차", Unit: "봉", MinimumStock: 5},
	{ID: 6, Name: "레츠비", Unit: "개", MinimumStock: 10},
	{ID: 7, Name: "립톤", Unit: "봉", MinimumStock: 5},
	{ID: 8, Name: "매실차 원액", Unit: "병", MinimumStock: 1},
	{ID: 9, Name: "메밀차", Unit: "봉", MinimumStock: 5},
	{ID: 10, Name: "물", Unit: "병", MinimumStock: 24},
	{ID: 11, Name: "바닐라 시럽", Unit: "병", MinimumStock: 1},
	{ID: 12, Name: "보드마카", Unit: "개", MinimumStock: 2},
	{ID: 13, Name: "스푼", Unit: "개", MinimumStock: 10},
	{ID: 14, Name: "스트로우", Unit: "개", MinimumStock: 50},
	{ID: 15, Name: "슈가 시럽", Unit: "병", MinimumStock: 1},
	{ID: 16, Name: "아이스티", Unit: "봉", MinimumStock: 5},
	{ID: 17, Name: "아이폰 충전기", Unit: "개", MinimumStock: 1},
	{ID: 18, Name: "옥수수수염차", Unit: "봉", MinimumStock: 5},
	{ID: 19, Name: "오미자차 원액", Unit: "병", MinimumStock: 1},
	{ID: 20, Name: "우유", Unit: "팩", MinimumStock: 2},
	{ID: 21, Name: "원두", Unit: "봉", MinimumStock: 5},
	{ID: 22, Name: "작은 종이컵", Unit: "개", MinimumStock: 50},
	{ID: 23, Name: "종량제 봉투", Unit: "개", MinimumStock: 10},
	{ID: 24, Name: "종이컵 뚜껑", Unit: "개", MinimumStock: 50},
	{ID: 25, Name: "주스", Unit: "개", MinimumStock: 10},
	{ID: 26, Name: "점보롤", Unit: "개", MinimumStock: 2},
	{ID: 27, Name: "카라멜 시럽", Unit: "병", MinimumStock: 1},
	{ID: 28, Name: "카페존 냅킨", Unit: "개", MinimumStock: 50},
	{ID: 29, Name: "코코볼", Unit: "봉", MinimumStock: 5},
	{ID: 30, Name: "콘푸라이트", Unit: "병", MinimumStock: 1},
	{ID: 31, Name: "큰 비닐봉투", Unit: "개", MinimumStock: 10},
	{ID: 32, Name: "큰 종이컵", Unit: "개", MinimumStock: 50},
	{ID: 33, Name: "포크", Unit: "개", MinimumStock: 10},
	{ID: 34, Name: "핫식스", Unit: "개", MinimumStock: 10},
	{ID: 35, Name: "핫초코", Unit: "봉", MinimumStock: 5},
	{ID: 36, Name: "핸드워시", Unit: "병", MinimumStock: 1},
	{ID: 37, Name: "핸드타월", Unit: "개", MinimumStock: 2},
	{ID: 38, Name: "현미녹차", Unit: "봉", MinimumStock: 5},
	{ID: 39, Name: "히비스커스", Unit: "봉", MinimumStock: 5},
	{ID: 40, Name: "사탕", Unit: "개", MinimumStock: 20},
	{ID: 41, Name: "키친타올", Unit: "개", MinimumStock: 2},
}

// ACUnit 은 구역에 설치된 에어컨 한 대다.
type ACUnit struct {
	Location string `json:"location"`
}

// Room 은 온습도를 보고하는 구역이다.
type Room struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AirConditioners []ACUnit `json:"airConditioners"`
}

var Rooms = []Room{
	{
		ID:   "studyRoom",
		Name: "스터디존",
		AirConditioners: []ACUnit{
			{Location: "입구쪽"},
			{Location: "창가쪽"},
		},
	},
	{
		ID:   "loungeRoom",
		Name: "라운지존",
		AirConditioners: []ACUnit{
			{Location: "입구쪽"},
			{Location: "창가쪽"},
		},
	},
}

// ChecklistItem 은 마감 전 확인 항목이다.
type ChecklistItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var ChecklistItems = []ChecklistItem{
	{ID: "windows", Name: "창문 닫기", Description: "창문이 제대로 닫혀있는지 확인"},
}

// GuideMessage 는 회원 응대 시 복사해서 쓰는 안내 문구다.
type GuideMessage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

var GuideMessages = []GuideMessage{
	{
		ID:    "reservation-confirm",
		Title: "룸 예약 확정 안내",
		Text: "안녕하세요, 에스랩입니다. 룸 예약 확정 되셨습니다. 이용 및 변경/환불 정책을 참고해주세요.\n\n" +
			"출입용 예약번호가 예약 1시간 전에 문자(카카오톡x)로 전송됩니다. 키오스크에서 예약번호를 입력하시고 나오는 출입 바코드를 이용해주세요.\n\n" +
			"출입은 10분 전부터 가능하며 더 일찍 오셔도 룸과 카페존 출입이 불가합니다. 외부 음식은 안되지만 음료 반입은 가능하고, 다른 회원들을 배려해 조용히 이용해 주세요.",
	},
	{
		ID:    "refund-policy",
		Title: "변경/환불 정책 안내",
		Text: "예약 변경:\n예약 시간 24시간 전까지 1회에 한해 날짜와 시간 변경가능 (날짜 변경 시 추후 환불은 불가 합니다)\n\n" +
			"환불:\n이용 3일 전부터 : 위약금 30%\n이용 1일 전 : 위약금 100%",
	},
}
