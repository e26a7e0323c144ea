package handler

import (
	"net/http"

	"github.com/slab-org/slab-gangnam4/internal/branch"
)

// GetBranch 는 지점 정적 데이터를 한꺼번에 내려준다. 화면 쪽은 이것만
// 읽으면 실사/환경 입력 폼을 그릴 수 있다.
func (h *Handler) GetBranch(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "지점 정보 조회에 성공했습니다", map[string]any{
		"name":           branch.Name,
		"inventoryItems": branch.InventoryItems,
		"rooms":          branch.Rooms,
		"checklistItems": branch.ChecklistItems,
	})
}

func (h *Handler) GetGuideMessages(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "안내 문구 조회에 성공했습니다", branch.GuideMessages)
}
