package handler

import (
	"errors"
	"net/http"

	"github.com/slab-org/slab-gangnam4/internal/branch"
	"github.com/slab-org/slab-gangnam4/internal/report"
)

func (h *Handler) BuildInventoryReport(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Counts []report.InventoryCount `json:"counts" validate:"required,dive"`
		Note   string                  `json:"note" validate:"max=2000"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	text := report.InventoryReport(branch.Name, payload.Counts, payload.Note)

	h.successResponse(w, r, "재고 보고 문구를 생성했습니다", text)
}

func (h *Handler) BuildEnvironmentReport(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Rooms         []report.RoomStatus `json:"rooms" validate:"dive"`
		ChecklistDone []string            `json:"checklistDone"`
		Note          string              `json:"note" validate:"max=2000"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	text, err := report.EnvironmentReport(branch.Name, payload.Rooms, payload.ChecklistDone, payload.Note)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrEmptyReport):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "환경 보고 문구를 생성했습니다", text)
}
