package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/slab-org/slab-gangnam4/internal/domain"
)

func (h *Handler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staffList, err := h.repository.GetAllStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무자 목록 조회에 성공했습니다", staffList)
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name" validate:"required,max=20"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := &domain.Staff{
		Name: payload.Name,
	}
	if err := h.repository.CreateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_name_key":
			h.errorResponse(w, r, "이미 등록된 이름입니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "근무자 등록에 성공했습니다", staff)
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staff, ok := r.Context().Value(StaffInfoCtx).(*domain.Staff)
	if !ok {
		h.internalServerError(w, r, errors.New("컨텍스트에서 근무자 정보를 읽지 못했습니다"))
		return
	}

	var payload struct {
		Name string `json:"name" validate:"required,max=20"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff.Name = payload.Name
	if err := h.repository.UpdateStaff(staff); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_name_key":
			h.errorResponse(w, r, "이미 등록된 이름입니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "근무자 정보 수정에 성공했습니다", staff)
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staff, ok := r.Context().Value(StaffInfoCtx).(*domain.Staff)
	if !ok {
		h.internalServerError(w, r, errors.New("컨텍스트에서 근무자 정보를 읽지 못했습니다"))
		return
	}

	if err := h.repository.DeleteStaff(staff.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무자 삭제에 성공했습니다", nil)
}
