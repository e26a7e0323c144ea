package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/slab-org/slab-gangnam4/internal/domain"
)

const handoverPageSize = 20

// handoverRange 는 filter 값을 실제 날짜 범위로 바꾼다. 주 범위는
// 월요일부터 시작한다. 모르는 값은 전체로 취급한다.
func handoverRange(filter string, now time.Time) (from, to *time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch filter {
	case "week":
		offset := int(today.Weekday()) - 1
		if today.Weekday() == time.Sunday {
			offset = 6
		}
		monday := today.AddDate(0, 0, -offset)
		sunday := monday.AddDate(0, 0, 6)
		return &monday, &sunday
	case "month":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return &first, &last
	case "lastMonth":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		last := first.AddDate(0, 1, -1)
		return &first, &last
	default:
		return nil, nil
	}
}

func (h *Handler) GetHandovers(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	from, to := handoverRange(r.URL.Query().Get("filter"), time.Now().UTC())

	memos, total, err := h.repository.GetHandovers(from, to, handoverPageSize, (page-1)*handoverPageSize)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "인수인계 메모 조회에 성공했습니다", map[string]any{
		"memos": memos,
		"total": total,
		"page":  page,
	})
}

func (h *Handler) CreateHandover(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Author  string `json:"author" validate:"required,max=20"`
		Content string `json:"content" validate:"required,max=2000"`
		Date    string `json:"date" validate:"required"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.ParseInLocation(dateLayout, payload.Date, time.UTC)
	if err != nil {
		h.errorResponse(w, r, "날짜 형식이 올바르지 않습니다")
		return
	}

	memo := &domain.Handover{
		Author:  payload.Author,
		Content: payload.Content,
		Date:    date,
	}
	if err := h.repository.CreateHandover(memo); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 메일 발송 실패가 메모 작성을 막으면 안 되므로 오류는 기록만 한다
	if err := h.publishHandoverMail(memo); err != nil {
		slog.Error("인수인계 메일 발행 실패", "handoverID", memo.ID, "error", err)
	}

	h.successResponse(w, r, "인수인계 메모를 작성했습니다", memo)
}

func (h *Handler) publishHandoverMail(memo *domain.Handover) error {
	msg := domain.MailMessage{
		Type: "handover_created",
		To:   h.config.Email.ManagerAddress,
		Data: domain.HandoverMailData{
			Author:  memo.Author,
			Date:    memo.Date.Format(dateLayout),
			Content: memo.Content,
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(ctx, "", "handover_queue", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (h *Handler) DeleteHandover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "메모 ID가 올바르지 않습니다")
		return
	}

	if err := h.repository.DeleteHandover(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "인수인계 메모를 삭제했습니다", nil)
}
