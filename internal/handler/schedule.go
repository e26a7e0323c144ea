package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/slab-org/slab-gangnam4/internal/domain"
	"github.com/slab-org/slab-gangnam4/internal/schedule"
)

const dateLayout = "2006-01-02"

// biweeklyStartDate 는 설정이 없을 수 있다. 그 경우 nil 을 돌려주고,
// 호출 쪽은 주차 구분 없이 every 템플릿만으로 해석한다.
func (h *Handler) biweeklyStartDate() (*time.Time, error) {
	value, err := h.repository.GetSetting(domain.SettingKeyBiweeklyStartDate)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, nil
		default:
			return nil, err
		}
	}

	epoch, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &epoch, nil
}

type dayScheduleResponse struct {
	Date      string              `json:"date"`
	WeekType  domain.WeekType     `json:"weekType"`
	Morning   schedule.Resolution `json:"morning"`
	Afternoon schedule.Resolution `json:"afternoon"`
}

func (h *Handler) GetMonthSchedule(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		h.errorResponse(w, r, "연도가 올바르지 않습니다")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.errorResponse(w, r, "월이 올바르지 않습니다")
		return
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	templates, err := h.repository.GetAllScheduleTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	overrides, err := h.repository.GetScheduleOverridesInRange(first, last)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	epoch, err := h.biweeklyStartDate()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	days := make([]dayScheduleResponse, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, dayScheduleResponse{
			Date:      d.Format(dateLayout),
			WeekType:  schedule.ResolveWeekParity(d, epoch),
			Morning:   schedule.ResolveShift(d, domain.ShiftMorning, templates, overrides, epoch),
			Afternoon: schedule.ResolveShift(d, domain.ShiftAfternoon, templates, overrides, epoch),
		})
	}

	h.successResponse(w, r, "근무표 조회에 성공했습니다", map[string]any{
		"days":      days,
		"overrides": overrides,
	})
}

type cellModeResponse struct {
	DayOfWeek int          `json:"dayOfWeek"`
	Shift     domain.Shift `json:"shift"`
}

// cellModesList 는 격주 모드인 칸만 정렬된 목록으로 바꾼다. CellModes 는
// 구조체 키 맵이라 그대로 JSON 으로 내릴 수 없다.
func cellModesList(modes schedule.CellModes) []cellModeResponse {
	list := make([]cellModeResponse, 0, len(modes))
	for cell, biweekly := range modes {
		if !biweekly {
			continue
		}
		list = append(list, cellModeResponse{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].DayOfWeek != list[j].DayOfWeek {
			return list[i].DayOfWeek < list[j].DayOfWeek
		}
		return list[i].Shift < list[j].Shift
	})
	return list
}

func (h *Handler) GetScheduleTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repository.GetAllScheduleTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무 템플릿 조회에 성공했습니다", map[string]any{
		"templates":     templates,
		"biweeklyCells": cellModesList(schedule.ModesFromTemplates(templates)),
	})
}

type templateCellPayload struct {
	DayOfWeek int          `json:"dayOfWeek" validate:"min=0,max=6"`
	Shift     domain.Shift `json:"shift" validate:"required,oneof=morning afternoon"`
	Biweekly  bool         `json:"biweekly"`
	Every     string       `json:"every" validate:"max=20"`
	WeekA     string       `json:"weekA" validate:"max=20"`
	WeekB     string       `json:"weekB" validate:"max=20"`
}

// SaveScheduleTemplates 는 관리 화면이 보낸 격자 전체를 받아서 저장된
// 상태와의 차이만큼만 저장소에 반영한다. 응답으로는 반영 후 다시 읽어온
// 행들을 돌려준다.
func (h *Handler) SaveScheduleTemplates(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Cells []templateCellPayload `json:"cells" validate:"required,max=14,dive"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	desired := make(schedule.Assignments)
	modes := make(schedule.CellModes)
	seen := make(map[schedule.CellKey]bool)
	for _, cell := range payload.Cells {
		key := schedule.CellKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift}
		if seen[key] {
			h.errorResponse(w, r, "같은 칸이 두 번 들어 있습니다")
			return
		}
		seen[key] = true

		if cell.Biweekly {
			if cell.Every != "" {
				h.errorResponse(w, r, "격주 칸에는 매주 배정을 넣을 수 없습니다")
				return
			}
			modes[key] = true
			if cell.WeekA != "" {
				desired[schedule.TemplateKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift, WeekType: domain.WeekTypeA}] = cell.WeekA
			}
			if cell.WeekB != "" {
				desired[schedule.TemplateKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift, WeekType: domain.WeekTypeB}] = cell.WeekB
			}
		} else {
			if cell.WeekA != "" || cell.WeekB != "" {
				h.errorResponse(w, r, "매주 칸에는 주차별 배정을 넣을 수 없습니다")
				return
			}
			if cell.Every != "" {
				desired[schedule.TemplateKey{DayOfWeek: cell.DayOfWeek, Shift: cell.Shift, WeekType: domain.WeekTypeEvery}] = cell.Every
			}
		}
	}

	current, err := h.repository.GetAllScheduleTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	persisted := schedule.AssignmentsFromTemplates(current)

	ops := schedule.Reconcile(desired, persisted, modes)

	// 연산끼리는 서로 다른 행을 건드리므로 병렬로 내려도 된다
	eg, ctx := errgroup.WithContext(r.Context())
	for _, op := range ops {
		op := op
		eg.Go(func() error {
			switch op.Kind {
			case schedule.OpUpsert:
				return h.repository.UpsertScheduleTemplate(ctx, op.Key.DayOfWeek, op.Key.Shift, op.Key.WeekType, op.StaffName)
			default:
				return h.repository.DeleteScheduleTemplate(ctx, op.Key.DayOfWeek, op.Key.Shift, op.Key.WeekType)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		// 일부만 반영됐을 수 있다. 실제 상태는 아래에서 다시 읽어 온 것이
		// 기준이므로 여기서는 오류만 알린다.
		h.internalServerError(w, r, err)
		return
	}

	saved, err := h.repository.GetAllScheduleTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "근무 템플릿 저장에 성공했습니다", saved)
}

// SaveScheduleOverride 는 특정 날짜의 배정을 바꾼다. 바꾼 값이 비어
// 있거나 템플릿이 정하는 값과 같으면 오버라이드를 남기지 않고 지워서
// 템플릿 값으로 돌아가게 한다.
func (h *Handler) SaveScheduleOverride(w http.ResponseWriter, r *http.Request) {
	date, err := time.ParseInLocation(dateLayout, chi.URLParam(r, "date"), time.UTC)
	if err != nil {
		h.errorResponse(w, r, "날짜 형식이 올바르지 않습니다")
		return
	}

	var payload struct {
		Shift     domain.Shift `json:"shift" validate:"required,oneof=morning afternoon"`
		StaffName string       `json:"staffName" validate:"max=20"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}

	templates, err := h.repository.GetAllScheduleTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	epoch, err := h.biweeklyStartDate()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	templateStaff := schedule.EffectiveTemplateStaff(date, payload.Shift, templates, epoch)
	if schedule.ShouldOverride(payload.StaffName, templateStaff) {
		if err := h.repository.UpsertScheduleOverride(date, payload.Shift, payload.StaffName); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	} else {
		if err := h.repository.DeleteScheduleOverride(date, payload.Shift); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "근무 변경을 저장했습니다", nil)
}

// ResetScheduleOverride 는 하루치 오버라이드를 모두 지워서 기본 근무로
// 되돌린다.
func (h *Handler) ResetScheduleOverride(w http.ResponseWriter, r *http.Request) {
	date, err := time.ParseInLocation(dateLayout, chi.URLParam(r, "date"), time.UTC)
	if err != nil {
		h.errorResponse(w, r, "날짜 형식이 올바르지 않습니다")
		return
	}

	if err := h.repository.DeleteScheduleOverridesByDate(date); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "기본 근무로 되돌렸습니다", nil)
}

func (h *Handler) GetBiweeklyStartDate(w http.ResponseWriter, r *http.Request) {
	value, err := h.repository.GetSetting(domain.SettingKeyBiweeklyStartDate)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "격주 기준일이 설정돼 있지 않습니다", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "격주 기준일 조회에 성공했습니다", value)
}

func (h *Handler) SaveBiweeklyStartDate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Date string `json:"date" validate:"required"`
	}
	if err := h.readJSON(r, &payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := time.ParseInLocation(dateLayout, payload.Date, time.UTC); err != nil {
		h.errorResponse(w, r, "날짜 형식이 올바르지 않습니다")
		return
	}

	if err := h.repository.UpsertSetting(domain.SettingKeyBiweeklyStartDate, payload.Date); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "격주 기준일을 저장했습니다", nil)
}
