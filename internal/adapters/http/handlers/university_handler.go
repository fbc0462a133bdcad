package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/campus-superapp/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/domain/university"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// Range limits for date queries.
const (
	defaultScheduleDays = 6
	maxScheduleDays     = 62
	maxCalendarDays     = 366
)

// UniversityHandler serves university content: timetables, news, events,
// dean-office services and the library catalogue.
type UniversityHandler struct {
	svc ports.UniversityService
	now func() time.Time
}

// NewUniversityHandler creates a new UniversityHandler.
func NewUniversityHandler(svc ports.UniversityService) *UniversityHandler {
	return &UniversityHandler{svc: svc, now: time.Now}
}

// ListUniversities handles GET /api/v1/universities.
func (h *UniversityHandler) ListUniversities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToUniversityListResponse(h.svc.Universities()))
}

// SearchSchedule handles GET /api/v1/universities/{universityId}/schedule/search?term=.
func (h *UniversityHandler) SearchSchedule(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("term", domain.MsgRequired))
		return
	}

	targets, err := h.svc.SearchSchedule(r.Context(), uni, term)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToScheduleTargetResponses(targets))
}

// Schedule handles GET /api/v1/universities/{universityId}/schedule/{kind}/{targetId}.
// start defaults to today and finish to a week from start.
func (h *UniversityHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	kind, err := pathParam(r, "kind")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	target, err := pathParam(r, "targetId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	today := truncateDay(h.now())
	start, err := queryDate(r, "start", today)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	finish, err := queryDate(r, "finish", start.AddDate(0, 0, defaultScheduleDays))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := checkRange("finish", start, finish, maxScheduleDays); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	slots, err := h.svc.Schedule(r.Context(), uni, university.ScheduleQuery{
		Kind:     kind,
		TargetID: target,
		Start:    start,
		Finish:   finish,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLessonSlotResponses(slots))
}

// News handles GET /api/v1/universities/{universityId}/news.
func (h *UniversityHandler) News(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.News(r.Context(), uni)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNewsResponses(items))
}

// NewsContent handles GET /api/v1/universities/{universityId}/news/content?url=.
func (h *UniversityHandler) NewsContent(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	target := strings.TrimSpace(r.URL.Query().Get("url"))
	if target == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("url", domain.MsgRequired))
		return
	}

	article, err := h.svc.NewsArticle(r.Context(), uni, target)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewsArticleResponse(*article))
}

// Calendar handles GET /api/v1/universities/{universityId}/calendar?from=&to=.
// The range defaults to the current month.
func (h *UniversityHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	today := truncateDay(h.now())
	monthStart := today.AddDate(0, 0, 1-today.Day())
	from, err := queryDate(r, "from", monthStart)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	to, err := queryDate(r, "to", monthStart.AddDate(0, 1, -1))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := checkRange("to", from, to, maxCalendarDays); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	events, err := h.svc.Calendar(r.Context(), uni, university.DateRange{From: from, To: to})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCalendarResponses(events))
}

// DeanOffice handles GET /api/v1/universities/{universityId}/dean-office.
func (h *UniversityHandler) DeanOffice(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	links, err := h.svc.DeanOffice(r.Context(), uni)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDeanOfficeResponses(links))
}

// Library handles GET /api/v1/universities/{universityId}/library?lang=.
func (h *UniversityHandler) Library(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.svc.Library(r.Context(), uni, r.URL.Query().Get("lang"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LibraryPageResponse(*page))
}

// Overview handles GET /api/v1/universities/{universityId}/overview.
func (h *UniversityHandler) Overview(w http.ResponseWriter, r *http.Request) {
	uni, err := pathParam(r, "universityId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	overview, err := h.svc.Overview(r.Context(), uni)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOverviewResponse(overview))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// checkRange rejects ranges that end before they start or span more than
// maxDays days.
func checkRange(field string, from, to time.Time, maxDays int) error {
	if to.Before(from) {
		return domain.NewValidationError(field, "must not be before the start of the range")
	}
	if to.Sub(from) > time.Duration(maxDays)*24*time.Hour {
		return domain.NewValidationError(field, fmt.Sprintf("range must not exceed %d days", maxDays))
	}
	return nil
}
