package http

import (
	"net/http"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/domain/schedule"
	"github.com/ncl-services/ncl-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Month(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
	loc             *time.Location
	now             func() time.Time
}

func NewScheduleHandler(scheduleService schedule.ScheduleService, loc *time.Location) ScheduleHandler {
	if loc == nil {
		loc = time.Local
	}
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
		loc:             loc,
		now:             time.Now,
	}
}

// Month implements ScheduleHandler. ?month=YYYY-MM, defaults to the current month.
func (h *scheduleHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	today := h.now().In(h.loc)

	query := schedule.MonthQuery{Month: r.URL.Query().Get("month")}
	year, month, err := query.Validate(today)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	calendar, err := h.scheduleService.Month(r.Context(), year, month, today)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule.NewCalendarResponse(calendar))
}

// History implements ScheduleHandler.
func (h *scheduleHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.scheduleService.PastShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]schedule.PastShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, schedule.NewPastShiftResponse(s, h.loc))
	}
	response.Success(w, resp)
}
