package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// The registration counter is not part of the payload; it is owned by the
// registration ledger and starts at zero for new events.
type EventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	MaxCapacity int       `json:"max_capacity"`
	EventType   string    `json:"event_type"`
	IsActive    *bool     `json:"is_active,omitempty"`
	CollegeID   string    `json:"college_id"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, "name is required")
	}
	if e.EventDate.IsZero() {
		errs = append(errs, "event_date is required")
	}
	if e.MaxCapacity <= 0 {
		errs = append(errs, "max_capacity must be positive")
	}
	if strings.TrimSpace(e.CollegeID) == "" {
		errs = append(errs, "college_id is required")
	}
	return errs
}

func (e EventRequest) toDomain(id string) *domain.Event {
	event := &domain.Event{
		ID:          id,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		Location:    e.Location,
		MaxCapacity: e.MaxCapacity,
		EventType:   e.EventType,
		IsActive:    true,
		CollegeID:   e.CollegeID,
	}
	if e.IsActive != nil {
		event.IsActive = *e.IsActive
	}
	return event
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Create a campus event. New events always start active with zero registrations.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown college)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toDomain("")
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Get godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// List godoc
// @Summary List events
// @Description Paginated list of events. Filter with ?filter=active or ?filter=available, or by ?type=.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Param filter query string false "active | available"
// @Param type query string false "Event type filter"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)

	var (
		events []*domain.Event
		err    error
	)
	switch {
	case r.URL.Query().Get("type") != "":
		events, err = c.Service.ListEventsByType(r.Context(), r.URL.Query().Get("type"))
	case r.URL.Query().Get("filter") == "active":
		events, err = c.Service.ListActiveEvents(r.Context())
	case r.URL.Query().Get("filter") == "available":
		events, err = c.Service.ListAvailableEvents(r.Context())
	default:
		events, err = c.Service.ListEvents(r.Context())
	}
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PagedResponse{
		Items: pageSlice(events, params),
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, len(events)),
	})
}

// ListByCollege godoc
// @Summary List events of a college
// @Tags events
// @Produce json
// @Param collegeID path string true "College ID"
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges/{collegeID}/events [get]
func (c *EventController) ListByCollege(w http.ResponseWriter, r *http.Request) {
	collegeID, ok := pathValue(w, r, "collegeID")
	if !ok {
		return
	}
	events, err := c.Service.ListEventsByCollege(r.Context(), collegeID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Search godoc
// @Summary Search events
// @Description Case-insensitive substring search over event names and descriptions.
// @Tags events
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (blank term)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/search [get]
func (c *EventController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	events, err := c.Service.SearchEvents(r.Context(), term)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListByDateRange godoc
// @Summary List events within a date range
// @Description Events with event_date between start and end, inclusive. Dates are RFC 3339.
// @Tags events
// @Produce json
// @Param start query string true "Range start (RFC 3339)"
// @Param end query string true "Range end (RFC 3339)"
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (bad or inverted range)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/by-date [get]
func (c *EventController) ListByDateRange(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "start must be RFC 3339")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "end must be RFC 3339")
		return
	}
	events, err := c.Service.ListEventsByDateRange(r.Context(), start, end)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Update godoc
// @Summary Update an event
// @Description Update event details. The registration counter cannot be changed through this endpoint.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toDomain(eventID)
	if err := c.Service.UpdateEvent(r.Context(), event); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
