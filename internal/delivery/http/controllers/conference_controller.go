package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

type ConferenceController struct {
	Logger        *slog.Logger
	Service       domain.ConferenceService
	Registrations domain.RegistrationService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService, regSvc domain.RegistrationService) *ConferenceController {
	return &ConferenceController{
		Logger:        logger,
		Service:       svc,
		Registrations: regSvc,
	}
}

// CreateConferenceRequest is the request body for POST /conferences.
type CreateConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// Validate implements helpers.Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees cannot be negative")
	}
	return errs
}

// QueryConferencesRequest is the request body for POST /conferences/query.
type QueryConferencesRequest struct {
	Filters []domain.Filter `json:"filters"`
}

// AnnouncementResponse is the response body for GET /announcement.
type AnnouncementResponse struct {
	Announcement string `json:"announcement"`
}

// Create godoc
// @Summary Create a conference
// @Description Creates a conference organized by the current user. Missing city and topics get defaults, the month is derived from the start date, and seats start at max_attendees.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateConferenceRequest true "Conference fields"
// @Success 201 {object} helpers.APIResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	conf, err := c.Service.CreateConference(r.Context(), userID, domain.CreateConferenceInput{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conf)
}

// Get godoc
// @Summary Get a conference
// @Tags conferences
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains the conference with organizer display name"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [get]
func (c *ConferenceController) Get(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	conf, err := c.Service.GetConference(r.Context(), conferenceID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// ListCreated godoc
// @Summary List conferences created by the current user
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/created [get]
func (c *ConferenceController) ListCreated(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	confs, err := c.Service.GetConferencesCreated(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// ListAttending godoc
// @Summary List conferences the current user is registered for
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/attending [get]
func (c *ConferenceController) ListAttending(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	confs, err := c.Service.GetConferencesToAttend(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// Query godoc
// @Summary Query conferences with field filters
// @Description Filters use wire tokens for fields (CITY, TOPIC, MONTH, MAX_ATTENDEES) and operators (EQ, GT, GTEQ, LT, LTEQ, NE). At most one field may carry inequality operators.
// @Tags conferences
// @Accept json
// @Produce json
// @Param body body QueryConferencesRequest true "Filter list"
// @Success 200 {object} helpers.APIResponse "data contains the matching conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/query [post]
func (c *ConferenceController) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryConferencesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	confs, err := c.Service.QueryConferences(r.Context(), req.Filters)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// Announcement godoc
// @Summary Get the nearly-sold-out announcement
// @Description Returns the cached announcement, or an empty string when there is none. Never recomputes on a cache miss.
// @Tags conferences
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the announcement"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /announcement [get]
func (c *ConferenceController) Announcement(w http.ResponseWriter, r *http.Request) {
	announcement, err := c.Service.GetAnnouncement(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Announcement: announcement})
}

// Register godoc
// @Summary Register the current user for a conference
// @Description Takes one seat atomically. Retries transparently on transient contention.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 201 {object} helpers.APIResponse "data contains registered: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or sold out)"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /conferences/{conferenceID}/registrations [post]
func (c *ConferenceController) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	if err := c.Registrations.Register(r.Context(), userID, conferenceID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]bool{"registered": true})
}

// Unregister godoc
// @Summary Remove the current user's registration
// @Description Returns the seat to the pool. Removing a registration that does not exist is a no-op reported as removed: false.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains removed: true/false"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /conferences/{conferenceID}/registrations [delete]
func (c *ConferenceController) Unregister(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	removed, err := c.Registrations.Unregister(r.Context(), userID, conferenceID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"removed": removed})
}
