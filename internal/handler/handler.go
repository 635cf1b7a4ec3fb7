package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Open(ctx context.Context, id string) error
	Close(ctx context.Context, id string) error
}

type WaitlistSvc interface {
	JoinWaitlist(ctx context.Context, input domain.JoinInput) (*domain.Entry, error)
	Cancel(ctx context.Context, eventID, entrantID string) error
	Draw(ctx context.Context, eventID, roundID string, needed int) ([]string, error)
	Decide(ctx context.Context, eventID, entrantID string, decision domain.Decision) error
	Enroll(ctx context.Context, eventID, entrantID string) error
	ListEntries(ctx context.Context, eventID string, status domain.EntryStatus) ([]*domain.Entry, error)
	GetStatusCounts(ctx context.Context, eventID string) (map[domain.EntryStatus]int, error)
}

type EntrantSvc interface {
	Create(ctx context.Context, input domain.CreateEntrantInput) (*domain.Entrant, error)
	List(ctx context.Context) ([]*domain.Entrant, error)
	Notifications(ctx context.Context, entrantID string) ([]*domain.NotificationRecord, error)
}

type Handler struct {
	eventService    EventSvc
	waitlistService WaitlistSvc
	entrantService  EntrantSvc
}

func NewHandler(eventService EventSvc, waitlistService WaitlistSvc, entrantService EntrantSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		waitlistService: waitlistService,
		entrantService:  entrantService,
	}
}

// Events
func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Title:               req.Title,
		Description:         req.Description,
		DrawCapacity:        req.DrawCapacity,
		WaitingListCapacity: req.WaitingListCapacity,
		RequiresGeolocation: req.RequiresGeolocation,
		Open:                req.Open,
	}

	if req.RegistrationClosesAt != "" {
		closesAt, err := time.Parse(time.RFC3339, req.RegistrationClosesAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid registration_closes_at format, expected RFC3339",
			})
			return
		}
		input.RegistrationClosesAt = &closesAt
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) OpenEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Open(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.EventStatusOpen)})
}

func (h *Handler) CloseEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Close(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.EventStatusClosed)})
}

// Waiting list

func (h *Handler) JoinWaitlist(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.JoinInput{EventID: id, EntrantID: req.EntrantID}
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		input.Location = &domain.Geolocation{Latitude: *req.Latitude, Longitude: *req.Longitude}
	case req.Latitude != nil || req.Longitude != nil:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "latitude and longitude must be sent together"})
		return
	}

	entry, err := h.waitlistService.JoinWaitlist(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *Handler) CancelEntry(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.waitlistService.Cancel(c.Request.Context(), id, c.Param("entrant_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.EntryStatusCanceled)})
}

func (h *Handler) Draw(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.RoundID == "" {
		req.RoundID = uuid.NewString()
	}

	selected, err := h.waitlistService.Draw(c.Request.Context(), id, req.RoundID, req.Count)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if selected == nil {
		selected = []string{}
	}

	c.JSON(http.StatusOK, dto.DrawResponse{EventID: id, RoundID: req.RoundID, Selected: selected})
}

func (h *Handler) Decide(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	decision := domain.Decision(req.Decision)
	if err := h.waitlistService.Decide(c.Request.Context(), id, c.Param("entrant_id"), decision); err != nil {
		h.handleError(c, err)
		return
	}

	target, _ := decision.Target()
	c.JSON(http.StatusOK, ginext.H{"status": string(target)})
}

func (h *Handler) Enroll(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.waitlistService.Enroll(c.Request.Context(), id, c.Param("entrant_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.EntryStatusEnrolled)})
}

func (h *Handler) ListEntries(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	status := domain.EntryStatus(c.DefaultQuery("status", string(domain.EntryStatusWaiting)))
	entries, err := h.waitlistService.ListEntries(c.Request.Context(), id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToEntryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetStatusCounts(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	counts, err := h.waitlistService.GetStatusCounts(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCountsResponse(counts))
}

// Entrants

func (h *Handler) CreateEntrant(c *ginext.Context) {
	var req dto.CreateEntrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEntrantInput{
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	}

	entrant, err := h.entrantService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntrantResponse(entrant))
}

func (h *Handler) ListEntrants(c *ginext.Context) {
	entrants, err := h.entrantService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EntrantResponse, 0, len(entrants))
	for _, e := range entrants {
		resp = append(resp, dto.ToEntrantResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEntrantNotifications(c *ginext.Context) {
	// any id accepted by join has an inbox
	entrantID := strings.TrimSpace(c.Param("id"))
	if entrantID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "entrant id is required"})
		return
	}

	records, err := h.entrantService.Notifications(c.Request.Context(), entrantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(records))
	for _, n := range records {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrEntrantNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "you are already on the list for this event"})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "this invitation is no longer available"})

	case errors.Is(err, domain.ErrStaleState),
		errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "the entry was changed by another request, please retry"})

	case errors.Is(err, domain.ErrWaitlistFull),
		errors.Is(err, domain.ErrEventNotOpen),
		errors.Is(err, domain.ErrEventStatus),
		errors.Is(err, domain.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEntrantExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "service temporarily unavailable, please retry"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
