package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/domain"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/handler/dto"
	hmocks "github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testDeps struct {
	events   *hmocks.MockEventSvc
	waitlist *hmocks.MockWaitlistSvc
	entrants *hmocks.MockEntrantSvc
	router   http.Handler
}

func setupRouter(t *testing.T) testDeps {
	t.Helper()
	d := testDeps{
		events:   hmocks.NewMockEventSvc(t),
		waitlist: hmocks.NewMockWaitlistSvc(t),
		entrants: hmocks.NewMockEntrantSvc(t),
	}

	h := NewHandler(d.events, d.waitlist, d.entrants)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/open", h.OpenEvent)
		api.POST("/events/:id/close", h.CloseEvent)
		api.POST("/events/:id/waitlist", h.JoinWaitlist)
		api.DELETE("/events/:id/waitlist/:entrant_id", h.CancelEntry)
		api.POST("/events/:id/draws", h.Draw)
		api.POST("/events/:id/entries/:entrant_id/decision", h.Decide)
		api.POST("/events/:id/entries/:entrant_id/enroll", h.Enroll)
		api.GET("/events/:id/entries", h.ListEntries)
		api.GET("/events/:id/counts", h.GetStatusCounts)
		api.POST("/entrants", h.CreateEntrant)
		api.GET("/entrants", h.ListEntrants)
		api.GET("/entrants/:id/notifications", h.GetEntrantNotifications)
	}
	d.router = r

	return d
}

func (d testDeps) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	d.router.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	d := setupRouter(t)

	closesAt := time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC)
	event := &domain.Event{
		ID:                   uuid.New().String(),
		Title:                "Pottery class",
		Status:               domain.EventStatusOpen,
		DrawCapacity:         12,
		WaitingListCapacity:  40,
		RegistrationClosesAt: &closesAt,
		CreatedAt:            time.Now(),
	}

	d.events.EXPECT().
		CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.DrawCapacity == 12 && in.RegistrationClosesAt != nil && in.RegistrationClosesAt.Equal(closesAt) && in.Open
		})).
		Return(event, nil)

	w := d.do(http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:                "Pottery class",
		DrawCapacity:         12,
		WaitingListCapacity:  40,
		RegistrationClosesAt: closesAt.Format(time.RFC3339),
		Open:                 true,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pottery class", resp.Title)
	assert.Equal(t, "open", resp.Status)
	require.NotNil(t, resp.RegistrationClosesAt)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPost, "/api/events", `{"title":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDeadline(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPost, "/api/events", `{"title":"X","draw_capacity":3,"registration_closes_at":"tomorrow"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event: domain.Event{ID: eventID, Title: "Pottery class", DrawCapacity: 5, CreatedAt: time.Now()},
		Counts: map[domain.EntryStatus]int{
			domain.EntryStatusWaiting:  7,
			domain.EntryStatusSelected: 2,
		},
		AvailableSlots: 3,
	}

	d.events.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := d.do(http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.AvailableSlots)
	assert.Equal(t, 7, resp.Counts["waiting"])
	assert.Equal(t, 0, resp.Counts["enrolled"])
	assert.Len(t, resp.Counts, len(domain.AllEntryStatuses))
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.events.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := d.do(http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	d := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", CreatedAt: time.Now()},
		{ID: "e2", Title: "Event 2", CreatedAt: time.Now()},
	}
	d.events.EXPECT().List(mock.Anything).Return(events, nil)

	w := d.do(http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_OpenClose(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.events.EXPECT().Open(mock.Anything, eventID).Return(nil)
	d.events.EXPECT().Close(mock.Anything, eventID).Return(fmt.Errorf("close: %w", domain.ErrEventStatus))

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/open", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = d.do(http.MethodPost, "/api/events/"+eventID+"/close", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Waiting list ---

func TestHandler_JoinWaitlist_Success(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	lat, lon := 53.5461, -113.4938
	entry := &domain.Entry{
		EventID:   eventID,
		EntrantID: "ent-1",
		Status:    domain.EntryStatusWaiting,
		JoinedAt:  time.Now(),
		Location:  &domain.Geolocation{Latitude: lat, Longitude: lon},
	}

	d.waitlist.EXPECT().
		JoinWaitlist(mock.Anything, domain.JoinInput{
			EventID:   eventID,
			EntrantID: "ent-1",
			Location:  &domain.Geolocation{Latitude: lat, Longitude: lon},
		}).
		Return(entry, nil)

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/waitlist", dto.JoinRequest{
		EntrantID: "ent-1",
		Latitude:  &lat,
		Longitude: &lon,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "waiting", resp.Status)
	require.NotNil(t, resp.Latitude)
	assert.InDelta(t, lat, *resp.Latitude, 1e-9)
}

func TestHandler_JoinWaitlist_HalfLocation(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	w := d.do(http.MethodPost, "/api/events/"+eventID+"/waitlist", `{"entrant_id":"ent-1","latitude":10}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinWaitlist_Duplicate(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().JoinWaitlist(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("insert entry: %w", domain.ErrDuplicateEntry))

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/waitlist", dto.JoinRequest{EntrantID: "ent-1"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already on the list")
}

func TestHandler_CancelEntry(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().Cancel(mock.Anything, eventID, "ent-1").Return(nil)

	w := d.do(http.MethodDelete, "/api/events/"+eventID+"/waitlist/ent-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "canceled")
}

func TestHandler_Draw_GeneratesRoundID(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	var gotRound string
	d.waitlist.EXPECT().Draw(mock.Anything, eventID, mock.Anything, 3).
		RunAndReturn(func(_ context.Context, _ string, roundID string, _ int) ([]string, error) {
			gotRound = roundID
			return []string{"a", "b"}, nil
		})

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/draws", dto.DrawRequest{Count: 3})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DrawResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b"}, resp.Selected)
	assert.Equal(t, gotRound, resp.RoundID)
	_, err := uuid.Parse(resp.RoundID)
	assert.NoError(t, err)
}

func TestHandler_Draw_ExplicitRoundEmptyPool(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().Draw(mock.Anything, eventID, "round-7", 0).Return(nil, nil)

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/draws", dto.DrawRequest{RoundID: "round-7"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"event_id":%q,"round_id":"round-7","selected":[]}`, eventID), w.Body.String())
}

func TestHandler_Decide(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().Decide(mock.Anything, eventID, "ent-1", domain.DecisionAccept).Return(nil)

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/entries/ent-1/decision", dto.DecisionRequest{Decision: "accept"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accepted")
}

func TestHandler_Decide_UnknownDecision(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	w := d.do(http.MethodPost, "/api/events/"+eventID+"/entries/ent-1/decision", dto.DecisionRequest{Decision: "maybe"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Decide_NoLongerAvailable(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().Decide(mock.Anything, eventID, "ent-1", domain.DecisionDecline).
		Return(fmt.Errorf("%w: canceled -> declined", domain.ErrInvalidTransition))

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/entries/ent-1/decision", dto.DecisionRequest{Decision: "decline"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no longer available")
}

func TestHandler_Enroll(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().Enroll(mock.Anything, eventID, "ent-1").Return(nil)

	w := d.do(http.MethodPost, "/api/events/"+eventID+"/entries/ent-1/enroll", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListEntries(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().ListEntries(mock.Anything, eventID, domain.EntryStatusWaiting).
		Return([]*domain.Entry{{EventID: eventID, EntrantID: "a", Status: domain.EntryStatusWaiting}}, nil)
	d.waitlist.EXPECT().ListEntries(mock.Anything, eventID, domain.EntryStatusSelected).
		Return(nil, nil)

	w := d.do(http.MethodGet, "/api/events/"+eventID+"/entries", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)

	w = d.do(http.MethodGet, "/api/events/"+eventID+"/entries?status=selected", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetStatusCounts(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().GetStatusCounts(mock.Anything, eventID).
		Return(map[domain.EntryStatus]int{domain.EntryStatusAccepted: 4}, nil)

	w := d.do(http.MethodGet, "/api/events/"+eventID+"/counts", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp["accepted"])
	assert.Equal(t, 0, resp["waiting"])
}

// --- Entrants ---

func TestHandler_CreateEntrant_Success(t *testing.T) {
	d := setupRouter(t)

	chatID := int64(4242)
	entrant := &domain.Entrant{ID: uuid.New().String(), Name: "ana", TelegramChatID: &chatID, CreatedAt: time.Now()}
	d.entrants.EXPECT().
		Create(mock.Anything, domain.CreateEntrantInput{Name: "ana", TelegramChatID: &chatID}).
		Return(entrant, nil)

	w := d.do(http.MethodPost, "/api/entrants", dto.CreateEntrantRequest{Name: "ana", TelegramChatID: &chatID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EntrantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ana", resp.Name)
}

func TestHandler_CreateEntrant_BadRequest(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodPost, "/api/entrants", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEntrants(t *testing.T) {
	d := setupRouter(t)

	d.entrants.EXPECT().List(mock.Anything).Return([]*domain.Entrant{{ID: "a", Name: "ana"}}, nil)

	w := d.do(http.MethodGet, "/api/entrants", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EntrantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetEntrantNotifications(t *testing.T) {
	d := setupRouter(t)

	entrantID := uuid.New().String()
	d.entrants.EXPECT().Notifications(mock.Anything, entrantID).
		Return([]*domain.NotificationRecord{{ID: "n1", Type: domain.NotificationChosen, Title: "You were chosen"}}, nil)

	w := d.do(http.MethodGet, "/api/entrants/"+entrantID+"/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "chosen", resp[0].Type)
}

func TestHandler_GetEntrantNotifications_NonUUIDID(t *testing.T) {
	d := setupRouter(t)

	d.entrants.EXPECT().Notifications(mock.Anything, "device-42").
		Return([]*domain.NotificationRecord{}, nil)

	w := d.do(http.MethodGet, "/api/entrants/device-42/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetEntrantNotifications_BlankID(t *testing.T) {
	d := setupRouter(t)

	w := d.do(http.MethodGet, "/api/entrants/%20/notifications", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"stale", fmt.Errorf("transition: %w", domain.ErrStaleState), http.StatusConflict},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"full", domain.ErrWaitlistFull, http.StatusConflict},
		{"not open", domain.ErrEventNotOpen, http.StatusConflict},
		{"capacity", domain.ErrCapacityExceeded, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"store down", fmt.Errorf("count: %w: %w", domain.ErrStoreUnavailable, assert.AnError), http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)

			eventID := uuid.New().String()
			d.waitlist.EXPECT().GetStatusCounts(mock.Anything, eventID).Return(nil, tt.err)

			w := d.do(http.MethodGet, "/api/events/"+eventID+"/counts", nil)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestHandler_Draw_EmptyBody(t *testing.T) {
	d := setupRouter(t)

	eventID := uuid.New().String()
	d.waitlist.EXPECT().Draw(mock.Anything, eventID, mock.Anything, 0).Return([]string{"a"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/draws", nil)
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
