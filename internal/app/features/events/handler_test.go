package events_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/ecotrack/internal/app/features/events"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"github.com/dalemusser/ecotrack/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*events.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := events.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	return handler, fixtures
}

func TestHandleCreate_StampsOrganizer(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	db := fixtures.DB()

	req := testutil.NewJSONRequest(t, "POST", "/api/events", map[string]any{
		"title":           "Beach Cleanup",
		"date":            time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"location":        "North Beach",
		"maxParticipants": 25,
	})
	req = testutil.WithPrincipal(req, "organizer@test.com")

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}

	var e models.Event
	if err := db.Collection("events").FindOne(ctx, bson.M{"title": "Beach Cleanup"}).Decode(&e); err != nil {
		t.Fatalf("event not persisted: %v", err)
	}
	if e.Organizer != "organizer@test.com" {
		t.Errorf("Organizer = %q, want the principal", e.Organizer)
	}
	if e.CurrentParticipants != 0 {
		t.Errorf("CurrentParticipants = %d, want 0", e.CurrentParticipants)
	}
}

func TestHandleJoin_FullEventIsBadRequest(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e := fixtures.CreateEvent(ctx, "Tiny Workshop", "organizer@test.com", 1, 0)

	join := func(email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/events/"+e.ID.Hex()+"/join", nil)
		req = testutil.WithPrincipal(req, email)
		req = testutil.WithChiURLParam(req, "id", e.ID.Hex())
		rec := httptest.NewRecorder()
		handler.HandleJoin(rec, req)
		return rec
	}

	if rec := join("first@test.com"); rec.Code != http.StatusOK {
		t.Fatalf("first join status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	rec := join("second@test.com")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("join past capacity status = %d, want 400", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Event is full" {
		t.Errorf("message = %q, want \"Event is full\"", resp.Message)
	}
}

func TestHandleUpdate_NonOrganizerForbidden(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e := fixtures.CreateEvent(ctx, "Guarded Event", "organizer@test.com", 10, 0)

	req := testutil.NewJSONRequest(t, "PATCH", "/api/events/"+e.ID.Hex(), map[string]any{"title": "hijack"})
	req = testutil.WithPrincipal(req, "intruder@test.com")
	req = testutil.WithChiURLParam(req, "id", e.ID.Hex())

	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestHandleUpdate_CapacityGuard(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e := fixtures.CreateEvent(ctx, "Busy Event", "organizer@test.com", 10, 6)

	req := testutil.NewJSONRequest(t, "PATCH", "/api/events/"+e.ID.Hex(), map[string]any{"maxParticipants": 3})
	req = testutil.WithPrincipal(req, "organizer@test.com")
	req = testutil.WithChiURLParam(req, "id", e.ID.Hex())

	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
	}
}

func TestServeList_Public(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateEvent(ctx, "Open Event", "organizer@test.com", 10, 0)

	// No principal on the request: listing is public.
	req := httptest.NewRequest("GET", "/api/events", nil)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out []models.Event
	testutil.DecodeJSON(t, rec, &out)
	if len(out) != 1 || out[0].Title != "Open Event" {
		t.Errorf("unexpected list: %+v", out)
	}
}
