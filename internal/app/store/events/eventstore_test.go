package eventstore_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	eventstore "github.com/dalemusser/ecotrack/internal/app/store/events"
	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"github.com/dalemusser/ecotrack/internal/testutil"
)

func TestCreate_ForcesCounterToZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)

	e, err := store.Create(ctx, models.Event{
		Title:               "River Cleanup",
		Date:                time.Now().Add(24 * time.Hour),
		Organizer:           "org@test.com",
		MaxParticipants:     10,
		CurrentParticipants: 99, // must be ignored
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if e.CurrentParticipants != 0 {
		t.Errorf("CurrentParticipants = %d, want 0", e.CurrentParticipants)
	}
}

func TestJoin_CapacityBound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)
	fx := testutil.NewFixtures(t, db)
	e := fx.CreateEvent(ctx, "Tree Planting", "org@test.com", 2, 0)

	if err := store.Join(ctx, e.ID); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if err := store.Join(ctx, e.ID); err != nil {
		t.Fatalf("second join failed: %v", err)
	}
	if err := store.Join(ctx, e.ID); !errors.Is(err, eventstore.ErrFull) {
		t.Fatalf("third join: expected ErrFull, got %v", err)
	}

	got, err := store.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CurrentParticipants != 2 {
		t.Errorf("counter = %d, want 2", got.CurrentParticipants)
	}
}

func TestJoin_ConcurrentNeverOverfills(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)
	fx := testutil.NewFixtures(t, db)
	e := fx.CreateEvent(ctx, "Popular Event", "org@test.com", 5, 0)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Join(ctx, e.ID)
		}()
	}
	wg.Wait()
	close(results)

	var wins, fulls int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, eventstore.ErrFull):
			fulls++
		default:
			t.Fatalf("unexpected join error: %v", err)
		}
	}
	if wins != 5 || fulls != attempts-5 {
		t.Errorf("wins = %d fulls = %d, want 5/%d", wins, fulls, attempts-5)
	}

	got, err := store.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CurrentParticipants != 5 {
		t.Errorf("counter = %d, want 5", got.CurrentParticipants)
	}
}

func TestJoin_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)
	fx := testutil.NewFixtures(t, db)
	e := fx.CreateEvent(ctx, "Ghost", "org@test.com", 5, 0)
	if err := store.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := store.Join(ctx, e.ID); !errors.Is(err, eventstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_RejectsCapacityBelowCurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)
	fx := testutil.NewFixtures(t, db)
	e := fx.CreateEvent(ctx, "Busy Event", "org@test.com", 10, 7)

	lower := 5
	err := store.Update(ctx, e.ID, eventstore.UpdateFields{MaxParticipants: &lower})
	if !errors.Is(err, eventstore.ErrCapacityBelowCurrent) {
		t.Fatalf("expected ErrCapacityBelowCurrent, got %v", err)
	}

	ok := 7
	if err := store.Update(ctx, e.ID, eventstore.UpdateFields{MaxParticipants: &ok}); err != nil {
		t.Fatalf("lowering to current should succeed, got %v", err)
	}

	got, err := store.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.MaxParticipants != 7 {
		t.Errorf("MaxParticipants = %d, want 7", got.MaxParticipants)
	}
}

func TestList_UpcomingPastPartition(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := eventstore.New(db)

	mk := func(title string, date time.Time) {
		if _, err := store.Create(ctx, models.Event{
			Title:     title,
			Date:      date,
			Organizer: "org@test.com",
		}); err != nil {
			t.Fatalf("Create %q failed: %v", title, err)
		}
	}
	mk("Yesterday", time.Now().Add(-24*time.Hour))
	mk("Tomorrow", time.Now().Add(24*time.Hour))
	mk("Next Week", time.Now().Add(7*24*time.Hour))

	page := paging.Params{Limit: paging.PageSize}

	up, err := store.List(ctx, eventstore.ListFilter{Upcoming: true}, page)
	if err != nil {
		t.Fatalf("List upcoming failed: %v", err)
	}
	if len(up) != 2 || up[0].Title != "Tomorrow" {
		t.Errorf("upcoming: expected [Tomorrow, Next Week] soonest-first, got %d rows", len(up))
	}

	past, err := store.List(ctx, eventstore.ListFilter{Past: true}, page)
	if err != nil {
		t.Fatalf("List past failed: %v", err)
	}
	if len(past) != 1 || past[0].Title != "Yesterday" {
		t.Errorf("past: expected only Yesterday, got %d rows", len(past))
	}
}
