package challengestore_test

import (
	"errors"
	"testing"
	"time"

	challengestore "github.com/dalemusser/ecotrack/internal/app/store/challenges"
	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"github.com/dalemusser/ecotrack/internal/testutil"
)

func TestCreate_AppliesDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := challengestore.New(db)

	ch, err := store.Create(ctx, models.Challenge{
		Title:     "Zero Waste Week",
		Category:  "waste",
		Duration:  7,
		CreatedBy: "owner@test.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if ch.ID.IsZero() {
		t.Error("expected generated ID")
	}
	if ch.HowToParticipate == nil {
		t.Error("expected HowToParticipate to default to empty slice, got nil")
	}
	if ch.Participants != 0 {
		t.Errorf("expected 0 participants, got %d", ch.Participants)
	}
	if ch.CreatedAt.IsZero() || ch.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}

	wantEnds := ch.CreatedAt.Add(7 * 24 * time.Hour)
	if !ch.EndsAt.Equal(wantEnds) {
		t.Errorf("EndsAt = %v, want %v", ch.EndsAt, wantEnds)
	}

	got, err := store.GetByID(ctx, ch.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Zero Waste Week" || got.CreatedBy != "owner@test.com" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := challengestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ch := fx.CreateChallenge(ctx, "Existing", "owner@test.com")

	if _, err := store.GetByID(ctx, ch.ID); err != nil {
		t.Fatalf("expected hit, got %v", err)
	}

	other := fx.CreateChallenge(ctx, "Other", "owner@test.com")
	if err := store.Delete(ctx, other.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, other.ID); !errors.Is(err, challengestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := challengestore.New(db)

	mk := func(title, category string, duration int) models.Challenge {
		ch, err := store.Create(ctx, models.Challenge{
			Title:       title,
			Category:    category,
			Description: "save the planet",
			Duration:    duration,
			CreatedBy:   "owner@test.com",
		})
		if err != nil {
			t.Fatalf("Create %q failed: %v", title, err)
		}
		return ch
	}

	mk("Plastic Free July", "waste", 31)
	mk("Bike To Work", "transport", 14)
	mk("Meatless Mondays", "food", 60)

	page := paging.Params{Limit: paging.PageSize}

	t.Run("category", func(t *testing.T) {
		out, err := store.List(ctx, challengestore.ListFilter{Category: "waste"}, page)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out) != 1 || out[0].Title != "Plastic Free July" {
			t.Errorf("expected only the waste challenge, got %d rows", len(out))
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		out, err := store.List(ctx, challengestore.ListFilter{Search: "bike"}, page)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out) != 1 || out[0].Title != "Bike To Work" {
			t.Errorf("expected bike challenge, got %d rows", len(out))
		}
	})

	t.Run("search matches description", func(t *testing.T) {
		out, err := store.List(ctx, challengestore.ListFilter{Search: "PLANET"}, page)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out) != 3 {
			t.Errorf("expected all 3, got %d", len(out))
		}
	})

	t.Run("active excludes nothing yet", func(t *testing.T) {
		out, err := store.List(ctx, challengestore.ListFilter{Status: "active"}, page)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out) != 3 {
			t.Errorf("expected 3 active, got %d", len(out))
		}
	})

	t.Run("past is empty", func(t *testing.T) {
		out, err := store.List(ctx, challengestore.ListFilter{Status: "past"}, page)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("expected no past challenges, got %d", len(out))
		}
	})

	t.Run("newest first", func(t *testing.T) {
		out, err := store.List(ctx, challengestore.ListFilter{}, page)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(out) != 3 || out[0].Title != "Meatless Mondays" {
			t.Errorf("expected newest first, got %+v", titles(out))
		}
	})
}

func titles(chs []models.Challenge) []string {
	out := make([]string, len(chs))
	for i, ch := range chs {
		out[i] = ch.Title
	}
	return out
}

func TestUpdate_PartialMerge(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := challengestore.New(db)

	ch, err := store.Create(ctx, models.Challenge{
		Title:     "Original",
		Category:  "waste",
		Duration:  10,
		CreatedBy: "owner@test.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Renamed"
	newDuration := 20
	err = store.Update(ctx, ch.ID, challengestore.UpdateFields{
		Title:    &newTitle,
		Duration: &newDuration,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, ch.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", got.Title)
	}
	if got.Category != "waste" {
		t.Errorf("untouched Category changed to %q", got.Category)
	}
	if got.CreatedBy != "owner@test.com" {
		t.Errorf("CreatedBy changed to %q", got.CreatedBy)
	}

	// Duration change recomputes ends_at from the original created_at.
	wantEnds := got.CreatedAt.Add(20 * 24 * time.Hour)
	if !got.EndsAt.Equal(wantEnds) {
		t.Errorf("EndsAt = %v, want %v", got.EndsAt, wantEnds)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := challengestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ch := fx.CreateChallenge(ctx, "Victim", "owner@test.com")
	if err := store.Delete(ctx, ch.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	title := "nope"
	err := store.Update(ctx, ch.ID, challengestore.UpdateFields{Title: &title})
	if !errors.Is(err, challengestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, ch.ID); !errors.Is(err, challengestore.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
