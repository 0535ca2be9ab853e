package tipstore_test

import (
	"errors"
	"testing"

	tipstore "github.com/dalemusser/ecotrack/internal/app/store/tips"
	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"github.com/dalemusser/ecotrack/internal/testutil"
)

func TestCreate_ForcesUpvotesToZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tipstore.New(db)

	tip, err := store.Create(ctx, models.Tip{
		Title:   "Cold Washes",
		Content: "Wash clothes cold",
		Author:  "a@test.com",
		Upvotes: 42, // must be ignored
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tip.Upvotes != 0 {
		t.Errorf("Upvotes = %d, want 0", tip.Upvotes)
	}
}

func TestUpvote_Increments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tipstore.New(db)
	fx := testutil.NewFixtures(t, db)
	tip := fx.CreateTip(ctx, "Compost", "a@test.com", 0)

	for i := 0; i < 3; i++ {
		if err := store.Upvote(ctx, tip.ID); err != nil {
			t.Fatalf("Upvote %d failed: %v", i, err)
		}
	}

	got, err := store.GetByID(ctx, tip.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Upvotes != 3 {
		t.Errorf("Upvotes = %d, want 3", got.Upvotes)
	}
}

func TestUpvote_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tipstore.New(db)
	fx := testutil.NewFixtures(t, db)
	tip := fx.CreateTip(ctx, "Gone", "a@test.com", 0)
	if err := store.Delete(ctx, tip.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := store.Upvote(ctx, tip.ID); !errors.Is(err, tipstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_SortedByUpvotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tipstore.New(db)
	fx := testutil.NewFixtures(t, db)
	fx.CreateTip(ctx, "Low", "a@test.com", 1)
	fx.CreateTip(ctx, "High", "a@test.com", 10)
	fx.CreateTip(ctx, "Mid", "a@test.com", 5)

	out, err := store.List(ctx, tipstore.ListFilter{}, paging.Params{Limit: paging.PageSize})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 tips, got %d", len(out))
	}
	if out[0].Title != "High" || out[1].Title != "Mid" || out[2].Title != "Low" {
		t.Errorf("wrong order: %s, %s, %s", out[0].Title, out[1].Title, out[2].Title)
	}
}

func TestUpdate_NeverTouchesAuthorOrUpvotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := tipstore.New(db)
	fx := testutil.NewFixtures(t, db)
	tip := fx.CreateTip(ctx, "Original", "a@test.com", 4)

	newTitle := "Renamed"
	if err := store.Update(ctx, tip.ID, tipstore.UpdateFields{Title: &newTitle}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, tip.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", got.Title)
	}
	if got.Author != "a@test.com" {
		t.Errorf("Author changed to %q", got.Author)
	}
	if got.Upvotes != 4 {
		t.Errorf("Upvotes changed to %d", got.Upvotes)
	}
}
