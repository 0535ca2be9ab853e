package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse_Defaults(t *testing.T) {
	p, ok := paging.Parse(httptest.NewRequest("GET", "/api/tips", nil))
	if !ok {
		t.Fatal("expected ok for request without paging params")
	}
	if p.Limit != paging.PageSize {
		t.Errorf("limit: got %d, want %d", p.Limit, paging.PageSize)
	}
	if p.HasCursor() {
		t.Error("expected no cursor")
	}
}

func TestParse_Limit(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
		ok    bool
	}{
		{"explicit limit", "?limit=10", 10, true},
		{"capped at max", "?limit=9999", paging.MaxPageSize, true},
		{"zero is invalid", "?limit=0", 0, false},
		{"negative is invalid", "?limit=-5", 0, false},
		{"garbage is invalid", "?limit=ten", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := paging.Parse(httptest.NewRequest("GET", "/api/tips"+tt.query, nil))
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && p.Limit != tt.want {
				t.Errorf("limit: got %d, want %d", p.Limit, tt.want)
			}
		})
	}
}

func TestParse_AfterCursor(t *testing.T) {
	oid := primitive.NewObjectID()

	p, ok := paging.Parse(httptest.NewRequest("GET", "/api/tips?after="+oid.Hex(), nil))
	if !ok {
		t.Fatal("expected ok for valid cursor")
	}
	if p.After != oid {
		t.Errorf("after: got %s, want %s", p.After.Hex(), oid.Hex())
	}

	if _, ok := paging.Parse(httptest.NewRequest("GET", "/api/tips?after=nothex", nil)); ok {
		t.Error("malformed cursor must be rejected")
	}
}

func TestWindow(t *testing.T) {
	oid := primitive.NewObjectID()
	p := paging.Params{Limit: 10, After: oid}

	desc := p.Window(-1)
	if got := desc["_id"].(bson.M)["$lt"]; got != oid {
		t.Errorf("descending window: got %v, want $lt %s", desc, oid.Hex())
	}

	asc := p.Window(1)
	if got := asc["_id"].(bson.M)["$gt"]; got != oid {
		t.Errorf("ascending window: got %v, want $gt %s", asc, oid.Hex())
	}

	if (paging.Params{Limit: 10}).Window(1) != nil {
		t.Error("no cursor should produce no window")
	}
}
