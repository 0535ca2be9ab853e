// internal/app/system/paging/paging.go

// Package paging implements keyset pagination for the JSON list endpoints.
//
// Lists return plain arrays (the historical contract), so the cursor is the
// last element's id: clients pass it back as ?after=<hex> and the store adds
// an _id window to the filter. ObjectIDs are monotonic per insertion order,
// which matches every list sort this API offers (creation-time and
// insertion-adjacent orders).
package paging

import (
	"net/http"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSize is the default number of rows in a list response.
const PageSize = 50

// MaxPageSize caps client-requested limits.
const MaxPageSize = 200

// Params holds the parsed pagination inputs for a list request.
type Params struct {
	Limit int
	After primitive.ObjectID
}

// HasCursor reports whether the request carried a valid ?after cursor.
func (p Params) HasCursor() bool { return !p.After.IsZero() }

// Parse reads ?limit and ?after. A malformed after cursor is reported via
// ok=false so the handler can answer 400 rather than silently restarting the
// list from the top.
func Parse(r *http.Request) (Params, bool) {
	p := Params{Limit: PageSize}

	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, false
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.Limit = n
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("after")); raw != "" {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return p, false
		}
		p.After = oid
	}

	return p, true
}

// Window returns the _id cursor condition for a list sorted in the given
// _id direction (1 ascending, -1 descending). Nil when there is no cursor.
func (p Params) Window(sortOrder int) bson.M {
	if !p.HasCursor() {
		return nil
	}
	op := "$gt"
	if sortOrder < 0 {
		op = "$lt"
	}
	return bson.M{"_id": bson.M{op: p.After}}
}
