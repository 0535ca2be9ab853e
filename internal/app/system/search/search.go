// internal/app/system/search/search.go

// Package search builds the Mongo filters behind the list endpoints' search
// and category parameters.
package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Regex returns a case-insensitive substring matcher for raw user input.
// Metacharacters are escaped so the term is always a literal, never a pattern
// the caller smuggles in.
func Regex(term string) primitive.Regex {
	return primitive.Regex{
		Pattern: regexp.QuoteMeta(strings.TrimSpace(term)),
		Options: "i",
	}
}

// AnyField returns an $or clause matching term as a case-insensitive
// substring of any of the given fields. Returns nil when the term is blank so
// callers can skip the clause entirely.
func AnyField(term string, fields ...string) bson.M {
	if strings.TrimSpace(term) == "" || len(fields) == 0 {
		return nil
	}
	re := Regex(term)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}

// Merge copies clause into filter. A nil clause is a no-op; an $or clause is
// combined with any existing $and/$or via $and so two clauses never clobber
// each other.
func Merge(filter, clause bson.M) bson.M {
	if filter == nil {
		filter = bson.M{}
	}
	if len(clause) == 0 {
		return filter
	}
	for k, v := range clause {
		if existing, dup := filter[k]; dup {
			filter["$and"] = append(asSlice(filter["$and"]), bson.M{k: existing}, bson.M{k: v})
			delete(filter, k)
			continue
		}
		filter[k] = v
	}
	return filter
}

func asSlice(v any) []bson.M {
	s, _ := v.([]bson.M)
	return s
}
