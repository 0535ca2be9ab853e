// internal/app/features/tips/types.go
package tips

// createRequest is the accepted body for POST /api/tips. Author is stamped
// from the principal; upvotes always start at zero.
type createRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// updateRequest is the accepted body for PATCH /api/tips/{id}. Author and
// upvotes are not patchable; upvotes only move through the upvote endpoint.
type updateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}
