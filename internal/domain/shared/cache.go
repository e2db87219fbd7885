package shared

import "context"

// ListingInvalidator signals the presentation layer that cached rendered data
// for a listing path is stale and must be recomputed on next access.
// Invalidation is fire-and-forget: implementations log delivery failures and
// never surface them, and ordering relative to concurrent readers is not
// guaranteed.
type ListingInvalidator interface {
	Invalidate(ctx context.Context, path string)
}
