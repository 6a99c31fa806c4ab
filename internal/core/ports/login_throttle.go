package ports

import "context"

// LoginThrottle rate-limits credential attempts per account. Implementations
// must fail open: an unavailable backend should never lock users out.
type LoginThrottle interface {
	// Allow reports whether another login attempt for email is permitted.
	Allow(ctx context.Context, email string) bool
	// RecordFailure counts a failed attempt against email.
	RecordFailure(ctx context.Context, email string)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, email string)
}
