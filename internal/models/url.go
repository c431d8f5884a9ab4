package models

// URL represents a shortened URL and its associated metadata.
type URL struct {
	// ShortCode is the fixed-length code associated with the original URL.
	ShortCode string
	// OriginalURL is the original, full-length URL that the short code points to.
	OriginalURL string
	// VisitCount tracks the number of times the shortened URL has been resolved.
	VisitCount int64
	// CreatedAt is the Unix timestamp at which the record was created.
	CreatedAt int64
	// ExpiresAt is the Unix timestamp at which the code stops resolving.
	// A nil value means the code never expires.
	ExpiresAt *int64
}
