// Package memory implements the canonical in-memory store of
// short-code to original-URL mappings. The store is the source of
// truth: it never evicts and records are never deleted.
package memory

import (
	"github.com/vadimbarashkov/shortly/internal/models"
	"github.com/vadimbarashkov/shortly/pkg/clock"
)

// URLStore keeps the code-to-record and url-to-code mappings as mutual
// inverses, along with the sequence counter used for code generation.
// It is not safe for concurrent use on its own; the service layer
// serializes access.
type URLStore struct {
	clock     clock.Clock
	codeToURL map[string]*models.URL
	urlToCode map[string]string
	sequence  uint64
}

func NewURLStore(clk clock.Clock) *URLStore {
	return &URLStore{
		clock:     clk,
		codeToURL: make(map[string]*models.URL),
		urlToCode: make(map[string]string),
	}
}

// Store inserts or overwrites the record for shortCode, stamping the
// creation time from the clock and resetting the visit count. The
// caller guarantees that shortCode and originalURL are not already
// bound to a different pair.
func (s *URLStore) Store(shortCode, originalURL string, expiresAt *int64) *models.URL {
	rec := &models.URL{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   s.clock.Now(),
		ExpiresAt:   expiresAt,
	}

	s.codeToURL[shortCode] = rec
	s.urlToCode[originalURL] = shortCode

	return snapshot(rec)
}

// GetURL returns the original URL bound to shortCode.
func (s *URLStore) GetURL(shortCode string) (string, bool) {
	rec, ok := s.codeToURL[shortCode]
	if !ok {
		return "", false
	}
	return rec.OriginalURL, true
}

// GetCode returns the short code bound to originalURL.
func (s *URLStore) GetCode(originalURL string) (string, bool) {
	code, ok := s.urlToCode[originalURL]
	return code, ok
}

// IncrementVisits bumps the visit counter for shortCode. Unknown codes
// are a no-op.
func (s *URLStore) IncrementVisits(shortCode string) {
	if rec, ok := s.codeToURL[shortCode]; ok {
		rec.VisitCount++
	}
}

// GetStats returns a snapshot of the record's metadata. Callers may
// mutate the returned value freely.
func (s *URLStore) GetStats(shortCode string) (*models.URL, bool) {
	rec, ok := s.codeToURL[shortCode]
	if !ok {
		return nil, false
	}
	return snapshot(rec), true
}

// NextSequence returns a freshly incremented counter value. The
// counter is monotonic for the store's lifetime and never rolls back,
// even when a generated code loses to a collision.
func (s *URLStore) NextSequence() uint64 {
	s.sequence++
	return s.sequence
}

func snapshot(rec *models.URL) *models.URL {
	cp := *rec
	return &cp
}
