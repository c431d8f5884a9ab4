package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vadimbarashkov/shortly/internal/database"
	"github.com/vadimbarashkov/shortly/internal/models"
	"github.com/vadimbarashkov/shortly/internal/validation"
	"github.com/vadimbarashkov/shortly/pkg/base62"
	"github.com/vadimbarashkov/shortly/pkg/clock"
)

const secondsPerDay = 86400

var (
	// ErrInvalidURL is returned when the original URL fails syntactic validation.
	ErrInvalidURL = errors.New("invalid url format")
	// ErrInvalidCode is returned when a custom short code fails format validation.
	ErrInvalidCode = errors.New("invalid custom code")
	// ErrCodeInUse is returned when a custom short code is already assigned to a different URL.
	ErrCodeInUse = errors.New("custom code already in use")
	// ErrURLExpired is returned when a short code exists but its expiry has passed.
	ErrURLExpired = errors.New("url expired")
)

// URLStore defines the canonical store the service works against.
type URLStore interface {
	// Store inserts or overwrites the record for shortCode, resetting
	// the visit count and stamping the creation time.
	Store(shortCode, originalURL string, expiresAt *int64) *models.URL

	// GetURL returns the original URL bound to shortCode.
	GetURL(shortCode string) (string, bool)

	// GetCode returns the short code bound to originalURL.
	GetCode(originalURL string) (string, bool)

	// IncrementVisits bumps the visit counter for shortCode.
	IncrementVisits(shortCode string)

	// GetStats returns a metadata snapshot for shortCode.
	GetStats(shortCode string) (*models.URL, bool)

	// NextSequence returns a freshly incremented, monotonic counter value.
	NextSequence() uint64
}

// Cache defines the read-through accelerator in front of the store,
// mapping short codes to original URLs.
type Cache interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// URLService implements the URL shortening operations on top of a
// canonical store and an LRU cache. Every successful store write is
// mirrored into the cache (write-through) and cache misses on resolve
// fall back to the store and repopulate it (read-through).
//
// A single mutex guards the store, the cache and the sequence counter
// as one unit, so concurrent creates observe the idempotency check and
// the write as a consistent whole and the cache never diverges from
// the store.
type URLService struct {
	mu         sync.Mutex
	store      URLStore
	cache      Cache
	clock      clock.Clock
	alphabet   string
	codeLength int
}

// NewURLService creates a new URLService. Generated and custom codes
// are codeLength characters over the base62 alphabet.
func NewURLService(store URLStore, cache Cache, clk clock.Clock, codeLength int) *URLService {
	return &URLService{
		store:      store,
		cache:      cache,
		clock:      clk,
		alphabet:   base62.Alphabet,
		codeLength: codeLength,
	}
}

// CreateShortURL assigns a short code to originalURL and returns the
// stored record. Creation is idempotent per original URL: if the URL
// was shortened before, the existing record is returned and any
// customCode or expiryDays on the request is ignored. A non-empty
// customCode must match the code format and be unassigned; otherwise a
// code is generated from the store's sequence counter. A positive
// expiryDays makes the code stop resolving that many days from now.
func (s *URLService) CreateShortURL(ctx context.Context, originalURL, customCode string, expiryDays int) (*models.URL, error) {
	const op = "service.URLService.CreateShortURL"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !validation.ValidURL(originalURL) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidURL)
	}

	if code, ok := s.store.GetCode(originalURL); ok {
		url, _ := s.store.GetStats(code)
		return url, nil
	}

	var shortCode string

	if customCode != "" {
		if !validation.ValidCode(customCode, s.alphabet, s.codeLength) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCode)
		}
		if _, ok := s.store.GetURL(customCode); ok {
			return nil, fmt.Errorf("%s: %w", op, ErrCodeInUse)
		}

		shortCode = customCode
	} else {
		shortCode = s.generateCode()
	}

	var expiresAt *int64
	if expiryDays > 0 {
		exp := s.clock.Now() + int64(expiryDays)*secondsPerDay
		expiresAt = &exp
	}

	url := s.store.Store(shortCode, originalURL, expiresAt)
	s.cache.Put(shortCode, originalURL)

	return url, nil
}

// GetLongURL resolves shortCode to its original URL, counting the
// visit. Cached codes are served without re-checking expiry; on a
// cache miss the code is looked up in the store, rejected when expired
// and written back into the cache otherwise.
func (s *URLService) GetLongURL(ctx context.Context, shortCode string) (*models.URL, error) {
	const op = "service.URLService.GetLongURL"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache.Get(shortCode); ok {
		s.store.IncrementVisits(shortCode)

		// The store is authoritative over the cache, so the record exists.
		url, _ := s.store.GetStats(shortCode)
		return url, nil
	}

	url, ok := s.store.GetStats(shortCode)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, database.ErrURLNotFound)
	}

	if url.ExpiresAt != nil && s.clock.Now() >= *url.ExpiresAt {
		return nil, fmt.Errorf("%s: %w", op, ErrURLExpired)
	}

	s.store.IncrementVisits(shortCode)
	s.cache.Put(shortCode, url.OriginalURL)
	url.VisitCount++

	return url, nil
}

// GetURLStats returns the metadata snapshot for shortCode. Statistics
// stay visible after expiry.
func (s *URLService) GetURLStats(ctx context.Context, shortCode string) (*models.URL, error) {
	const op = "service.URLService.GetURLStats"

	s.mu.Lock()
	defer s.mu.Unlock()

	url, ok := s.store.GetStats(shortCode)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, database.ErrURLNotFound)
	}

	return url, nil
}

// generateCode draws sequence numbers until the base62-encoded,
// zero-padded code does not collide with an existing one. The sequence
// never repeats, so collisions are only possible against custom codes
// and the loop terminates in practice after at most a few draws.
func (s *URLService) generateCode() string {
	for {
		seq := s.store.NextSequence()
		code := base62.EncodePadded(seq, s.codeLength, s.alphabet)

		if _, ok := s.store.GetURL(code); !ok {
			return code
		}
	}
}
