package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
)

// Store keeps pending checkout records in process memory while the buyer is
// away on the hosted payment page. Records are keyed by the gateway
// transaction reference and consumed exactly once by Take; a sweeper removes
// records whose redirect was abandoned.
type Store struct {
	mu      sync.Mutex
	records map[string]*model.PendingCheckout
}

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[string]*model.PendingCheckout)}
}

// Put stores a record under its transaction reference.
func (s *Store) Put(_ context.Context, record *model.PendingCheckout) error {
	if record == nil || record.TxnRef == "" {
		return fmt.Errorf("pending checkout record must carry a transaction reference")
	}

	stored := *record
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.TxnRef] = &stored
	return nil
}

// Take removes and returns the record for the given reference. A second Take
// with the same reference returns ErrNotFound.
func (s *Store) Take(_ context.Context, txnRef string) (*model.PendingCheckout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[txnRef]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.records, txnRef)
	return record, nil
}

// Expire removes records created before the cutoff and returns how many were
// dropped.
func (s *Store) Expire(olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	for ref, record := range s.records {
		if record.CreatedAt.Before(olderThan) {
			delete(s.records, ref)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
