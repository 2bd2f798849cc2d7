package catalog

import (
	"context"
	"time"

	"articraft/internal/storage"
)

const lastAddKey = "collection.last_add"

// CollectionService copies search results into the local collection.
type CollectionService struct {
	db       *storage.DB
	provider Provider
}

func NewCollectionService(db *storage.DB, provider Provider) *CollectionService {
	return &CollectionService{db: db, provider: provider}
}

func (s *CollectionService) AddFromSearch(ctx context.Context, partialName string, limit int) (int, error) {
	cards, err := s.provider.SearchCards(ctx, partialName, limit)
	if err != nil {
		return 0, err
	}
	if len(cards) > 0 {
		if err := s.db.UpsertCards(cards); err != nil {
			return 0, err
		}
	}
	_ = s.db.SetMetadata(lastAddKey, time.Now().UTC().Format(time.RFC3339))
	return len(cards), nil
}

// LastAdd reports when AddFromSearch last ran, or nil if it never did.
func (s *CollectionService) LastAdd() (*time.Time, error) {
	last, err := s.db.GetMetadata(lastAddKey)
	if err != nil || last == nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339, *last)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
