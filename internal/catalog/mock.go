package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"articraft/internal"
)

//go:embed fixtures/mock_cards.json
var mockCardData []byte

// MockProvider serves a fixed, already normalized response for offline
// use. The query is ignored.
type MockProvider struct{}

func (MockProvider) SearchCards(_ context.Context, _ string, limit int) ([]internal.Card, error) {
	var cards []internal.Card
	if err := json.Unmarshal(mockCardData, &cards); err != nil {
		return nil, fmt.Errorf("decode mock cards: %w", err)
	}
	return cards[:max(min(len(cards), limit), 0)], nil
}
