package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"articraft/internal"
	"articraft/internal/catalog"
)

type stubProvider struct {
	cards     []internal.Card
	err       error
	lastQuery string
	lastLimit int
}

func (s *stubProvider) SearchCards(_ context.Context, partialName string, limit int) ([]internal.Card, error) {
	s.lastQuery = partialName
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.cards, nil
}

func newRouter(p catalog.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, p, 5)
	return r
}

func do(r *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHealth(t *testing.T) {
	w, body := do(newRouter(&stubProvider{}), "/api/health")
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("code=%d body=%v", w.Code, body)
	}
}

func TestSearch(t *testing.T) {
	p := &stubProvider{cards: []internal.Card{{Name: "Axe", Type: "hero", Color: "red", Rarity: internal.RarityRare}}}
	r := newRouter(p)

	w, body := do(r, "/api/cards/search?name=axe")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if p.lastQuery != "axe" || p.lastLimit != 5 {
		t.Fatalf("query=%q limit=%d", p.lastQuery, p.lastLimit)
	}
	if body["count"] != float64(1) {
		t.Fatalf("unexpected body: %v", body)
	}
	cards := body["cards"].([]any)
	card := cards[0].(map[string]any)
	if card["name"] != "Axe" {
		t.Fatalf("unexpected card: %v", card)
	}
	for _, k := range []string{"stats", "spell", "abilities", "illustrator"} {
		if _, ok := card[k]; !ok {
			t.Fatalf("key %q missing: %v", k, card)
		}
	}

	if w, _ := do(r, "/api/cards/search?name=axe&limit=2"); w.Code != http.StatusOK || p.lastLimit != 2 {
		t.Fatalf("code=%d limit=%d", w.Code, p.lastLimit)
	}
}

func TestSearchUnsetDefaultLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	p := &stubProvider{}
	RegisterRoutes(r, p, 0)

	if w, _ := do(r, "/api/cards/search?name=axe"); w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if p.lastLimit != catalog.DefaultLimit {
		t.Fatalf("limit=%d want %d", p.lastLimit, catalog.DefaultLimit)
	}
}

func TestSearchBadRequest(t *testing.T) {
	r := newRouter(&stubProvider{})
	for _, target := range []string{
		"/api/cards/search",
		"/api/cards/search?name=%20",
		"/api/cards/search?name=axe&limit=0",
		"/api/cards/search?name=axe&limit=many",
	} {
		if w, _ := do(r, target); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: code=%d", target, w.Code)
		}
	}
}

func TestSearchErrors(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		code  int
		field string
	}{
		{name: "transport", err: &catalog.TransportError{StatusCode: 503}, code: http.StatusBadGateway},
		{name: "field", err: &catalog.FieldMissingError{Path: "images.icon"}, code: http.StatusBadGateway, field: "images.icon"},
		{name: "other", err: errors.New("boom"), code: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := do(newRouter(&stubProvider{err: tc.err}), "/api/cards/search?name=axe")
			if w.Code != tc.code {
				t.Fatalf("code=%d want %d", w.Code, tc.code)
			}
			if tc.field != "" && body["field"] != tc.field {
				t.Fatalf("field=%v", body["field"])
			}
		})
	}
}
