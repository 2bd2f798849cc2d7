package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"articraft/internal/catalog"
)

type handlers struct {
	provider     catalog.Provider
	defaultLimit int
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// search proxies the upstream search and answers with normalized cards.
func (h *handlers) search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	limit := h.defaultLimit
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	cards, err := h.provider.SearchCards(c.Request.Context(), name, limit)
	if err != nil {
		var fieldErr *catalog.FieldMissingError
		var transportErr *catalog.TransportError
		switch {
		case errors.As(err, &fieldErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "field": fieldErr.Path})
		case errors.As(err, &transportErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(cards), "cards": cards})
}
