package api

import (
	"github.com/gin-gonic/gin"

	"articraft/internal/catalog"
)

func RegisterRoutes(r *gin.Engine, provider catalog.Provider, defaultLimit int) {
	if defaultLimit < 1 {
		defaultLimit = catalog.DefaultLimit
	}
	h := &handlers{provider: provider, defaultLimit: defaultLimit}
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/cards/search", h.search)
	}
}
