package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/cards", h.listCards)
		api.GET("/cards/:id", h.getCard)
		api.POST("/filter", h.filterCards)

		api.POST("/sessions", h.createSession)
		api.DELETE("/sessions/:id", h.dropSession)
		api.GET("/sessions/:id/deck", h.deckState)
		api.POST("/sessions/:id/deck/cards/:cardId", h.addCard)
		api.DELETE("/sessions/:id/deck/cards/:cardId", h.removeCard)
		api.PUT("/sessions/:id/deck/name", h.renameDeck)
		api.DELETE("/sessions/:id/deck", h.clearDeck)
		api.POST("/sessions/:id/deck/export", h.exportDeck)
		api.POST("/sessions/:id/deck/import", h.importDeck)
	}
}
