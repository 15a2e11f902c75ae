package reference

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advisor-backend/advisor/report"
	"advisor-backend/internal/shared/server/respond"
)

// Handler exposes the reference catalogs.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches reference routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ref := rg.Group("/reference")
	ref.GET("/methods", h.methods)
	ref.GET("/decision-nodes", h.decisionNodes)
	ref.GET("/outline", h.outline)
	ref.GET("/suggestions", h.suggestions)
}

func (h *Handler) methods(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"methods": h.Svc.MethodUtilities()})
}

func (h *Handler) decisionNodes(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"nodes": h.Svc.DecisionNodes()})
}

func (h *Handler) outline(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"outline": h.Svc.Outline()})
}

func (h *Handler) suggestions(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"suggestions": report.StudySuggestions()})
}
