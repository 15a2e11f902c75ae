package evaluations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/advisor/model"
	"advisor-backend/internal/shared/server/middleware"
	"advisor-backend/internal/shared/server/respond"
)

const defaultListLimit = 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service

	// MaxList caps the list page size. Zero means no cap beyond the
	// client-supplied limit.
	MaxList int
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.create)
	rg.GET("/evaluations", h.list)
	rg.GET("/evaluations/:id", h.get)
}

type createEvaluationRequest struct {
	TimeBudget     string `json:"timeBudget"`
	KnowledgeLevel string `json:"knowledgeLevel"`
	MonthlyBudget  *int   `json:"monthlyBudget"`
	Urgency        string `json:"urgency"`
	LearningStyle  string `json:"learningStyle"`
}

// validate checks structural completeness. Categorical values outside
// the documented sets are accepted on purpose: the engine resolves them
// through per-factor fallbacks instead of failing.
func (req createEvaluationRequest) validate() error {
	var missing []string
	if strings.TrimSpace(req.TimeBudget) == "" {
		missing = append(missing, "timeBudget")
	}
	if strings.TrimSpace(req.KnowledgeLevel) == "" {
		missing = append(missing, "knowledgeLevel")
	}
	if req.MonthlyBudget == nil {
		missing = append(missing, "monthlyBudget")
	}
	if strings.TrimSpace(req.Urgency) == "" {
		missing = append(missing, "urgency")
	}
	if strings.TrimSpace(req.LearningStyle) == "" {
		missing = append(missing, "learningStyle")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	if !model.BudgetInRange(*req.MonthlyBudget) {
		return fmt.Errorf("monthlyBudget must be between %d and %d", model.MinMonthlyBudget, model.MaxMonthlyBudget)
	}
	return nil
}

func (req createEvaluationRequest) profile() model.Profile {
	return model.Profile{
		TimeBudget:     model.TimeBudget(strings.TrimSpace(req.TimeBudget)),
		KnowledgeLevel: model.KnowledgeLevel(strings.TrimSpace(req.KnowledgeLevel)),
		MonthlyBudget:  *req.MonthlyBudget,
		Urgency:        model.Urgency(strings.TrimSpace(req.Urgency)),
		LearningStyle:  model.LearningStyle(strings.TrimSpace(req.LearningStyle)),
	}
}

func (h *Handler) create(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	var req createEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := req.validate(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	eval, err := h.Svc.Evaluate(c.Request.Context(), clientID, req.profile())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store evaluation", nil)
		}
		return
	}

	c.Set("evaluationId", eval.ID)
	respond.JSON(c, http.StatusCreated, toResponse(eval))
}

func (h *Handler) get(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "evaluation id is required", nil)
		return
	}

	eval, err := h.Svc.Get(c.Request.Context(), clientID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "evaluation not found", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch evaluation", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(eval))
}

func (h *Handler) list(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	limit := defaultListLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = val
	}
	if h.MaxList > 0 && limit > h.MaxList {
		limit = h.MaxList
	}

	evals, err := h.Svc.List(c.Request.Context(), clientID, limit)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list evaluations", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"evaluations": toResponses(evals)})
}
