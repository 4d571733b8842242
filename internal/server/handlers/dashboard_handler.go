// Package handlers adapts the domain services to the read-only dashboard
// HTTP surface. Writes flow through the services directly; this layer only
// renders lists, details and summaries, plus the session endpoints.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/domain/models"
	"github.com/eletropro/app-core/internal/domain/validation"
	"github.com/eletropro/app-core/pkg/clients/eletropro"
)

// BudgetReader is the slice of the budget service the dashboard renders.
type BudgetReader interface {
	List(ctx context.Context, f models.ListFilters) ([]models.Budget, error)
	Get(ctx context.Context, id string) (models.Budget, error)
	Summary(b models.Budget) models.Summary
}

// MaterialListReader is the slice of the material list service the dashboard
// renders.
type MaterialListReader interface {
	List(ctx context.Context, f models.ListFilters) ([]models.MaterialList, error)
	Get(ctx context.Context, id string) (models.MaterialList, error)
	Summary(l models.MaterialList) models.Summary
}

// DashboardHandler serves budget and material list reads.
type DashboardHandler struct {
	budgets BudgetReader
	lists   MaterialListReader
	logger  *zap.Logger
	now     func() time.Time
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(budgets BudgetReader, lists MaterialListReader, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{budgets: budgets, lists: lists, logger: logger, now: time.Now}
}

// ListBudgets renders budgets matching the query filters. EXPIRED is derived
// at render time so the stored status never has to carry it.
func (h *DashboardHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.budgets.List(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.fail(c, "list budgets", err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// GetBudget renders one budget with its items and derived summary.
func (h *DashboardHandler) GetBudget(c *gin.Context) {
	b, err := h.budgets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get budget", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"budget":          b,
		"effectiveStatus": b.EffectiveStatus(h.now()),
		"summary":         h.budgets.Summary(b),
	})
}

// ListMaterialLists renders material lists matching the query filters.
func (h *DashboardHandler) ListMaterialLists(c *gin.Context) {
	lists, err := h.lists.List(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.fail(c, "list material lists", err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// GetMaterialList renders one material list with its derived summary.
func (h *DashboardHandler) GetMaterialList(c *gin.Context) {
	l, err := h.lists.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get material list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"materialList": l,
		"summary":      h.lists.Summary(l),
	})
}

func (h *DashboardHandler) fail(c *gin.Context, op string, err error) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("dashboard request failed", zap.String("op", op), zap.Error(err))
	}
	c.JSON(status, payload)
}

func filtersFromQuery(c *gin.Context) models.ListFilters {
	return models.ListFilters{
		ClientID: c.Query("clientId"),
		Status:   models.Status(c.Query("status")),
		Search:   c.Query("search"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
		BudgetID: c.Query("budgetId"),
		Category: c.Query("category"),
	}
}

// mapError translates the service error taxonomy to HTTP statuses.
func mapError(err error) (int, gin.H) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, gin.H{"error": "validation failed", "messages": verr.Messages}
	}
	if errors.Is(err, eletropro.ErrNotAuthenticated) || errors.Is(err, eletropro.ErrSessionExpired) {
		return http.StatusUnauthorized, gin.H{"error": err.Error()}
	}
	if errors.Is(err, eletropro.ErrNotFound) {
		return http.StatusNotFound, gin.H{"error": "not found"}
	}
	var re *eletropro.RemoteError
	if errors.As(err, &re) {
		return http.StatusBadGateway, gin.H{"error": re.Message}
	}
	return http.StatusInternalServerError, gin.H{"error": "internal error"}
}
