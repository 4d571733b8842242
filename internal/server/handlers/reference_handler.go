package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/domain/models"
)

// CatalogReader is the slice of the catalog service the dashboard renders.
type CatalogReader interface {
	Materials(ctx context.Context, f models.ListFilters) ([]models.Material, error)
	Services(ctx context.Context, f models.ListFilters) ([]models.Service, error)
}

// ClientReader is the slice of the client service the dashboard renders.
type ClientReader interface {
	List(ctx context.Context, f models.ListFilters) ([]models.Client, error)
	Get(ctx context.Context, id string) (models.Client, error)
}

// ReferenceHandler serves the reference data the dashboard's pickers use:
// the material and service catalogs and the client book.
type ReferenceHandler struct {
	catalog CatalogReader
	clients ClientReader
	logger  *zap.Logger
}

// NewReferenceHandler constructs the HTTP handler adapter.
func NewReferenceHandler(catalog CatalogReader, clients ClientReader, logger *zap.Logger) *ReferenceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceHandler{catalog: catalog, clients: clients, logger: logger}
}

// ListMaterials renders the material catalog.
func (h *ReferenceHandler) ListMaterials(c *gin.Context) {
	materials, err := h.catalog.Materials(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.fail(c, "list materials", err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

// ListServices renders the service catalog.
func (h *ReferenceHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.Services(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.fail(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListClients renders the client book.
func (h *ReferenceHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.fail(c, "list clients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient renders one client.
func (h *ReferenceHandler) GetClient(c *gin.Context) {
	client, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ReferenceHandler) fail(c *gin.Context, op string, err error) {
	status, payload := mapError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("reference request failed", zap.String("op", op), zap.Error(err))
	}
	c.JSON(status, payload)
}
