package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixitnow/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	serviceGroup := api.Group("/services")
	{
		serviceGroup.GET("", h.ListServices)
		serviceGroup.GET("/:id", h.GetService)
		serviceGroup.GET("/provider/:id", h.ListByProvider)
	}

	api.GET("/categories", h.ListCategories)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/services", h.CreateService)
	protected.POST("/categories", h.CreateCategory)
}

// ListServices возвращает каталог услуг.
// @Summary		List services
// @Tags		Catalog
// @Param		limit	query	int	false	"Page size (default 50)"
// @Param		offset	query	int	false	"Offset"
// @Success		200	{array}	domain.Service
// @Router		/services [GET]
func (h *Handler) ListServices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	items, err := h.service.ListServices(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetService возвращает услугу по ID.
func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid service ID")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch service")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListByProvider возвращает услуги конкретного провайдера.
func (h *Handler) ListByProvider(c *gin.Context) {
	providerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || providerID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid provider ID")
		return
	}

	items, err := h.service.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateService публикует новую услугу текущего провайдера.
// @Summary		Create a service
// @Tags		Catalog
// @Security	BearerAuth
// @Param		request	body	CreateServiceRequest	true	"Service payload"
// @Success		200	{object}	domain.Service
// @Failure		403	{object}	map[string]interface{} "Caller is not a provider"
// @Router		/services [POST]
func (h *Handler) CreateService(c *gin.Context) {
	providerID := c.GetInt64("user_id")
	if providerID == 0 {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), providerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Forbidden", "Only providers can publish services")
		case errors.Is(err, ErrCategoryNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "Category not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to create service")
		}
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListCategories возвращает справочник категорий.
func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateCategory добавляет категорию в справочник.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCategoryExists) {
			response.Error(c, http.StatusConflict, "Conflict", "Category already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to create category")
		return
	}

	c.JSON(http.StatusOK, cat)
}
