package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"bookease/internal/pkg/response"
	"bookease/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListServices)
	rg.GET("/:id", h.GetService)
}

// RegisterAdminRoutes mounts the catalog mutations. Caller wraps the group
// with the admin role gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreateService)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	response.Success(c, http.StatusOK, "Services retrieved successfully", services)
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "No Data Found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve service")
		return
	}
	response.Success(c, http.StatusOK, "Service retrieved successfully", svc)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation error", fieldErrors)
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, "Service created successfully", svc)
}
