package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service CatalogService
}

func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// CreateService godoc
// @Summary      Create a service
// @Description  Admin-only: create a bookable service. Duration must be 15-240 minutes.
// @Tags         admin,services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateServiceRequest true "Service payload"
// @Success      201 {object} Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// ListServices godoc
// @Summary      List active services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Service
// @Failure      500 {object} api.ErrorResponse
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService godoc
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Success      200 {object} Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /services/{serviceID} [get]
func (h *Handler) GetService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeactivateService godoc
// @Summary      Deactivate a service
// @Description  Admin-only: soft-deactivate a service.
// @Tags         admin,services
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) DeactivateService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	if err := h.service.DeactivateService(c.Request.Context(), serviceID); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deactivate service"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Service deactivated"})
}
