package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateWindow godoc
// @Summary      Add an availability window
// @Description  Admin-only: add a recurring weekly window for a trainer.
// @Tags         admin,availability
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateWindowRequest true "Window payload, times as HH:MM"
// @Success      201 {object} WindowResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/availability [post]
func (h *Handler) CreateWindow(c *gin.Context) {
	var req CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	window, err := h.service.CreateWindow(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid time window"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create availability window"})
		return
	}

	c.JSON(http.StatusCreated, window)
}

// ListTrainerWindows godoc
// @Summary      List a trainer's availability windows
// @Tags         availability
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {array} WindowResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) ListTrainerWindows(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	windows, err := h.service.ListTrainerWindows(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// DeactivateWindow godoc
// @Summary      Deactivate an availability window
// @Description  Admin-only: keep the row but stop offering slots from it.
// @Tags         admin,availability
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        windowID path int true "Window ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID}/availability/{windowID} [patch]
func (h *Handler) DeactivateWindow(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}
	windowID, err := strconv.Atoi(c.Param("windowID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid window ID"})
		return
	}

	if err := h.service.DeactivateWindow(c.Request.Context(), windowID, trainerID); err != nil {
		if errors.Is(err, ErrWindowNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Availability window not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deactivate window"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Availability window deactivated"})
}

// DeleteWindow godoc
// @Summary      Delete an availability window
// @Description  Admin-only: remove the window entirely.
// @Tags         admin,availability
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        windowID path int true "Window ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID}/availability/{windowID} [delete]
func (h *Handler) DeleteWindow(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}
	windowID, err := strconv.Atoi(c.Param("windowID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid window ID"})
		return
	}

	if err := h.service.DeleteWindow(c.Request.Context(), windowID, trainerID); err != nil {
		if errors.Is(err, ErrWindowNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Availability window not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete window"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Availability window deleted"})
}
