package workout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/api"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/auth"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GeneratePlan godoc
// @Summary      Generate a workout plan
// @Description  Builds a one-week plan from the member's profile and stated goal.
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GeneratePlanRequest true "Plan goal"
// @Success      201 {object} WorkoutPlan
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      502 {object} api.ErrorResponse
// @Router       /workout-plans [post]
func (h *Handler) GeneratePlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := h.service.GeneratePlan(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to generate workout plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListMyPlans godoc
// @Summary      List my workout plans
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} WorkoutPlan
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /workout-plans [get]
func (h *Handler) ListMyPlans(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	plans, err := h.service.ListMyPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch workout plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// DeletePlan godoc
// @Summary      Delete one of my workout plans
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        planID path int true "Plan ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /workout-plans/{planID} [delete]
func (h *Handler) DeletePlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	planID, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	if err := h.service.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Workout plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete workout plan"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Workout plan deleted"})
}
