package member

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/api"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateProfile godoc
// @Summary      Create member profile
// @Description  Creates the member profile for the authenticated user.
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Member profile data"
// @Success      201      {object}  Profile
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /members [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidDateOfBirth) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date of birth, use YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create member profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetMyProfile godoc
// @Summary      Get my member profile
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Profile
// @Failure      404  {object}  api.ErrorResponse
// @Router       /members/me [get]
func (h *Handler) GetMyProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch member profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile godoc
// @Summary      Update my member profile
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateMemberRequest  true  "Fields to update"
// @Success      200      {object}  Profile
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /members/me [patch]
func (h *Handler) UpdateMyProfile(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update member profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListMembers godoc
// @Summary      List members
// @Description  Admin-only: list active members.
// @Tags         admin,members
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Profile
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	profiles, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// DeactivateMember godoc
// @Summary      Deactivate member
// @Description  Admin-only: soft-deactivate a member.
// @Tags         admin,members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  api.MessageResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /admin/members/{memberID} [delete]
func (h *Handler) DeactivateMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid member ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to deactivate member"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deactivated"})
}
