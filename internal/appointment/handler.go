package appointment

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

// CreateAppointment godoc
// @Summary      Book an appointment
// @Description  Books a slot with a trainer. The end time is derived from the service duration.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAppointmentRequest true "Booking payload, date as YYYY-MM-DD, start_time as HH:MM"
// @Success      201 {object} AppointmentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /appointments [post]
func (h *Handler) CreateAppointment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	appt, err := h.service.CreateAppointment(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTimeConflict):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Time slot already booked"})
		case errors.Is(err, ErrOutsideAvailability):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Requested time is outside trainer availability"})
		case errors.Is(err, ErrServiceNotOffered):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Trainer does not offer this service"})
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTime):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date or time"})
		case errors.Is(err, member.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// GetAvailableSlots godoc
// @Summary      List offered slots for a trainer
// @Description  Walks the trainer's availability windows in service-duration steps and marks each slot full or free.
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        service_id query int true "Service ID"
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Success      200 {array} SlotResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/slots [get]
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing date"})
		return
	}

	slots, err := h.service.GetAvailableSlots(c.Request.Context(), trainerID, serviceID, dateStr)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date"})
		case errors.Is(err, ErrServiceNotOffered):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Trainer does not offer this service"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}

// ListMyAppointments godoc
// @Summary      List my appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} AppointmentResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /appointments [get]
func (h *Handler) ListMyAppointments(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	appointments, err := h.service.ListMyAppointments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ListByStatus godoc
// @Summary      List appointments by status
// @Description  Admin-only: list appointments filtered by status.
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Param        status query string true "Status" Enums(pending, approved, completed, cancelled, no_show)
// @Success      200 {array} AppointmentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/appointments [get]
func (h *Handler) ListByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", StatusPending)

	appointments, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// Approve godoc
// @Summary      Approve an appointment
// @Description  Admin-only: move a pending appointment to approved.
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Success      200 {object} AppointmentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/approve [patch]
func (h *Handler) Approve(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	appt, err := h.service.Approve(c.Request.Context(), appointmentID, adminID)
	if err != nil {
		h.respondStatusError(c, err, "Failed to approve appointment")
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Cancel godoc
// @Summary      Cancel an appointment
// @Description  Members cancel their own appointments; admins can cancel any. The reason is kept, truncated to 100 characters.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Param        request body CancelAppointmentRequest false "Optional cancellation reason"
// @Success      200 {object} AppointmentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /appointments/{appointmentID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	role, _ := auth.GetUserRole(c)
	isAdmin := role == "admin"

	appt, err := h.service.Cancel(c.Request.Context(), appointmentID, userID, isAdmin, req.Reason)
	if err != nil {
		if errors.Is(err, ErrNotOwner) {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Appointment belongs to another member"})
			return
		}
		h.respondStatusError(c, err, "Failed to cancel appointment")
		return
	}

	c.JSON(http.StatusOK, appt)
}

// Complete godoc
// @Summary      Mark an appointment completed
// @Description  Admin-only: move an approved appointment to completed.
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Success      200 {object} AppointmentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/complete [patch]
func (h *Handler) Complete(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	appt, err := h.service.Complete(c.Request.Context(), appointmentID)
	if err != nil {
		h.respondStatusError(c, err, "Failed to complete appointment")
		return
	}

	c.JSON(http.StatusOK, appt)
}

// MarkNoShow godoc
// @Summary      Mark an appointment as a no-show
// @Description  Admin-only.
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Success      200 {object} AppointmentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/no-show [patch]
func (h *Handler) MarkNoShow(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid appointment ID"})
		return
	}

	appt, err := h.service.MarkNoShow(c.Request.Context(), appointmentID)
	if err != nil {
		h.respondStatusError(c, err, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appt)
}

func (h *Handler) respondStatusError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Status change not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}
