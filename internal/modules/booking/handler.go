package booking

import (
	"errors"
	"net/http"

	"bookease/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/service-availability", h.CheckAvailability)
	rg.POST("", h.CreateBooking)
	rg.POST("/my-bookings", h.MyBookings)
	rg.PUT("/update-dates", h.UpdateDates)
	rg.PATCH("/cancel-booking", h.CancelBooking)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "serviceId, checkInDate and checkOutDate are required")
		return
	}

	res, err := h.service.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Service is available for the selected dates", res)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// userRef always comes from the verified session, never the body.
	userID := c.GetInt64("user_id")

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Booking created successfully", b)
}

func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "My Bookings retrieved successfully", bookings)
}

func (h *Handler) UpdateDates(c *gin.Context) {
	var req UpdateDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bookingId, checkInDate and checkOutDate are required")
		return
	}

	b, err := h.service.UpdateBookingDates(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Booking dates updated successfully", b)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "bookingId is required")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), req.BookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Booking cancelled successfully", b)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "Invalid booking date range")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "Service not found or not available")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "This service is already booked for the selected dates")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusBadRequest, "Booking is already cancelled")
	default:
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
