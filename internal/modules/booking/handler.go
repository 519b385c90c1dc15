package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixitnow/internal/domain"
	"fixitnow/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	bookingGroup := api.Group("/booking")
	{
		bookingGroup.POST("", h.Create)
		bookingGroup.GET("/customer/:customerId", h.ListByCustomer)
		bookingGroup.PATCH("/:id/status", h.UpdateStatus)
	}
}

// Create бронирует услугу для клиента.
// @Summary		Create a booking
// @Description	Books a service for a customer. The booking starts as PENDING with booking_date set to today.
// @Tags		Bookings
// @Param		customerId	query	int	true	"Customer ID"
// @Param		serviceId	query	int	true	"Service ID"
// @Success		200	{object}	domain.Booking
// @Failure		400	{object}	map[string]interface{} "Missing or malformed query params"
// @Failure		404	{object}	map[string]interface{} "Unknown customer or service"
// @Router		/booking [POST]
func (h *Handler) Create(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid customerId")
		return
	}

	serviceID, err := strconv.ParseInt(c.Query("serviceId"), 10, 64)
	if err != nil || serviceID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid serviceId")
		return
	}

	b, err := h.service.Create(c.Request.Context(), customerID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "Customer not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListByCustomer возвращает все бронирования клиента.
// @Summary		List bookings by customer
// @Tags		Bookings
// @Param		customerId	path	int	true	"Customer ID"
// @Success		200	{array}		domain.Booking
// @Failure		404	{object}	map[string]interface{} "Unknown customer"
// @Router		/booking/customer/{customerId} [GET]
func (h *Handler) ListByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid customer ID")
		return
	}

	items, err := h.service.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "Customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateStatus переводит бронирование по жизненному циклу.
// @Summary		Update booking status
// @Description	Legal transitions: PENDING→CONFIRMED, CONFIRMED→COMPLETED.
// @Tags		Bookings
// @Param		id		path	int					true	"Booking ID"
// @Param		request	body	UpdateStatusRequest	true	"New status"
// @Success		200	{object}	domain.Booking
// @Failure		404	{object}	map[string]interface{} "Unknown booking"
// @Failure		409	{object}	map[string]interface{} "Illegal transition"
// @Router		/booking/{id}/status [PATCH]
func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "Booking not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "Conflict", "Illegal status transition")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
