package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixitnow/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	paymentGroup := api.Group("/payment")
	{
		paymentGroup.POST("", h.Create)
		paymentGroup.GET("/booking/:bookId", h.GetByBooking)
	}
}

// Create записывает оплату бронирования.
// @Summary		Record a payment
// @Description	Records a payment for a booking. A booking can carry at most one payment.
// @Tags		Payments
// @Param		bookId	query	int						true	"Booking ID"
// @Param		request	body	CreatePaymentRequest	true	"Payment payload (amount, method)"
// @Success		200	{object}	domain.Payment
// @Failure		404	{object}	map[string]interface{} "Unknown booking"
// @Failure		409	{object}	map[string]interface{} "Booking already paid"
// @Router		/payment [POST]
func (h *Handler) Create(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Query("bookId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid bookId")
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid input")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "Booking not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "Conflict", "Booking already has a payment")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to record payment")
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetByBooking возвращает оплату бронирования (или null).
func (h *Handler) GetByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid booking ID")
		return
	}

	p, err := h.svc.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch payment")
		return
	}

	c.JSON(http.StatusOK, p)
}
