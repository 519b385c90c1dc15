package review

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
	reviewGroup := api.Group("/review")
	{
		reviewGroup.POST("", h.Create)
		reviewGroup.GET("/booking/:bookId", h.GetByBooking)
	}
}

// Create сохраняет отзыв о бронировании.
// @Summary		Create a review
// @Description	Attaches a review to a booking. A booking can carry at most one review.
// @Tags		Reviews
// @Param		bookId	query	int					true	"Booking ID"
// @Param		request	body	CreateReviewRequest	true	"Review payload (rating 1-5, comment)"
// @Success		200	{object}	domain.Review
// @Failure		404	{object}	map[string]interface{} "Unknown booking"
// @Failure		409	{object}	map[string]interface{} "Booking already reviewed"
// @Router		/review [POST]
func (h *Handler) Create(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Query("bookId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid bookId")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), bookingID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid input")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", "Booking not found")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "Conflict", "Booking already has a review")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to save review")
		}
		return
	}

	c.JSON(http.StatusOK, rv)
}

// GetByBooking возвращает отзыв бронирования (или null).
// @Summary		Get the review of a booking
// @Tags		Reviews
// @Param		bookId	path	int	true	"Booking ID"
// @Success		200	{object}	domain.Review "Review, or null when the booking has none"
// @Failure		404	{object}	map[string]interface{} "Unknown booking"
// @Router		/review/booking/{bookId} [GET]
func (h *Handler) GetByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid booking ID")
		return
	}

	rv, err := h.svc.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch review")
		return
	}

	// rv is nil when the booking has no review yet; serialize as null
	c.JSON(http.StatusOK, rv)
}
