package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	bookingdomain "github.com/tripveda/tripveda/internal/booking/domain"
)

func (s *Server) ReviewBooking(c *gin.Context) {
	var req bookingdomain.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.UserID = currentUser(c)
	c.Set("booking_type", string(req.BookingType))

	resp, err := s.bookingSvc.Review(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBookingReview(c *gin.Context) {
	bookingID := strings.TrimSpace(c.Query("booking_id"))
	if bookingID == "" {
		AbortWithError(c, newValidationError("booking_id", "required", "booking_id is required"))
		return
	}

	resp, err := s.bookingSvc.ReviewDraft(c.Request.Context(), currentUser(c), bookingID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ConfirmBooking(c *gin.Context) {
	var req bookingdomain.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.UserID = currentUser(c)
	req.BookingID = c.Param("id")

	resp, err := s.bookingSvc.Confirm(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBookings(c *gin.Context) {
	var req bookingdomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.UserID = currentUser(c)
	req.Status = strings.TrimSpace(req.Status)

	resp, err := s.bookingSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBooking(c *gin.Context) {
	resp, err := s.bookingSvc.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
