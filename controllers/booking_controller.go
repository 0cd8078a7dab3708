package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/test-kooza/rental-management-system-sub001/config"
	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/dto"
	"github.com/test-kooza/rental-management-system-sub001/errors"
	"github.com/test-kooza/rental-management-system-sub001/middleware"
	"github.com/test-kooza/rental-management-system-sub001/models"
	"github.com/test-kooza/rental-management-system-sub001/response"
	"github.com/test-kooza/rental-management-system-sub001/services"
	"github.com/test-kooza/rental-management-system-sub001/validator"
)

type BookingController struct {
	db           *gorm.DB
	rdb          *redis.Client
	reservations *services.ReservationService
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, reservations *services.ReservationService) *BookingController {
	return &BookingController{db: db, rdb: rdb, reservations: reservations}
}

func convertToBookingResponse(booking *models.Booking) dto.BookingResponse {
	guest := dto.BookingGuestResponse{}
	if booking.Guest != nil {
		guest = dto.BookingGuestResponse{
			ID:          booking.Guest.ID,
			Name:        booking.Guest.Name,
			Email:       booking.Guest.Email,
			PhoneNumber: booking.Guest.PhoneNumber,
		}
	}

	return dto.BookingResponse{
		ID:            booking.ID,
		BookingNumber: booking.BookingNumber,
		Guest:         guest,
		Property: dto.BookingPropertyResponse{
			ID:      booking.Property.ID,
			Name:    booking.Property.Name,
			Address: booking.Property.Address,
			City:    booking.Property.City,
			Avatar:  booking.Property.Avatar,
		},
		CheckInDate:      booking.CheckInDate.Format(constants.DateLayout),
		CheckOutDate:     booking.CheckOutDate.Format(constants.DateLayout),
		Nights:           booking.Nights(),
		Adults:           booking.Adults,
		Children:         booking.Children,
		Infants:          booking.Infants,
		TotalAmount:      services.FormatAmount(booking.TotalAmount, booking.Currency),
		Currency:         booking.Currency,
		Status:           booking.Status,
		PaymentReference: booking.PaymentReference,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}

// respondWorkflowError maps reservation errors onto the envelope. Validation
// and availability problems are user-visible; the rest stay generic.
func respondWorkflowError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeAvailabilityConflict:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeInvalidDateRange,
		errors.ErrCodeInvalidGuests, errors.ErrCodeInvalidFormat,
		errors.ErrCodeRequiredField, errors.ErrCodeInvalidTransition:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeBookingNotFound, errors.ErrCodeDBNotFound:
		response.NotFound(c)
	default:
		response.ServerError(c)
	}
}

// GetQuote prices a stay without creating a booking.
func (bc *BookingController) GetQuote(c *gin.Context) {
	var request dto.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checkIn, err := validator.ParseDate(request.CheckInDate)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	checkOut, err := validator.ParseDate(request.CheckOutDate)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	var property models.Property
	if err := bc.db.First(&property, request.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	quote, err := services.ComputeQuote(property.BasePrice, property.DiscountPercentage, checkIn, checkOut)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	response.Success(c, dto.QuoteResponse{
		TotalNights:   quote.TotalNights,
		PricePerNight: services.FormatAmount(quote.PricePerNight, property.Currency),
		TotalPrice:    services.FormatAmount(quote.TotalPrice, property.Currency),
		Currency:      property.Currency,
	})
}

// CreateBooking opens a PENDING booking for the authenticated guest.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	checkIn, checkOut, err := validator.ValidateBookingRequest(&request, time.Now())
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	booking, err := bc.reservations.CreatePendingBooking(services.CreateBookingInput{
		GuestID:      currentUserID,
		PropertyID:   request.PropertyID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       request.Adults,
		Children:     request.Children,
		Infants:      request.Infants,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	if err := bc.db.Preload("Property").Preload("Guest").First(booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	bc.invalidateCaches(currentUserID)

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookings lists the authenticated user's bookings, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page := 0
	limit := 10
	if parsedPage, err := strconv.Atoi(c.Query("page")); err == nil && parsedPage >= 0 {
		page = parsedPage
	}
	if parsedLimit, err := strconv.Atoi(c.Query("limit")); err == nil && parsedLimit > 0 {
		limit = parsedLimit
	}

	cacheKey := fmt.Sprintf("bookings:user:%d", currentUserID)

	var allBookings []models.Booking
	if bc.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, bc.rdb, cacheKey, &allBookings); err != nil {
			allBookings = nil
		}
	}

	if len(allBookings) == 0 {
		if err := bc.db.Preload("Property").Preload("Guest").
			Where("guest_id = ?", currentUserID).
			Order("created_at DESC").
			Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if bc.rdb != nil && len(allBookings) > 0 {
			// best effort; the DB result still serves the request
			_ = services.SetToRedis(config.Ctx, bc.rdb, cacheKey, allBookings, 10*time.Minute)
		}
	}

	statusFilter := c.Query("status")
	filtered := make([]models.Booking, 0, len(allBookings))
	for _, booking := range allBookings {
		if statusFilter != "" {
			if parsed, err := strconv.Atoi(statusFilter); err == nil && booking.Status != parsed {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for i := range filtered {
		bookingResponses = append(bookingResponses, convertToBookingResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// GetBookingDetail returns one booking, visible to its guest, the property
// host and admins only.
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	currentRole := c.GetInt("userRole")

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	booking, err := bc.reservations.GetByID(uint(bookingID))
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	if booking.GuestID != currentUserID && booking.Property.HostID != currentUserID && currentRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CancelBooking cancels a PENDING or CONFIRMED booking on behalf of its
// guest, the property host or an admin.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	currentUserID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	currentRole := c.GetInt("userRole")

	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := bc.reservations.GetByID(request.ID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	if booking.GuestID != currentUserID && booking.Property.HostID != currentUserID && currentRole != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	cancelled, err := bc.reservations.CancelBooking(request.ID, currentUserID)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	bc.invalidateCaches(booking.GuestID)

	response.Success(c, convertToBookingResponse(cancelled))
}

func (bc *BookingController) invalidateCaches(guestID uint) {
	if bc.rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, bc.rdb, fmt.Sprintf("bookings:user:%d", guestID))
	_ = services.DeleteFromRedis(config.Ctx, bc.rdb, "properties:all")
}

// Healthz is the liveness probe.
func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
