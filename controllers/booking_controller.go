package controllers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gocamp/config"
	"gocamp/dto"
	"gocamp/errors"
	"gocamp/models"
	"gocamp/repository"
	"gocamp/response"
	"gocamp/services"
	"gocamp/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
)

// BookingController xử lý các request liên quan đến booking
type BookingController struct {
	bookings     *services.BookingService
	availability *services.AvailabilityService
	sweep        *services.SweepService
	redis        *redis.Client
	ws           *melody.Melody
}

func NewBookingController(bookings *services.BookingService, availability *services.AvailabilityService, sweep *services.SweepService, redisCli *redis.Client, ws *melody.Melody) *BookingController {
	return &BookingController{
		bookings:     bookings,
		availability: availability,
		sweep:        sweep,
		redis:        redisCli,
		ws:           ws,
	}
}

// respondAppError map mã lỗi AppError sang HTTP response tương ứng
func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeNotFound:
		response.NotFound(c)
	case errors.ErrCodeDateOverlap, errors.ErrCodeAlreadyFinalized:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeForbidden, errors.ErrCodeSelfBooking:
		response.Forbidden(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken:
		response.Unauthorized(c)
	case errors.ErrCodeExternalService:
		response.BadGateway(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDateRange,
		errors.ErrCodePriceMismatch, errors.ErrCodeInvalidSignature:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

func convertToBookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:               booking.ID,
		CampsiteID:       booking.CampsiteID,
		RenterID:         booking.RenterID,
		FromDate:         booking.StartDate.Format(validator.BookingDateLayout),
		ToDate:           booking.EndDate.Format(validator.BookingDateLayout),
		Nights:           booking.Nights,
		TotalPrice:       booking.TotalPrice,
		Status:           booking.Status,
		CreatedAt:        booking.CreatedAt,
		CancellationDate: booking.CancellationDate,
	}
	if booking.PaymentIntentRef != nil {
		resp.PaymentIntentRef = *booking.PaymentIntentRef
	}
	return resp
}

// invalidateBookingCache xóa cache lịch sử booking sau mỗi lần ghi
func (ctl *BookingController) invalidateBookingCache(userID uint) {
	if ctl.redis == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, ctl.redis, "bookings:all")
	// Cache key lịch sử có kèm page/limit nên phải xóa theo pattern
	_ = services.DeleteKeysByPattern(config.Ctx, ctl.redis, fmt.Sprintf("bookings:user:%d:*", userID))
}

// broadcastBookingEvent đẩy event booking qua WebSocket cho client đang theo dõi
func (ctl *BookingController) broadcastBookingEvent(event string, bookingID uint) {
	if ctl.ws == nil {
		return
	}
	msg, err := json.Marshal(gin.H{"event": event, "bookingId": bookingID})
	if err != nil {
		return
	}
	if err := ctl.ws.Broadcast(msg); err != nil {
		log.Printf("Không broadcast được event %s: %v", event, err)
	}
}

// CreateBooking POST /api/v1/booking
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetUint("userID")

	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctl.bookings.Create(c.Request.Context(), &request, userID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	ctl.invalidateBookingCache(userID)
	ctl.broadcastBookingEvent("booking_created", booking.ID)

	// Gửi mail xác nhận best-effort, không chặn response
	if request.Email != "" {
		go func(b models.Booking, email string) {
			if err := services.SendBookingEmail(email, b.ID, b.TotalPrice, b.StartDate, b.EndDate); err != nil {
				log.Printf("Không gửi được email xác nhận cho booking %d: %v", b.ID, err)
			}
		}(*booking, request.Email)
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CancelBooking PUT /api/v1/bookingCancel
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	userID := c.GetUint("userID")

	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := ctl.bookings.Cancel(c.Request.Context(), request.ID, userID)
	if err != nil {
		respondAppError(c, err)
		return
	}

	ctl.invalidateBookingCache(userID)
	ctl.broadcastBookingEvent("booking_cancelled", request.ID)

	response.Success(c, result)
}

// CheckAvailability GET /api/v1/checkCampsite?campsiteId=&fromDate=&toDate=
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	campsiteID, err := strconv.ParseUint(c.Query("campsiteId"), 10, 64)
	if err != nil || campsiteID == 0 {
		response.BadRequest(c, "campsiteId không hợp lệ")
		return
	}

	start, err := validator.ParseBookingDate(c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "Sai định dạng fromDate")
		return
	}
	end, err := validator.ParseBookingDate(c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "Sai định dạng toDate")
		return
	}
	if !start.Before(end) {
		response.BadRequest(c, "toDate phải sau fromDate")
		return
	}

	available, err := ctl.availability.IsAvailable(c.Request.Context(), uint(campsiteID), start, end, 0)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AvailabilityResponse{Available: available})
}

// GetBookingDetail GET /api/v1/booking/:id
func (ctl *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctl.bookings.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookingHistory GET /api/v1/bookingHistory. Lịch sử booking của
// người gọi, cache theo user
func (ctl *BookingController) GetBookingHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	cacheKey := fmt.Sprintf("bookings:user:%d:p%d:l%d", userID, page, limit)

	var cached []dto.BookingResponse
	if ctl.redis != nil {
		if err := services.GetFromRedis(config.Ctx, ctl.redis, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithPagination(c, cached, page, limit, len(cached))
			return
		}
	}

	bookings, total, err := ctl.bookings.GetByRenter(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(&bookings[i]))
	}

	if ctl.redis != nil {
		if err := services.SetToRedis(config.Ctx, ctl.redis, cacheKey, bookingResponses, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu lịch sử booking vào Redis: %v", err)
		}
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

// RunStatusSweep POST /api/v1/statusSweep. Trigger sweep thủ công,
// cron job chạy cùng logic mỗi ngày
func (ctl *BookingController) RunStatusSweep(c *gin.Context) {
	count, err := ctl.sweep.Run(c.Request.Context(), time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.SweepResponse{TransitionedCount: count})
}
