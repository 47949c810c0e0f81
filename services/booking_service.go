package services

import (
	"context"
	"errors"
	"math"
	"time"

	"gocamp/builders"
	"gocamp/constants"
	"gocamp/dto"
	errs "gocamp/errors"
	"gocamp/models"
	"gocamp/repository"
	"gocamp/services/logger"
	"gocamp/utils"
	"gocamp/validator"
)

// Sai lệch cho phép giữa giá client gửi lên và giá server tính
const priceTolerance = 0.01

// BookingService xử lý tạo và hủy booking
type BookingService struct {
	bookings  repository.BookingRepo
	payments  repository.PaymentRepo
	campsites repository.CampsiteRepo
	gateway   PaymentGateway
	logger    logger.Logger
}

// BookingServiceOptions tham số khởi tạo BookingService
type BookingServiceOptions struct {
	Bookings  repository.BookingRepo
	Payments  repository.PaymentRepo
	Campsites repository.CampsiteRepo
	Gateway   PaymentGateway
	Logger    logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		bookings:  opts.Bookings,
		payments:  opts.Payments,
		campsites: opts.Campsites,
		gateway:   opts.Gateway,
		logger:    opts.Logger,
	}
}

// Create validate request, tính giá server-side rồi insert booking bên trong
// critical section theo campsite. Giá client gửi lên lệch quá tolerance
// bị từ chối thay vì được tin.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, renterID uint) (*models.Booking, error) {
	start, end, err := validator.ParseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	campsite, err := s.campsites.FindByID(ctx, req.CampsiteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewAppError(errs.ErrCodeNotFound, "Không tìm thấy campsite", err)
		}
		return nil, errs.NewAppError(errs.ErrCodeDBError, "Không đọc được campsite", err)
	}

	if campsite.OwnerID == renterID {
		return nil, errs.NewAppError(errs.ErrCodeSelfBooking, "Chủ campsite không được tự đặt chỗ của mình", nil)
	}

	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	totalPrice := float64(nights)*campsite.NightlyPrice + campsite.CleaningFee

	if req.TotalPrice != 0 && math.Abs(req.TotalPrice-totalPrice) > priceTolerance {
		return nil, errs.NewAppError(errs.ErrCodePriceMismatch, "Giá client gửi lên không khớp giá server tính", nil)
	}

	booking := builders.NewBookingBuilder().
		WithCampsite(req.CampsiteID).
		WithRenter(renterID).
		WithDates(start, end).
		WithNights(nights).
		WithTotalPrice(totalPrice).
		WithStatus(constants.BookingStatusConfirmed).
		WithPaymentIntentRef(req.PaymentIntentRef).
		Build()

	if err := s.bookings.CreateIfAvailable(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrDateOverlap):
			return nil, errs.NewAppError(errs.ErrCodeDateOverlap, "Campsite đã được đặt hoặc bị khóa lịch trong khoảng thời gian này", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, errs.NewAppError(errs.ErrCodeNotFound, "Không tìm thấy campsite", err)
		default:
			return nil, errs.NewAppError(errs.ErrCodeDBError, "Không tạo được booking", err)
		}
	}

	// Payment event có thể đã về trước khi booking tồn tại;
	// link lại row payment đang chờ nếu có
	if booking.PaymentIntentRef != nil {
		if err := s.payments.LinkBooking(ctx, *booking.PaymentIntentRef, booking.ID); err != nil {
			s.logger.Error("Không link được payment cho booking %d (intent %s): %v",
				booking.ID, *booking.PaymentIntentRef, err)
		}
	}

	return booking, nil
}

// Cancel chuyển booking sang cancelled bằng conditional update rồi refund
// best-effort. Refund thất bại không rollback việc hủy: booking vẫn cancelled,
// outcome "failed:<reason>" được trả về và ghi log để đối soát thủ công.
func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterID uint) (*dto.CancelBookingResponse, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewAppError(errs.ErrCodeNotFound, "Không tìm thấy booking", err)
		}
		return nil, errs.NewAppError(errs.ErrCodeDBError, "Không đọc được booking", err)
	}

	campsite, err := s.campsites.FindByID(ctx, booking.CampsiteID)
	if err != nil {
		return nil, errs.NewAppError(errs.ErrCodeDBError, "Không đọc được campsite của booking", err)
	}

	if requesterID != booking.RenterID && requesterID != campsite.OwnerID {
		return nil, errs.NewAppError(errs.ErrCodeForbidden, "Chỉ người thuê hoặc chủ campsite được hủy booking", nil)
	}

	// Check sớm cho thông báo rõ ràng; guard thật sự là conditional update bên dưới
	if !models.CanTransition(booking.Status, constants.BookingStatusCancelled) {
		return nil, errs.NewAppError(errs.ErrCodeAlreadyFinalized, "Booking đã ở trạng thái cuối", nil)
	}

	rows, err := s.bookings.CancelIfActive(ctx, bookingID, time.Now())
	if err != nil {
		return nil, errs.NewAppError(errs.ErrCodeDBError, "Không hủy được booking", err)
	}
	if rows == 0 {
		// Sweeper hoặc một cancel khác đã chốt trạng thái trước
		return nil, errs.NewAppError(errs.ErrCodeAlreadyFinalized, "Booking đã được chốt bởi một thao tác khác", nil)
	}

	outcome := s.refundIfPaid(ctx, bookingID)

	return &dto.CancelBookingResponse{
		Status:        constants.BookingStatusCancelled,
		RefundOutcome: outcome,
	}, nil
}

// refundIfPaid refund ngoài transaction để không giữ lock khi gọi gateway
func (s *BookingService) refundIfPaid(ctx context.Context, bookingID uint) string {
	payment, err := s.payments.FindByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return constants.RefundOutcomeNotApplicable
		}
		utils.LogReconcile("Không đọc được payment của booking %d khi hủy: %v", bookingID, err)
		return constants.RefundFailedPrefix + err.Error()
	}

	if payment.Status != constants.PaymentStatusSucceeded {
		return constants.RefundOutcomeNotApplicable
	}

	if err := s.gateway.Refund(ctx, payment.ExternalIntentID); err != nil {
		utils.LogReconcile("Refund thất bại cho intent %s (booking %d): %v",
			payment.ExternalIntentID, bookingID, err)
		return constants.RefundFailedPrefix + err.Error()
	}

	if err := s.payments.MarkRefunded(ctx, payment.ID); err != nil {
		// Tiền đã hoàn ở gateway, chỉ lệch trạng thái local
		utils.LogReconcile("Refund thành công nhưng không cập nhật được payment %d: %v", payment.ID, err)
	}
	return constants.RefundOutcomeSucceeded
}

// GetByID đọc một booking
func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewAppError(errs.ErrCodeNotFound, "Không tìm thấy booking", err)
		}
		return nil, errs.NewAppError(errs.ErrCodeDBError, "Không đọc được booking", err)
	}
	return booking, nil
}

// GetByRenter lịch sử booking của một người thuê, có phân trang
func (s *BookingService) GetByRenter(ctx context.Context, renterID uint, page, limit int) ([]models.Booking, int64, error) {
	return s.bookings.FindByRenter(ctx, renterID, page, limit)
}
