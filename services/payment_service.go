package services

import (
	"context"
	"errors"

	"gocamp/constants"
	"gocamp/dto"
	errs "gocamp/errors"
	"gocamp/models"
	"gocamp/repository"
	"gocamp/services/logger"
)

// PaymentService đối soát event từ payment gateway với booking.
// Event được deliver at-least-once và có thể sai thứ tự so với lúc
// booking được tạo; mọi ghi nhận đều đi qua upsert nguyên tử theo intent id.
type PaymentService struct {
	payments repository.PaymentRepo
	bookings repository.BookingRepo
	gateway  PaymentGateway
	logger   logger.Logger
}

// PaymentServiceOptions tham số khởi tạo PaymentService
type PaymentServiceOptions struct {
	Payments repository.PaymentRepo
	Bookings repository.BookingRepo
	Gateway  PaymentGateway
	Logger   logger.Logger
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	return &PaymentService{
		payments: opts.Payments,
		bookings: opts.Bookings,
		gateway:  opts.Gateway,
		logger:   opts.Logger,
	}
}

// CreateIntent tạo payment intent ở gateway trước khi client đặt booking.
// Lỗi gateway ở đây caller được phép retry.
func (s *PaymentService) CreateIntent(ctx context.Context, amount float64, currency string) (*dto.PaymentIntent, error) {
	return s.gateway.CreateIntent(ctx, amount, currency)
}

// HandleEvent xác thực chữ ký rồi áp dụng event vào bảng payments.
// Event giả mạo bị drop không đổi trạng thái. Replay cùng event không tạo
// row trùng và không làm trạng thái dao động: upsert key theo
// external_intent_id, không dựa trên một lần đọc trước đó.
func (s *PaymentService) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		s.logger.Error("Webhook bị từ chối: %v", err)
		return err
	}

	var status string
	switch event.Type {
	case constants.EventIntentSucceeded:
		status = constants.PaymentStatusSucceeded
	case constants.EventIntentFailed:
		status = constants.PaymentStatusFailed
	default:
		return errs.NewAppError(errs.ErrCodeValidation, "Loại event không được hỗ trợ: "+event.Type, nil)
	}

	payment := &models.Payment{
		ExternalIntentID: event.IntentID,
		Amount:           event.Amount,
		Currency:         event.Currency,
		Status:           status,
	}

	// Booking có thể chưa tồn tại: khi đó booking_id để NULL,
	// lúc tạo booking sẽ link lại
	booking, err := s.bookings.FindByIntentRef(ctx, event.IntentID)
	if err == nil {
		payment.BookingID = &booking.ID
	} else if !errors.Is(err, repository.ErrNotFound) {
		return errs.NewAppError(errs.ErrCodeDBError, "Không tra cứu được booking theo intent", err)
	}

	if err := s.payments.UpsertFromEvent(ctx, payment); err != nil {
		return errs.NewAppError(errs.ErrCodeDBError, "Không ghi nhận được payment event", err)
	}

	// Booking có thể được insert xen giữa lần tra cứu ở trên và lần upsert;
	// khi đó LinkBooking phía tạo booking chạy trước khi row payment tồn tại.
	// Tra cứu lại sau upsert để hai phía không cùng hụt nhau.
	if payment.BookingID == nil {
		booking, err := s.bookings.FindByIntentRef(ctx, event.IntentID)
		if err == nil {
			if err := s.payments.LinkBooking(ctx, event.IntentID, booking.ID); err != nil {
				s.logger.Error("Không link được payment cho intent %s (booking %d): %v",
					event.IntentID, booking.ID, err)
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Không tra cứu lại được booking theo intent %s: %v", event.IntentID, err)
		}
	}

	if event.Type == constants.EventIntentFailed && event.Reason != "" {
		s.logger.Info("Intent %s thất bại ở gateway: %s", event.IntentID, event.Reason)
	}
	return nil
}
