package services

import (
	"context"
	"time"

	"gocamp/repository"
	"gocamp/services/logger"
	"gocamp/utils"
	"gocamp/validator"
)

// SweepService batch job chuyển các booking confirmed đã qua end_date
// sang completed
type SweepService struct {
	bookings repository.BookingRepo
	logger   logger.Logger
}

func NewSweepService(bookings repository.BookingRepo, log logger.Logger) *SweepService {
	return &SweepService{bookings: bookings, logger: log}
}

// Run quét các booking đến hạn và trả về số booking đã chuyển trạng thái.
// Mỗi row được update có điều kiện theo status nên cancel chạy song song
// thắng một cách êm thấm; lỗi một row chỉ bị log và bỏ qua, không dừng
// cả lượt quét. Chạy lại trong ngày là no-op.
func (s *SweepService) Run(ctx context.Context, now time.Time) (int, error) {
	today := validator.BeginningOfDay(now)

	ids, err := s.bookings.FindDueForCompletion(ctx, today)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, id := range ids {
		rows, err := s.bookings.CompleteIfConfirmed(ctx, id, today)
		if err != nil {
			utils.LogReconcile("Sweep bỏ qua booking %d: %v", id, err)
			continue
		}
		if rows > 0 {
			count++
		}
	}

	if count > 0 {
		s.logger.Info("Sweep chuyển %d booking sang completed", count)
	}
	return count, nil
}
