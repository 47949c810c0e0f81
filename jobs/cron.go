package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StatusSweeper định nghĩa interface cho job chuyển booking sang completed
type StatusSweeper interface {
	Run(ctx context.Context, now time.Time) (int, error)
}

var statusSweeper StatusSweeper

// SetStatusSweeper thiết lập implementation cho StatusSweeper
func SetStatusSweeper(sweeper StatusSweeper) {
	statusSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy status sweep lúc: %v", now)
		if statusSweeper == nil {
			log.Printf("Lỗi: StatusSweeper chưa được thiết lập")
			return
		}
		count, err := statusSweeper.Run(context.Background(), now)
		if err != nil {
			log.Printf("Lỗi khi chạy status sweep: %v", err)
			return
		}
		log.Printf("Status sweep hoàn tất, %d booking chuyển sang completed", count)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
