package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// ExpiredHireSweeper định nghĩa interface cho việc tắt các hợp đồng thuê ngoài hết hạn
type ExpiredHireSweeper interface {
	DeactivateExpiredHires() (int64, error)
}

var hireSweeper ExpiredHireSweeper

// SetHireSweeper thiết lập implementation cho ExpiredHireSweeper
func SetHireSweeper(sweeper ExpiredHireSweeper) {
	hireSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét hợp đồng thuê ngoài hết hạn lúc: %v", now)
		if hireSweeper == nil {
			log.Printf("Lỗi: ExpiredHireSweeper chưa được thiết lập")
			return
		}
		n, err := hireSweeper.DeactivateExpiredHires()
		if err != nil {
			log.Printf("Lỗi khi quét hợp đồng thuê ngoài: %v", err)
			return
		}
		if n > 0 && m != nil {
			m.Broadcast([]byte(fmt.Sprintf("🔔 Đã kết thúc %d hợp đồng thuê ngoài hết hạn", n)))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
