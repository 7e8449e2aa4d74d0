package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CategoryCacheWarmer định nghĩa interface cho việc làm nóng cache loại phòng
type CategoryCacheWarmer interface {
	WarmActiveProperties() error
}

var categoryCacheWarmer CategoryCacheWarmer

// SetCategoryCacheWarmer thiết lập implementation cho CategoryCacheWarmer
func SetCategoryCacheWarmer(warmer CategoryCacheWarmer) {
	categoryCacheWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày, nạp lại cache loại phòng
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang làm nóng cache loại phòng lúc: %v", now)
		if categoryCacheWarmer == nil {
			log.Printf("Lỗi: CategoryCacheWarmer chưa được thiết lập")
			return
		}
		if err := categoryCacheWarmer.WarmActiveProperties(); err != nil {
			log.Printf("Lỗi khi làm nóng cache loại phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
