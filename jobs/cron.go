package jobs

import (
	"encoding/json"
	"log"
	"time"

	"stayinn/commands"
	"stayinn/config"
	"stayinn/constants"
	"stayinn/models"
	"stayinn/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// maxSyncAttempts số lần đẩy tối đa trước khi task bị đánh dấu thất bại
const maxSyncAttempts = 5

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Đẩy hàng đợi đồng bộ channel manager mỗi 5 phút
	if _, err := c.AddFunc("*/5 * * * *", func() {
		DispatchSyncQueue()
	}); err != nil {
		return err
	}

	// Tắt khuyến mãi hết hạn lúc 0h mỗi ngày
	if _, err := c.AddFunc("0 0 * * *", func() {
		ExpirePromotions(m)
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// DispatchSyncQueue đẩy các task pending lên channel manager
func DispatchSyncQueue() {
	var tasks []models.SyncTask
	if err := config.DB.Where("status = ?", constants.SyncStatusPending).
		Order("created_at asc").Limit(50).Find(&tasks).Error; err != nil {
		log.Printf("Không thể đọc hàng đợi đồng bộ: %v", err)
		return
	}

	for i := range tasks {
		task := &tasks[i]
		if err := services.PushSyncTask(task); err != nil {
			log.Printf("Đẩy sync task %d thất bại: %v", task.ID, err)
			if cmdErr := commands.NewMarkSyncFailedCommand(task, err.Error(), maxSyncAttempts, config.DB).Execute(); cmdErr != nil {
				log.Printf("Không thể ghi nhận thất bại cho task %d: %v", task.ID, cmdErr)
			}
			continue
		}
		if err := commands.NewMarkSyncDoneCommand(task, config.DB).Execute(); err != nil {
			log.Printf("Không thể đánh dấu task %d hoàn thành: %v", task.ID, err)
		}
	}
}

// ExpirePromotions tắt các khuyến mãi đã quá hạn và thông báo cho admin
func ExpirePromotions(m *melody.Melody) {
	today := time.Now().Format("2006-01-02")

	result := config.DB.Model(&models.Promotion{}).
		Where("status = ? AND to_date < ?", constants.PromotionStatusActive, today).
		Update("status", constants.PromotionStatusInactive)
	if result.Error != nil {
		log.Printf("Không thể tắt khuyến mãi hết hạn: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		return
	}
	log.Printf("Đã tắt %d khuyến mãi hết hạn", result.RowsAffected)

	if config.RedisClient != nil {
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyActivePromotions)
	}

	if m != nil {
		message, err := json.Marshal(map[string]interface{}{
			"event":   "promotions_expired",
			"expired": result.RowsAffected,
		})
		if err == nil {
			_ = m.Broadcast(message)
		}
	}
}
