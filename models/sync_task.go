package models

import (
	"encoding/json"
	"time"
)

// SyncTask là một bản ghi trong hàng đợi đồng bộ channel manager.
// Mỗi thay đổi phòng/giá/booking tạo một task, cron job đẩy dần lên API.
type SyncTask struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	RoomID    uint            `json:"roomId"`
	Action    string          `json:"action"` // rate_update | availability_update | booking_push
	Payload   json.RawMessage `json:"payload" gorm:"type:json"`
	Status    int             `json:"status" gorm:"default:0"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"lastError"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
