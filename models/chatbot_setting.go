package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ChatbotSetting cấu hình trợ lý chat của trang đặt phòng
type ChatbotSetting struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Greeting     string    `json:"greeting" validate:"required"`
	SystemPrompt string    `json:"systemPrompt"`
	Enabled      bool      `json:"enabled" gorm:"default:true"`
	MaxResults   int       `json:"maxResults" validate:"gte=1,lte=10"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Validate kiểm tra cấu hình trước khi lưu
func (s *ChatbotSetting) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
