package controllers

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"stayinn/config"
	"stayinn/dto"
	"stayinn/models"
	"stayinn/response"
	"stayinn/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// loadChatbotSetting đọc cấu hình chatbot, có cache Redis
func loadChatbotSetting() models.ChatbotSetting {
	setting := models.ChatbotSetting{
		Greeting:   "Xin chào! Bạn muốn tìm phòng nào?",
		Enabled:    true,
		MaxResults: 3,
	}

	var cached models.ChatbotSetting
	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyChatbotSetting, &cached); err == nil && cached.ID != 0 {
			return cached
		}
	}

	var stored models.ChatbotSetting
	if err := config.DB.First(&stored).Error; err == nil {
		setting = stored
		if config.RedisClient != nil {
			_ = services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyChatbotSetting, stored, 30*time.Minute)
		}
	}

	return setting
}

// GetChatbotSetting lấy cấu hình chatbot cho back-office
func GetChatbotSetting(c *gin.Context) {
	response.Success(c, loadChatbotSetting())
}

// UpdateChatbotSetting cập nhật cấu hình chatbot
func UpdateChatbotSetting(c *gin.Context) {
	var request dto.UpdateChatbotSettingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var setting models.ChatbotSetting
	if err := config.DB.First(&setting).Error; err != nil {
		setting = models.ChatbotSetting{MaxResults: 3, Enabled: true}
	}

	if request.Greeting != "" {
		setting.Greeting = request.Greeting
	}
	if request.SystemPrompt != "" {
		setting.SystemPrompt = request.SystemPrompt
	}
	if request.Enabled != nil {
		setting.Enabled = *request.Enabled
	}
	if request.MaxResults > 0 {
		setting.MaxResults = request.MaxResults
	}

	if err := setting.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		response.ServerError(c)
		return
	}

	if config.RedisClient != nil {
		_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyChatbotSetting)
	}

	response.Success(c, setting)
}

// RegisterChatbot gắn handler chat vào websocket: khách hỏi tên phòng,
// bot gợi ý phòng gần đúng nhất kèm giá hôm nay
func RegisterChatbot(m *melody.Melody) {
	m.HandleConnect(func(s *melody.Session) {
		setting := loadChatbotSetting()
		if !setting.Enabled {
			return
		}
		reply, _ := json.Marshal(dto.ChatMessage{Type: "greeting", Content: setting.Greeting})
		if err := s.Write(reply); err != nil {
			log.Printf("Không thể gửi lời chào: %v", err)
		}
	})

	m.HandleMessage(func(s *melody.Session, msg []byte) {
		setting := loadChatbotSetting()
		if !setting.Enabled {
			return
		}

		var incoming dto.ChatMessage
		if err := json.Unmarshal(msg, &incoming); err != nil {
			incoming = dto.ChatMessage{Type: "question", Content: string(msg)}
		}

		answer := answerRoomQuestion(incoming.Content, setting.MaxResults)
		reply, err := json.Marshal(dto.ChatMessage{Type: "answer", Content: answer})
		if err != nil {
			return
		}
		if err := s.Write(reply); err != nil {
			log.Printf("Không thể gửi trả lời chat: %v", err)
		}
	})
}

// answerRoomQuestion tìm phòng theo câu hỏi và trả lời kèm giá mỗi đêm
func answerRoomQuestion(question string, maxResults int) string {
	var rooms []models.Room
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomsAll, &rooms); err != nil || len(rooms) == 0 {
		if err := config.DB.Find(&rooms).Error; err != nil {
			return "Xin lỗi, hiện không tra cứu được danh sách phòng."
		}
	}

	matches := services.SearchRooms(rooms, question, maxResults)
	if len(matches) == 0 {
		return "Không tìm thấy phòng phù hợp, bạn thử mô tả khác xem sao."
	}

	var b strings.Builder
	b.WriteString("Các phòng phù hợp: ")
	for i := range matches {
		quote := quoteForRoom(&matches[i], nil, nil)
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(matches[i].RoomName)
		b.WriteString(" - ")
		b.WriteString(strconv.FormatFloat(quote.AveragePrice, 'f', 0, 64))
		b.WriteString("/đêm")
	}
	return b.String()
}
