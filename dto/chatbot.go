package dto

// UpdateChatbotSettingRequest là DTO cập nhật cấu hình chatbot
type UpdateChatbotSettingRequest struct {
	Greeting     string `json:"greeting"`
	SystemPrompt string `json:"systemPrompt"`
	Enabled      *bool  `json:"enabled"`
	MaxResults   int    `json:"maxResults"`
}

// ChatMessage là tin nhắn trao đổi qua websocket
type ChatMessage struct {
	Type    string `json:"type"` // question | answer | greeting
	Content string `json:"content"`
}

// ChatRoomSuggestion là một gợi ý phòng trong câu trả lời của chatbot
type ChatRoomSuggestion struct {
	RoomID       uint    `json:"roomId"`
	RoomName     string  `json:"roomName"`
	AveragePrice float64 `json:"averagePrice"`
}
