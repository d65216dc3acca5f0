package dto

import (
	"encoding/json"
	"time"
)

// SyncTaskResponse là DTO cho một bản ghi hàng đợi đồng bộ
type SyncTaskResponse struct {
	ID        uint            `json:"id"`
	RoomID    uint            `json:"roomId"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload"`
	Status    int             `json:"status"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"lastError"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
