package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"stayinn/models"
)

// channelManagerRequest là payload gửi lên API channel manager
type channelManagerRequest struct {
	RoomID  uint            `json:"room_id"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

type channelManagerResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var channelManagerHTTP = &http.Client{Timeout: 15 * time.Second}

// PushSyncTask đẩy một task trong hàng đợi lên channel manager.
// Trả lỗi khi API từ chối hoặc không phản hồi; caller quyết định retry.
func PushSyncTask(task *models.SyncTask) error {
	endpoint := os.Getenv("CHANNEL_MANAGER_URL")
	apiKey := os.Getenv("CHANNEL_MANAGER_KEY")
	if endpoint == "" {
		return fmt.Errorf("CHANNEL_MANAGER_URL chưa được cấu hình")
	}

	body, err := json.Marshal(channelManagerRequest{
		RoomID:  task.RoomID,
		Action:  task.Action,
		Payload: task.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sync payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint+"/v1/sync", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := channelManagerHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("channel manager request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("channel manager returned %d: %s", resp.StatusCode, string(raw))
	}

	var cmResp channelManagerResponse
	if err := json.NewDecoder(resp.Body).Decode(&cmResp); err != nil {
		return fmt.Errorf("failed to parse channel manager response: %w", err)
	}
	if cmResp.Status != "ok" {
		return fmt.Errorf("channel manager rejected task: %s", cmResp.Message)
	}
	return nil
}
