package commands

import (
	"encoding/json"

	"stayinn/constants"
	"stayinn/models"

	"gorm.io/gorm"
)

// SyncCommand định nghĩa interface cho các command trên hàng đợi đồng bộ
type SyncCommand interface {
	Execute() error
}

// EnqueueSyncCommand command tạo một task đồng bộ mới
type EnqueueSyncCommand struct {
	roomID  uint
	action  string
	payload interface{}
	db      *gorm.DB
}

func NewEnqueueSyncCommand(roomID uint, action string, payload interface{}, db *gorm.DB) *EnqueueSyncCommand {
	return &EnqueueSyncCommand{
		roomID:  roomID,
		action:  action,
		payload: payload,
		db:      db,
	}
}

func (c *EnqueueSyncCommand) Execute() error {
	raw, err := json.Marshal(c.payload)
	if err != nil {
		return err
	}
	task := models.SyncTask{
		RoomID:  c.roomID,
		Action:  c.action,
		Payload: raw,
		Status:  constants.SyncStatusPending,
	}
	return c.db.Create(&task).Error
}

// MarkSyncDoneCommand command đánh dấu task đã đồng bộ xong
type MarkSyncDoneCommand struct {
	task *models.SyncTask
	db   *gorm.DB
}

func NewMarkSyncDoneCommand(task *models.SyncTask, db *gorm.DB) *MarkSyncDoneCommand {
	return &MarkSyncDoneCommand{
		task: task,
		db:   db,
	}
}

func (c *MarkSyncDoneCommand) Execute() error {
	c.task.Status = constants.SyncStatusDone
	c.task.LastError = ""
	return c.db.Save(c.task).Error
}

// MarkSyncFailedCommand command ghi nhận một lần đẩy thất bại
type MarkSyncFailedCommand struct {
	task        *models.SyncTask
	reason      string
	maxAttempts int
	db          *gorm.DB
}

func NewMarkSyncFailedCommand(task *models.SyncTask, reason string, maxAttempts int, db *gorm.DB) *MarkSyncFailedCommand {
	return &MarkSyncFailedCommand{
		task:        task,
		reason:      reason,
		maxAttempts: maxAttempts,
		db:          db,
	}
}

func (c *MarkSyncFailedCommand) Execute() error {
	c.task.Attempts++
	c.task.LastError = c.reason
	if c.task.Attempts >= c.maxAttempts {
		c.task.Status = constants.SyncStatusFailed
	}
	return c.db.Save(c.task).Error
}

// RetrySyncCommand command đưa task thất bại về lại hàng đợi
type RetrySyncCommand struct {
	taskID uint
	db     *gorm.DB
}

func NewRetrySyncCommand(taskID uint, db *gorm.DB) *RetrySyncCommand {
	return &RetrySyncCommand{
		taskID: taskID,
		db:     db,
	}
}

func (c *RetrySyncCommand) Execute() error {
	return c.db.Model(&models.SyncTask{}).
		Where("id = ?", c.taskID).
		Updates(map[string]interface{}{
			"status":     constants.SyncStatusPending,
			"attempts":   0,
			"last_error": "",
		}).Error
}
