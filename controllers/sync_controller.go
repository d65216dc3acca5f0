package controllers

import (
	"log"
	"strconv"

	"stayinn/commands"
	"stayinn/config"
	"stayinn/constants"
	"stayinn/dto"
	"stayinn/models"
	"stayinn/response"
	"stayinn/services"

	"github.com/gin-gonic/gin"
)

// invalidateRoomCache xóa cache danh sách phòng sau mỗi thay đổi
func invalidateRoomCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomsAll); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

// invalidatePromotionCache xóa cache khuyến mãi active
func invalidatePromotionCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyActivePromotions); err != nil {
		log.Printf("Lỗi khi xóa cache khuyến mãi: %v", err)
	}
}

// enqueueRateSync đưa thay đổi bảng giá của phòng vào hàng đợi đồng bộ
func enqueueRateSync(room models.Room) {
	cmd := commands.NewEnqueueSyncCommand(room.RoomId, constants.SyncActionRateUpdate, room, config.DB)
	if err := cmd.Execute(); err != nil {
		log.Printf("Không thể tạo sync task giá cho phòng %d: %v", room.RoomId, err)
	}
}

// enqueueAvailabilitySync đưa thay đổi trạng thái phòng vào hàng đợi đồng bộ
func enqueueAvailabilitySync(room models.Room) {
	cmd := commands.NewEnqueueSyncCommand(room.RoomId, constants.SyncActionAvailabilityUpdate, room, config.DB)
	if err := cmd.Execute(); err != nil {
		log.Printf("Không thể tạo sync task trạng thái cho phòng %d: %v", room.RoomId, err)
	}
}

// GetSyncTasks lấy hàng đợi đồng bộ cho back-office
func GetSyncTasks(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.SyncTask{})
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var totalTasks int64
	if err := tx.Count(&totalTasks).Error; err != nil {
		response.ServerError(c)
		return
	}

	var tasks []models.SyncTask
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&tasks).Error; err != nil {
		response.ServerError(c)
		return
	}

	taskResponses := make([]dto.SyncTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		taskResponses = append(taskResponses, dto.SyncTaskResponse{
			ID:        task.ID,
			RoomID:    task.RoomID,
			Action:    task.Action,
			Payload:   task.Payload,
			Status:    task.Status,
			Attempts:  task.Attempts,
			LastError: task.LastError,
			CreatedAt: task.CreatedAt,
			UpdatedAt: task.UpdatedAt,
		})
	}

	response.SuccessWithPagination(c, taskResponses, page, limit, int(totalTasks))
}

// RetrySyncTask đưa task thất bại về lại hàng đợi
func RetrySyncTask(c *gin.Context) {
	var task models.SyncTask
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if task.Status != constants.SyncStatusFailed {
		response.BadRequest(c, "Chỉ task thất bại mới được retry")
		return
	}

	if err := commands.NewRetrySyncCommand(task.ID, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
