package controllers

import (
	"os"

	"stayinn/config"
	"stayinn/constants"
	"stayinn/dto"
	"stayinn/models"
	"stayinn/response"
	"stayinn/utils"

	"github.com/gin-gonic/gin"
)

// PaymentWebhook nhận callback từ cổng thanh toán và cập nhật booking.
// Phần tích hợp cổng (tạo giao dịch, chữ ký chi tiết) nằm ngoài service này;
// ở đây chỉ đối chiếu token chia sẻ và ghi nhận kết quả.
func PaymentWebhook(c *gin.Context) {
	token := os.Getenv("PAYMENT_WEBHOOK_TOKEN")
	if token == "" || c.GetHeader("X-Webhook-Token") != token {
		response.Unauthorized(c)
		return
	}

	var request dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.BookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.PaymentRef = request.Reference

	switch request.Status {
	case "success":
		booking.PaymentStatus = constants.PaymentStatusSuccess
		// Thanh toán xong thì xác nhận booking đang chờ
		if booking.Status == models.BookingStatusPending {
			if err := models.GetBookingState(booking.Status).Confirm(&booking); err != nil {
				response.BadRequest(c, err.Error())
				return
			}
		}
	case "failed":
		booking.PaymentStatus = constants.PaymentStatusFailed
	case "refunded":
		booking.PaymentStatus = constants.PaymentStatusRefunded
	default:
		response.BadRequest(c, "Trạng thái thanh toán không hợp lệ")
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.LogError("Không thể lưu kết quả thanh toán cho booking %d: %v", booking.ID, err)
		response.ServerError(c)
		return
	}

	utils.LogAudit("payment webhook: booking=%d status=%s ref=%s", booking.ID, request.Status, request.Reference)
	response.Success(c, gin.H{"bookingId": booking.ID, "paymentStatus": booking.PaymentStatus})
}
