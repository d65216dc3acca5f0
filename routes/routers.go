package routes

import (
	"stayinn/controllers"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// SetupRoutes gắn toàn bộ endpoint của trang đặt phòng
func SetupRoutes(router *gin.Engine, db *gorm.DB, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, m)
	controllers.RegisterChatbot(m)

	v1 := router.Group("/api/v1")

	// Phía khách
	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/quote", controllers.GetQuote)
	v1.POST("/bookings", bookingController.CreateBooking)

	// Cổng thanh toán
	v1.POST("/payments/webhook", controllers.PaymentWebhook)

	// Back-office
	admin := v1.Group("/admin")

	admin.POST("/rooms", controllers.CreateRoom)
	admin.PUT("/rooms", controllers.UpdateRoom)
	admin.PUT("/roomStatus", controllers.ChangeRoomStatus)

	admin.GET("/promotions", controllers.GetPromotions)
	admin.GET("/promotions/:id", controllers.GetPromotionDetail)
	admin.POST("/promotions", controllers.CreatePromotion)
	admin.PUT("/promotions", controllers.UpdatePromotion)
	admin.DELETE("/promotions/:id", controllers.DeletePromotion)
	admin.PUT("/promotionStatus", controllers.ChangePromotionStatus)

	admin.GET("/bookings", bookingController.GetBookings)
	admin.GET("/bookings/:id", bookingController.GetBookingDetail)
	admin.PUT("/bookingStatus", bookingController.ChangeBookingStatus)

	admin.GET("/syncTasks", controllers.GetSyncTasks)
	admin.POST("/syncTasks/:id/retry", controllers.RetrySyncTask)

	admin.GET("/chatbot", controllers.GetChatbotSetting)
	admin.PUT("/chatbot", controllers.UpdateChatbotSetting)
}
