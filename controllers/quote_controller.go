package controllers

import (
	"time"

	"stayinn/config"
	"stayinn/dto"
	"stayinn/models"
	"stayinn/pricing"
	"stayinn/response"
	"stayinn/services"

	"github.com/gin-gonic/gin"
)

// GetQuote xem trước giá một phòng cho một kỳ lưu trú tùy chọn.
// Dùng cho trang chi tiết phòng, giỏ hàng và công cụ xem giá của admin.
func GetQuote(c *gin.Context) {
	roomIDStr := c.Query("roomId")
	if roomIDStr == "" {
		response.BadRequest(c, "roomId là bắt buộc")
		return
	}

	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		response.BadRequest(c, "Ngày phải theo định dạng yyyy-MM-dd")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", roomIDStr).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	now := time.Now()
	promotion, err := services.LoadActivePromotion(checkIn, checkOut, now)
	if err != nil {
		response.ServerError(c)
		return
	}

	var promo *pricing.Promo
	var promotionID *uint
	if promotion != nil {
		promo = promotion.Promo()
		promotionID = &promotion.ID
	}

	quote := pricing.ResolvePrice(room.Rates(), checkIn, checkOut, promo, now)

	nights := 0
	if checkIn != nil && checkOut != nil {
		nights = len(pricing.Nights(*checkIn, *checkOut))
	}

	response.Success(c, dto.QuoteResponse{
		RoomID:       room.RoomId,
		AveragePrice: quote.AveragePrice,
		HasDateRange: quote.HasDateRange,
		Nights:       nights,
		PromotionID:  promotionID,
	})
}
