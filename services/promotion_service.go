package services

import (
	"time"

	"stayinn/config"
	"stayinn/constants"
	"stayinn/models"
	"stayinn/pricing"
)

// SelectActivePromotion chọn đúng một khuyến mãi cho một yêu cầu tính giá.
// Ứng viên phải đang active và có khoảng hiệu lực giao với kỳ lưu trú
// (hoặc chứa ngày hôm nay khi không có kỳ lưu trú). Khi nhiều chương trình
// cùng thỏa thì chương trình cập nhật gần nhất thắng, pricing chỉ nhận một.
func SelectActivePromotion(promotions []models.Promotion, checkIn, checkOut *time.Time, today time.Time) *models.Promotion {
	fromDay := pricing.FormatDate(today)
	toDay := fromDay
	if checkIn != nil && checkOut != nil {
		fromDay = pricing.FormatDate(*checkIn)
		lastNight := checkOut.AddDate(0, 0, -1)
		if !lastNight.Before(*checkIn) {
			toDay = pricing.FormatDate(lastNight)
		} else {
			toDay = fromDay
		}
	}

	var selected *models.Promotion
	for i := range promotions {
		p := &promotions[i]
		if p.Status != constants.PromotionStatusActive {
			continue
		}
		// Giao khoảng: promo [FromDate, ToDate] chạm [fromDay, toDay]
		if p.ToDate < fromDay || p.FromDate > toDay {
			continue
		}
		if selected == nil || p.UpdatedAt.After(selected.UpdatedAt) {
			selected = p
		}
	}
	return selected
}

// LoadActivePromotion đọc danh sách khuyến mãi active (có cache Redis)
// rồi chọn chương trình áp cho kỳ lưu trú
func LoadActivePromotion(checkIn, checkOut *time.Time, today time.Time) (*models.Promotion, error) {
	var promotions []models.Promotion

	if config.RedisClient != nil {
		if err := GetFromRedis(config.Ctx, config.RedisClient, CacheKeyActivePromotions, &promotions); err == nil && len(promotions) > 0 {
			return SelectActivePromotion(promotions, checkIn, checkOut, today), nil
		}
	}

	if err := config.DB.Where("status = ?", constants.PromotionStatusActive).Find(&promotions).Error; err != nil {
		return nil, err
	}

	if config.RedisClient != nil && len(promotions) > 0 {
		_ = SetToRedis(config.Ctx, config.RedisClient, CacheKeyActivePromotions, promotions, 10*time.Minute)
	}

	return SelectActivePromotion(promotions, checkIn, checkOut, today), nil
}
