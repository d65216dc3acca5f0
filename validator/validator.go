package validator

import (
	"time"

	"stayinn/dto"
	"stayinn/errors"
	"stayinn/pricing"
)

// ValidDate kiểm tra chuỗi ngày theo layout yyyy-MM-dd
func ValidDate(s string) bool {
	_, err := time.Parse(pricing.DateLayout, s)
	return err == nil
}

// ValidateRoomPrices validate bảng giá của room trước khi lưu
func ValidateRoomPrices(price int, daysPrice []dto.DayPrice, promoPrice int, promoFrom, promoTo string) error {
	if price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá mặc định không được âm", nil)
	}

	for _, dp := range daysPrice {
		if dp.Day < 0 || dp.Day > 6 {
			return errors.NewAppError(errors.ErrCodeValidation, "Thứ trong tuần phải từ 0 đến 6", nil)
		}
		if dp.Price < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá theo thứ không được âm", nil)
		}
	}

	if promoPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá khuyến mãi không được âm", nil)
	}
	if promoPrice > 0 {
		if !ValidDate(promoFrom) || !ValidDate(promoTo) {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày khuyến mãi phải theo định dạng yyyy-MM-dd", nil)
		}
		if promoTo < promoFrom {
			return errors.NewAppError(errors.ErrCodeInvalidWindow, "Ngày kết thúc khuyến mãi phải sau ngày bắt đầu", nil)
		}
	}

	return nil
}

// ValidatePromotionWindow validate khoảng hiệu lực và mức giảm của promotion
func ValidatePromotionWindow(fromDate, toDate string, fixedPrice *int, discountPercent *float64) error {
	if !ValidDate(fromDate) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày bắt đầu phải theo định dạng yyyy-MM-dd", nil)
	}
	if !ValidDate(toDate) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày kết thúc phải theo định dạng yyyy-MM-dd", nil)
	}
	if toDate < fromDate {
		return errors.NewAppError(errors.ErrCodeInvalidWindow, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if fixedPrice != nil && *fixedPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidPrice, "Giá cố định không được âm", nil)
	}
	if discountPercent != nil && (*discountPercent < 0 || *discountPercent > 100) {
		return errors.NewAppError(errors.ErrCodeInvalidPercent, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}

	return nil
}

// ValidateStay validate kỳ lưu trú của một booking
func ValidateStay(checkIn, checkOut string) error {
	if !ValidDate(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng phải theo định dạng yyyy-MM-dd", nil)
	}
	if !ValidDate(checkOut) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng phải theo định dạng yyyy-MM-dd", nil)
	}
	if checkOut <= checkIn {
		return errors.NewAppError(errors.ErrCodeInvalidStay, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}
