package pricing

import "time"

// ResolvePrice tính giá mỗi đêm của một phòng cho một kỳ lưu trú tùy chọn.
//
// Khi thiếu checkIn hoặc checkOut thì tính giá cho ngày today. Khi có đủ
// hai ngày thì tính trung bình cộng giá của từng đêm, mỗi đêm tự xét
// khuyến mãi riêng. Khuyến mãi đang hiệu lực (promo) luôn được xét trước
// khuyến mãi gắn trên phòng. Hàm thuần, không I/O, không làm tròn;
// caller tự format giá hiển thị.
func ResolvePrice(rates RoomRates, checkIn, checkOut *time.Time, promo *Promo, today time.Time) Quote {
	if checkIn == nil || checkOut == nil {
		return Quote{
			AveragePrice: nightPrice(rates, promo, today),
			HasDateRange: false,
		}
	}

	nights := Nights(*checkIn, *checkOut)
	if len(nights) == 0 {
		// Kỳ lưu trú 0 đêm: trả giá theo thứ của ngày nhận phòng
		return Quote{
			AveragePrice: float64(BasePriceFor(rates, *checkIn)),
			HasDateRange: true,
		}
	}

	total := 0.0
	for _, night := range nights {
		total += nightPrice(rates, promo, night)
	}

	return Quote{
		AveragePrice: total / float64(len(nights)),
		HasDateRange: true,
	}
}

// nightPrice tính giá một đêm theo thứ tự ưu tiên: promo, legacy promo, giá gốc
func nightPrice(rates RoomRates, promo *Promo, night time.Time) float64 {
	base := BasePriceFor(rates, night)
	day := FormatDate(night)

	if promo != nil && withinWindow(day, promo.FromDate, promo.ToDate) {
		switch ov := promo.Override.(type) {
		case FixedPrice:
			return float64(ov.Amount)
		case PercentDiscount:
			return float64(base) * (1 - ov.Percent/100)
		}
		// Promo không có hiệu ứng giá thì xét tiếp như bình thường
	}

	if lp := rates.LegacyPromo; lp != nil && withinWindow(day, lp.FromDate, lp.ToDate) {
		return float64(lp.Price)
	}

	return float64(base)
}
