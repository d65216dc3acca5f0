package pricing

import "time"

// FormatDate format ngày về chuỗi yyyy-MM-dd để so sánh
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayIndex trả về index thứ trong tuần của ngày (0 = Chủ nhật)
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}

// Nights liệt kê các đêm của một kỳ lưu trú: từ checkIn đến trước checkOut.
// Kết quả rỗng khi checkOut không sau checkIn.
func Nights(checkIn, checkOut time.Time) []time.Time {
	var nights []time.Time
	lastNight := checkOut.AddDate(0, 0, -1)
	for day := checkIn; !day.After(lastNight); day = day.AddDate(0, 0, 1) {
		nights = append(nights, day)
	}
	return nights
}

// BasePriceFor lấy giá theo thứ của ngày, fallback về giá mặc định khi giá ngày bằng 0
func BasePriceFor(rates RoomRates, day time.Time) int {
	price := rates.WeekdayPrices[WeekdayIndex(day)]
	if price == 0 {
		return rates.FallbackPrice
	}
	return price
}

// withinWindow kiểm tra ngày có nằm trong khoảng [from, to] hay không.
// So sánh chuỗi yyyy-MM-dd trực tiếp, tính theo ngày, bao gồm cả hai đầu.
func withinWindow(day, from, to string) bool {
	return from <= day && day <= to
}
