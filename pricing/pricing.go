package pricing

// DateLayout là layout chuẩn cho ngày trong toàn hệ thống
const DateLayout = "2006-01-02"

// RoomRates chứa bảng giá của một phòng tại thời điểm tính giá
type RoomRates struct {
	// WeekdayPrices giá theo thứ trong tuần, index 0 = Chủ nhật
	WeekdayPrices [7]int
	// FallbackPrice dùng khi giá của thứ tương ứng bằng 0
	FallbackPrice int
	// LegacyPromo khuyến mãi gắn trực tiếp trên phòng, ưu tiên thấp hơn Promo
	LegacyPromo *LegacyPromo
}

// LegacyPromo là giá khuyến mãi cố định gắn trên phòng
type LegacyPromo struct {
	Price    int
	FromDate string
	ToDate   string
}

// Override là hiệu ứng giá của một khuyến mãi: giá cố định hoặc phần trăm giảm.
// Promo không có hiệu ứng khi Override là nil.
type Override interface {
	isOverride()
}

// FixedPrice thay giá đêm bằng một mức cố định
type FixedPrice struct {
	Amount int
}

// PercentDiscount giảm giá đêm theo phần trăm (0..100)
type PercentDiscount struct {
	Percent float64
}

func (FixedPrice) isOverride()      {}
func (PercentDiscount) isOverride() {}

// Promo là khuyến mãi đang hiệu lực do caller chọn sẵn
type Promo struct {
	FromDate string
	ToDate   string
	Override Override
}

// Quote là kết quả tính giá trả về cho caller
type Quote struct {
	AveragePrice float64 `json:"averagePrice"`
	HasDateRange bool    `json:"hasDateRange"`
}
