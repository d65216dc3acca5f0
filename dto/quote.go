package dto

// QuoteResponse là DTO cho response xem trước giá
type QuoteResponse struct {
	RoomID       uint    `json:"roomId"`
	AveragePrice float64 `json:"averagePrice"`
	HasDateRange bool    `json:"hasDateRange"`
	Nights       int     `json:"nights"`
	PromotionID  *uint   `json:"promotionId"`
}
