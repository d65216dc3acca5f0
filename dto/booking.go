package dto

import "time"

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	RoomIDs      []uint `json:"roomIds" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`  // yyyy-MM-dd
	CheckOutDate string `json:"checkOutDate" binding:"required"` // yyyy-MM-dd
	GuestName    string `json:"guestName" binding:"required"`
	GuestEmail   string `json:"guestEmail" binding:"required"`
	GuestPhone   string `json:"guestPhone"`
	PromotionID  *uint  `json:"promotionId"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID            uint      `json:"id"`
	RoomIDs       []uint    `json:"roomIds"`
	CheckInDate   string    `json:"checkInDate"`
	CheckOutDate  string    `json:"checkOutDate"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestPhone    string    `json:"guestPhone"`
	Nights        int       `json:"nights"`
	NightlyRate   float64   `json:"nightlyRate"`
	TotalPrice    float64   `json:"totalPrice"`
	PromotionID   *uint     `json:"promotionId"`
	Status        int       `json:"status"`
	PaymentStatus int       `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PaymentWebhookRequest là payload callback từ cổng thanh toán
type PaymentWebhookRequest struct {
	BookingID  uint    `json:"bookingId" binding:"required"`
	Status     string  `json:"status" binding:"required"` // success | failed | refunded
	Reference  string  `json:"reference"`
	AmountPaid float64 `json:"amountPaid"`
}
