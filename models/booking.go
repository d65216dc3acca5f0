package models

import (
	"time"

	"github.com/lib/pq"
)

type Booking struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	RoomIDs      pq.Int64Array `json:"roomIds" gorm:"type:integer[]"`
	CheckInDate  string        `json:"checkInDate"`  // yyyy-MM-dd
	CheckOutDate string        `json:"checkOutDate"` // yyyy-MM-dd
	GuestName    string        `json:"guestName"`
	GuestEmail   string        `json:"guestEmail"`
	GuestPhone   string        `json:"guestPhone"`
	Nights       int           `json:"nights"`
	NightlyRate  float64       `json:"nightlyRate"` // Giá trung bình mỗi đêm từ pricing
	TotalPrice   float64       `json:"totalPrice"`
	PromotionID  *uint         `json:"promotionId"` // Khuyến mãi đã áp vào lúc đặt

	Status        int    `json:"status" gorm:"default:0"`
	PaymentRef    string `json:"paymentRef"` // Mã giao dịch từ cổng thanh toán
	PaymentStatus int    `json:"paymentStatus" gorm:"default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
