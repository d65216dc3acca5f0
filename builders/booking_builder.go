package builders

import (
	"stayinn/models"

	"github.com/lib/pq"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithRooms thêm danh sách phòng
func (b *BookingBuilder) WithRooms(roomIDs []uint) *BookingBuilder {
	ids := make(pq.Int64Array, 0, len(roomIDs))
	for _, id := range roomIDs {
		ids = append(ids, int64(id))
	}
	b.booking.RoomIDs = ids
	return b
}

// WithStay thêm thời gian nhận và trả phòng
func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestEmail, guestPhone string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestEmail = guestEmail
	b.booking.GuestPhone = guestPhone
	return b
}

// WithPricing thêm kết quả tính giá
func (b *BookingBuilder) WithPricing(nights int, nightlyRate, totalPrice float64) *BookingBuilder {
	b.booking.Nights = nights
	b.booking.NightlyRate = nightlyRate
	b.booking.TotalPrice = totalPrice
	return b
}

// WithPromotion gắn khuyến mãi đã áp
func (b *BookingBuilder) WithPromotion(promotionID *uint) *BookingBuilder {
	b.booking.PromotionID = promotionID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
