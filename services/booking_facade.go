package services

import (
	"encoding/json"
	"time"

	"stayinn/builders"
	"stayinn/commands"
	"stayinn/constants"
	"stayinn/dto"
	"stayinn/errors"
	"stayinn/models"
	"stayinn/pricing"
	"stayinn/services/logger"

	"github.com/lib/pq"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingFacade đơn giản hóa quy trình đặt phòng: kiểm tra phòng trống,
// tính giá qua pricing, lưu booking, đẩy hàng đợi đồng bộ và thông báo ws
type BookingFacade struct {
	db  *gorm.DB
	m   *melody.Melody
	log logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB, m *melody.Melody) *BookingFacade {
	return &BookingFacade{
		db:  db,
		m:   m,
		log: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// CreateBooking xử lý một yêu cầu đặt phòng đã qua validate ở controller
func (f *BookingFacade) CreateBooking(request dto.CreateBookingRequest) (*models.Booking, error) {
	checkIn, err := time.Parse(pricing.DateLayout, request.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := time.Parse(pricing.DateLayout, request.CheckOutDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	nights := pricing.Nights(checkIn, checkOut)
	if len(nights) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStay, "Kỳ lưu trú phải có ít nhất một đêm", nil)
	}

	var rooms []models.Room
	if err := f.db.Where("room_id IN ?", request.RoomIDs).Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tải danh sách phòng", err)
	}
	if len(rooms) != len(request.RoomIDs) {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Một số phòng không tồn tại", errors.ErrRoomNotFound)
	}
	for _, room := range rooms {
		if room.Status == constants.RoomStatusMaintenance || room.Status == constants.RoomStatusHidden {
			return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng "+room.RoomName+" hiện không nhận đặt", errors.ErrRoomNotAvailable)
		}
	}

	if err := f.checkAvailability(request.RoomIDs, request.CheckInDate, request.CheckOutDate); err != nil {
		return nil, err
	}

	promotion, err := f.resolvePromotion(request.PromotionID, &checkIn, &checkOut)
	if err != nil {
		return nil, err
	}

	var promo *pricing.Promo
	var promotionID *uint
	if promotion != nil {
		promo = promotion.Promo()
		promotionID = &promotion.ID
	}

	// Mỗi phòng tính giá độc lập, tổng mỗi đêm là cộng dồn các phòng
	nightlyRate := 0.0
	for _, room := range rooms {
		quote := pricing.ResolvePrice(room.Rates(), &checkIn, &checkOut, promo, time.Now())
		nightlyRate += quote.AveragePrice
	}
	totalPrice := nightlyRate * float64(len(nights))

	booking := builders.NewBookingBuilder().
		WithRooms(request.RoomIDs).
		WithStay(request.CheckInDate, request.CheckOutDate).
		WithGuestInfo(request.GuestName, request.GuestEmail, request.GuestPhone).
		WithPricing(len(nights), nightlyRate, totalPrice).
		WithPromotion(promotionID).
		WithStatus(models.BookingStatusPending).
		Build()

	if err := f.db.Create(booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu booking", err)
	}

	f.enqueueSync(booking)
	f.broadcast(booking)

	return booking, nil
}

// checkAvailability chặn đặt trùng: tồn tại booking chưa hủy giao với kỳ lưu trú
func (f *BookingFacade) checkAvailability(roomIDs []uint, checkIn, checkOut string) error {
	var count int64
	err := f.db.Model(&models.Booking{}).
		Where("room_ids && ?", pq.Int64Array(int64Array(roomIDs))).
		Where("status IN ?", []int{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra phòng trống", err)
	}
	if count > 0 {
		return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng đã được đặt trong khoảng thời gian này", errors.ErrRoomNotAvailable)
	}
	return nil
}

func (f *BookingFacade) resolvePromotion(promotionID *uint, checkIn, checkOut *time.Time) (*models.Promotion, error) {
	if promotionID == nil {
		return LoadActivePromotion(checkIn, checkOut, time.Now())
	}

	var promotion models.Promotion
	if err := f.db.First(&promotion, *promotionID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khuyến mãi", errors.ErrPromotionNotFound)
	}
	if promotion.Status != constants.PromotionStatusActive {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Khuyến mãi không còn hiệu lực", errors.ErrPromotionInactive)
	}
	return &promotion, nil
}

func (f *BookingFacade) enqueueSync(booking *models.Booking) {
	for _, roomID := range booking.RoomIDs {
		cmd := commands.NewEnqueueSyncCommand(uint(roomID), constants.SyncActionBookingPush, booking, f.db)
		if err := cmd.Execute(); err != nil {
			f.log.Error("Không thể tạo sync task cho phòng %d: %v", roomID, err)
		}
	}
}

func (f *BookingFacade) broadcast(booking *models.Booking) {
	if f.m == nil {
		return
	}
	message, err := json.Marshal(map[string]interface{}{
		"event":   "booking_created",
		"booking": booking.ID,
		"rooms":   booking.RoomIDs,
	})
	if err != nil {
		return
	}
	if err := f.m.Broadcast(message); err != nil {
		f.log.Warn("Không thể broadcast booking %d: %v", booking.ID, err)
	}
}

func int64Array(ids []uint) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}
