package controllers

import (
	"strconv"

	"stayinn/dto"
	"stayinn/errors"
	"stayinn/models"
	"stayinn/response"
	"stayinn/services"
	"stayinn/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingController xử lý các endpoint đặt phòng
type BookingController struct {
	DB     *gorm.DB
	Facade *services.BookingFacade
}

// NewBookingController tạo controller với facade đặt phòng
func NewBookingController(db *gorm.DB, m *melody.Melody) *BookingController {
	return &BookingController{
		DB:     db,
		Facade: services.NewBookingFacade(db, m),
	}
}

func bookingResponse(booking *models.Booking) dto.BookingResponse {
	roomIDs := make([]uint, 0, len(booking.RoomIDs))
	for _, id := range booking.RoomIDs {
		roomIDs = append(roomIDs, uint(id))
	}
	return dto.BookingResponse{
		ID:            booking.ID,
		RoomIDs:       roomIDs,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		GuestPhone:    booking.GuestPhone,
		Nights:        booking.Nights,
		NightlyRate:   booking.NightlyRate,
		TotalPrice:    booking.TotalPrice,
		PromotionID:   booking.PromotionID,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

// CreateBooking đặt phòng từ trang checkout
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStay(request.CheckInDate, request.CheckOutDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(request.RoomIDs) == 0 {
		response.BadRequest(c, "Phải chọn ít nhất một phòng")
		return
	}

	booking, err := ctl.Facade.CreateBooking(request)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			switch appErr.Code {
			case errors.ErrCodeDBError:
				response.ServerError(c)
			case errors.ErrCodeRoomUnavailable:
				response.Conflict(c, appErr.Message)
			default:
				response.BadRequest(c, appErr.Message)
			}
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, bookingResponse(booking))
}

// GetBookings lấy danh sách booking cho back-office
func (ctl *BookingController) GetBookings(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	guestFilter := c.Query("guest")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := ctl.DB.Model(&models.Booking{})
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if guestFilter != "" {
		tx = tx.Where("guest_name ILIKE ? OR guest_email ILIKE ?", "%"+guestFilter+"%", "%"+guestFilter+"%")
	}
	if fromDateStr != "" {
		if !validator.ValidDate(fromDateStr) {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		tx = tx.Where("check_in_date >= ?", fromDateStr)
	}
	if toDateStr != "" {
		if !validator.ValidDate(toDateStr) {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		tx = tx.Where("check_out_date <= ?", toDateStr)
	}

	var totalBookings int64
	if err := tx.Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, bookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

// GetBookingDetail lấy chi tiết một booking
func (ctl *BookingController) GetBookingDetail(c *gin.Context) {
	var booking models.Booking
	if err := ctl.DB.First(&booking, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, bookingResponse(&booking))
}

// ChangeBookingStatus chuyển trạng thái booking theo state machine
func (ctl *BookingController) ChangeBookingStatus(c *gin.Context) {
	var request struct {
		ID     uint   `json:"id" binding:"required"`
		Action string `json:"action" binding:"required"` // confirm | cancel | complete
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := ctl.DB.First(&booking, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetBookingState(booking.Status)
	var err error
	switch request.Action {
	case "confirm":
		err = state.Confirm(&booking)
	case "cancel":
		err = state.Cancel(&booking)
	case "complete":
		err = state.Complete(&booking)
	default:
		response.BadRequest(c, "Action không hợp lệ")
		return
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, bookingResponse(&booking))
}
