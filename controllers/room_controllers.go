package controllers

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stayinn/config"
	"stayinn/constants"
	"stayinn/dto"
	"stayinn/models"
	"stayinn/pricing"
	"stayinn/response"
	"stayinn/services"
	"stayinn/validator"

	"github.com/gin-gonic/gin"
)

// parseStayQuery đọc checkIn/checkOut từ query string, thiếu một trong hai
// thì tính giá theo ngày hôm nay
func parseStayQuery(c *gin.Context) (*time.Time, *time.Time, bool) {
	checkInStr := c.Query("checkIn")
	checkOutStr := c.Query("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		return nil, nil, true
	}

	checkIn, err := time.Parse(pricing.DateLayout, checkInStr)
	if err != nil {
		return nil, nil, false
	}
	checkOut, err := time.Parse(pricing.DateLayout, checkOutStr)
	if err != nil {
		return nil, nil, false
	}
	return &checkIn, &checkOut, true
}

// quoteForRoom tính giá hiển thị cho một phòng với khuyến mãi đang áp
func quoteForRoom(room *models.Room, checkIn, checkOut *time.Time) pricing.Quote {
	now := time.Now()
	promotion, err := services.LoadActivePromotion(checkIn, checkOut, now)
	if err != nil {
		log.Printf("Không thể tải khuyến mãi: %v", err)
		promotion = nil
	}

	var promo *pricing.Promo
	if promotion != nil {
		promo = promotion.Promo()
	}
	return pricing.ResolvePrice(room.Rates(), checkIn, checkOut, promo, now)
}

// applyDaysPrice ghi bảng giá theo thứ vào các cột tương ứng của room
func applyDaysPrice(room *models.Room, daysPrice []dto.DayPrice) {
	for _, dp := range daysPrice {
		switch dp.Day {
		case 0:
			room.SundayPrice = dp.Price
		case 1:
			room.MondayPrice = dp.Price
		case 2:
			room.TuesdayPrice = dp.Price
		case 3:
			room.WednesdayPrice = dp.Price
		case 4:
			room.ThursdayPrice = dp.Price
		case 5:
			room.FridayPrice = dp.Price
		case 6:
			room.SaturdayPrice = dp.Price
		}
	}
}

func daysPriceOf(room *models.Room) []dto.DayPrice {
	prices := room.Rates().WeekdayPrices
	daysPrice := make([]dto.DayPrice, 0, 7)
	for day, price := range prices {
		daysPrice = append(daysPrice, dto.DayPrice{Day: day, Price: price})
	}
	return daysPrice
}

// GetAllRooms lấy danh sách phòng kèm giá hiển thị, có cache Redis
func GetAllRooms(c *gin.Context) {
	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		response.BadRequest(c, "Ngày phải theo định dạng yyyy-MM-dd")
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")
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

	var allRooms []models.Room
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomsAll, &allRooms); err != nil || len(allRooms) == 0 {
		if err := config.DB.Order("updated_at desc").Find(&allRooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyRoomsAll, allRooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu dữ liệu vào Redis: %v", err)
		}
	}

	filtered := make([]models.Room, 0, len(allRooms))
	for _, room := range allRooms {
		if statusFilter != "" {
			status, err := strconv.Atoi(statusFilter)
			if err != nil || room.Status != status {
				continue
			}
		}
		if nameFilter != "" {
			decodedNameFilter, err := url.QueryUnescape(nameFilter)
			if err != nil {
				response.ServerError(c)
				return
			}
			if services.Similarity(services.NormalizeInput(room.RoomName), services.NormalizeInput(decodedNameFilter)) < 0.4 &&
				!containsNormalized(room.RoomName, decodedNameFilter) {
				continue
			}
		}
		filtered = append(filtered, room)
	}

	total := len(filtered)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	roomResponses := make([]dto.RoomResponse, 0, end-start)
	for _, room := range filtered[start:end] {
		quote := quoteForRoom(&room, checkIn, checkOut)
		roomResponses = append(roomResponses, dto.RoomResponse{
			RoomId:       room.RoomId,
			RoomName:     room.RoomName,
			Type:         room.Type,
			NumBed:       room.NumBed,
			NumTolet:     room.NumTolet,
			Acreage:      room.Acreage,
			People:       room.People,
			Avatar:       room.Avatar,
			Status:       room.Status,
			AveragePrice: quote.AveragePrice,
			HasDateRange: quote.HasDateRange,
			CreatedAt:    room.CreatedAt,
			UpdatedAt:    room.UpdatedAt,
		})
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

// GetRoomDetail lấy chi tiết phòng kèm bảng giá và giá hiển thị
func GetRoomDetail(c *gin.Context) {
	checkIn, checkOut, ok := parseStayQuery(c)
	if !ok {
		response.BadRequest(c, "Ngày phải theo định dạng yyyy-MM-dd")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", c.Param("id")).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	quote := quoteForRoom(&room, checkIn, checkOut)
	response.Success(c, dto.RoomDetailResponse{
		RoomId:        room.RoomId,
		RoomName:      room.RoomName,
		Type:          room.Type,
		NumBed:        room.NumBed,
		NumTolet:      room.NumTolet,
		Acreage:       room.Acreage,
		People:        room.People,
		Description:   room.Description,
		Avatar:        room.Avatar,
		Img:           room.Img,
		Status:        room.Status,
		Price:         room.Price,
		DaysPrice:     daysPriceOf(&room),
		PromoPrice:    room.PromoPrice,
		PromoFromDate: room.PromoFromDate,
		PromoToDate:   room.PromoToDate,
		AveragePrice:  quote.AveragePrice,
		HasDateRange:  quote.HasDateRange,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	})
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomPrices(request.Price, request.DaysPrice, request.PromoPrice, request.PromoFromDate, request.PromoToDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		RoomName:      request.RoomName,
		Type:          request.Type,
		NumBed:        request.NumBed,
		NumTolet:      request.NumTolet,
		Acreage:       request.Acreage,
		People:        request.People,
		Description:   request.Description,
		Avatar:        request.Avatar,
		Img:           request.Img,
		Price:         request.Price,
		PromoPrice:    request.PromoPrice,
		PromoFromDate: request.PromoFromDate,
		PromoToDate:   request.PromoToDate,
		Status:        constants.RoomStatusAvailable,
	}
	applyDaysPrice(&room, request.DaysPrice)

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	enqueueRateSync(room)

	response.Success(c, room)
}

// UpdateRoom cập nhật phòng, bảng giá và khuyến mãi gắn trên phòng
func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", request.RoomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := validator.ValidateRoomPrices(request.Price, request.DaysPrice, request.PromoPrice, request.PromoFromDate, request.PromoToDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.RoomName != "" {
		room.RoomName = request.RoomName
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if request.Avatar != "" {
		room.Avatar = request.Avatar
	}
	if request.Img != nil {
		room.Img = request.Img
	}
	if request.NumBed > 0 {
		room.NumBed = request.NumBed
	}
	if request.NumTolet > 0 {
		room.NumTolet = request.NumTolet
	}
	if request.Acreage > 0 {
		room.Acreage = request.Acreage
	}
	if request.People > 0 {
		room.People = request.People
	}
	if request.Price > 0 {
		room.Price = request.Price
	}
	applyDaysPrice(&room, request.DaysPrice)
	room.PromoPrice = request.PromoPrice
	room.PromoFromDate = request.PromoFromDate
	room.PromoToDate = request.PromoToDate
	room.UpdatedAt = time.Now()

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	enqueueRateSync(room)

	response.Success(c, room)
}

// ChangeRoomStatus đổi trạng thái phòng
func ChangeRoomStatus(c *gin.Context) {
	var request dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", request.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&room).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	enqueueAvailabilitySync(room)

	response.Success(c, room)
}

func containsNormalized(haystack, needle string) bool {
	n := services.NormalizeInput(needle)
	if n == "" {
		return false
	}
	return strings.Contains(services.NormalizeInput(haystack), n)
}
