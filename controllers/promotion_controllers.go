package controllers

import (
	"net/url"
	"strconv"
	"time"

	"stayinn/config"
	"stayinn/dto"
	"stayinn/models"
	"stayinn/response"
	"stayinn/validator"

	"github.com/gin-gonic/gin"
)

// GetPromotions lấy danh sách khuyến mãi cho back-office
func GetPromotions(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")
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

	tx := config.DB.Model(&models.Promotion{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	// Ngày lưu dạng yyyy-MM-dd nên so sánh chuỗi trực tiếp
	if fromDateStr != "" {
		if !validator.ValidDate(fromDateStr) {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		tx = tx.Where("from_date >= ?", fromDateStr)
	}
	if toDateStr != "" {
		if !validator.ValidDate(toDateStr) {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		tx = tx.Where("to_date <= ?", toDateStr)
	}

	var totalPromotions int64
	if err := tx.Count(&totalPromotions).Error; err != nil {
		response.ServerError(c)
		return
	}
	tx = tx.Order("updated_at desc")

	var promotions []models.Promotion
	if err := tx.Offset(page * limit).Limit(limit).Find(&promotions).Error; err != nil {
		response.ServerError(c)
		return
	}

	var promotionResponses []dto.PromotionResponse
	for _, promotion := range promotions {
		promotionResponses = append(promotionResponses, dto.PromotionResponse{
			ID:              promotion.ID,
			Name:            promotion.Name,
			Code:            promotion.Code,
			FromDate:        promotion.FromDate,
			ToDate:          promotion.ToDate,
			FixedPrice:      promotion.FixedPrice,
			DiscountPercent: promotion.DiscountPercent,
			Status:          promotion.Status,
			CreatedAt:       promotion.CreatedAt,
			UpdatedAt:       promotion.UpdatedAt,
		})
	}

	response.SuccessWithPagination(c, promotionResponses, page, limit, int(totalPromotions))
}

// GetPromotionDetail lấy chi tiết một khuyến mãi
func GetPromotionDetail(c *gin.Context) {
	var promotion models.Promotion
	if err := config.DB.Where("id = ?", c.Param("id")).First(&promotion).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, promotion)
}

// CreatePromotion tạo khuyến mãi mới
func CreatePromotion(c *gin.Context) {
	var request dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePromotionWindow(request.FromDate, request.ToDate, request.FixedPrice, request.DiscountPercent); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	promotion := models.Promotion{
		Name:            request.Name,
		Code:            request.Code,
		FromDate:        request.FromDate,
		ToDate:          request.ToDate,
		FixedPrice:      request.FixedPrice,
		DiscountPercent: request.DiscountPercent,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()

	response.Success(c, promotion)
}

// UpdatePromotion cập nhật khuyến mãi
func UpdatePromotion(c *gin.Context) {
	var request dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		promotion.Name = request.Name
	}
	if request.Code != "" {
		promotion.Code = request.Code
	}
	if request.FromDate != "" {
		promotion.FromDate = request.FromDate
	}
	if request.ToDate != "" {
		promotion.ToDate = request.ToDate
	}
	if request.FixedPrice != nil {
		promotion.FixedPrice = request.FixedPrice
	}
	if request.DiscountPercent != nil {
		promotion.DiscountPercent = request.DiscountPercent
	}

	if err := validator.ValidatePromotionWindow(promotion.FromDate, promotion.ToDate, promotion.FixedPrice, promotion.DiscountPercent); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	promotion.UpdatedAt = time.Now()

	if err := config.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()

	response.Success(c, promotion)
}

// DeletePromotion xóa khuyến mãi
func DeletePromotion(c *gin.Context) {
	id := c.Param("id")
	if err := config.DB.Delete(&models.Promotion{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()

	response.Success(c, nil)
}

// ChangePromotionStatus bật/tắt khuyến mãi
func ChangePromotionStatus(c *gin.Context) {
	var request dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var promotion models.Promotion
	if err := config.DB.First(&promotion, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	promotion.Status = request.Status
	if err := promotion.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&promotion).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()

	response.Success(c, promotion)
}
