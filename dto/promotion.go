package dto

import "time"

// PromotionResponse là DTO cho response của promotion
type PromotionResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Code            string    `json:"code"`
	FromDate        string    `json:"fromDate"`
	ToDate          string    `json:"toDate"`
	FixedPrice      *int      `json:"fixedPrice"`
	DiscountPercent *float64  `json:"discountPercent"`
	Status          int       `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreatePromotionRequest là DTO cho yêu cầu tạo mới promotion
type CreatePromotionRequest struct {
	Name            string   `json:"name" binding:"required"`
	Code            string   `json:"code"`
	FromDate        string   `json:"fromDate" binding:"required"`
	ToDate          string   `json:"toDate" binding:"required"`
	FixedPrice      *int     `json:"fixedPrice"`
	DiscountPercent *float64 `json:"discountPercent"`
}

// UpdatePromotionRequest là DTO cho yêu cầu cập nhật promotion
type UpdatePromotionRequest struct {
	ID              uint     `json:"id" binding:"required"`
	Name            string   `json:"name"`
	Code            string   `json:"code"`
	FromDate        string   `json:"fromDate"`
	ToDate          string   `json:"toDate"`
	FixedPrice      *int     `json:"fixedPrice"`
	DiscountPercent *float64 `json:"discountPercent"`
}
