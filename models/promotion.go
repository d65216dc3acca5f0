package models

import (
	"fmt"
	"time"

	"stayinn/pricing"
)

type Promotion struct {
	ID              uint      `json:"id" gorm:"primaryKey"` // ID cho khuyến mãi
	Name            string    `json:"name"`                 // Tên chương trình khuyến mãi
	Code            string    `json:"code"`                 // Mã chương trình
	FromDate        string    `json:"fromDate"`             // Ngày bắt đầu, yyyy-MM-dd
	ToDate          string    `json:"toDate"`               // Ngày kết thúc, yyyy-MM-dd
	FixedPrice      *int      `json:"fixedPrice"`           // Giá cố định mỗi đêm
	DiscountPercent *float64  `json:"discountPercent"`      // Phần trăm giảm (0..100)
	Status          int       `json:"status" gorm:"default:1"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Promotion) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be either 0 or 1", p.Status)
	}
	return nil
}

// Override chuyển hai cột giá về dạng biến thể cho pricing.
// Giá cố định thắng khi cả hai cột cùng được set.
func (p *Promotion) Override() pricing.Override {
	if p.FixedPrice != nil {
		return pricing.FixedPrice{Amount: *p.FixedPrice}
	}
	if p.DiscountPercent != nil {
		return pricing.PercentDiscount{Percent: *p.DiscountPercent}
	}
	return nil
}

// Promo chụp khuyến mãi về snapshot cho pricing.ResolvePrice
func (p *Promotion) Promo() *pricing.Promo {
	return &pricing.Promo{
		FromDate: p.FromDate,
		ToDate:   p.ToDate,
		Override: p.Override(),
	}
}
