package models

import (
	"encoding/json"
	"fmt"
	"time"

	"stayinn/pricing"
)

type Room struct {
	RoomId      uint            `json:"id" gorm:"primaryKey"`
	RoomName    string          `json:"roomName"`
	Type        uint            `json:"type"`
	NumBed      int             `json:"numBed"`
	NumTolet    int             `json:"numTolet"`
	Acreage     int             `json:"acreage"`
	People      int             `json:"people"`
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`

	// Price là giá mặc định, dùng khi giá theo thứ bằng 0
	Price int `json:"price"`

	// Giá theo thứ trong tuần, index 0 là Chủ nhật
	SundayPrice    int `json:"sundayPrice"`
	MondayPrice    int `json:"mondayPrice"`
	TuesdayPrice   int `json:"tuesdayPrice"`
	WednesdayPrice int `json:"wednesdayPrice"`
	ThursdayPrice  int `json:"thursdayPrice"`
	FridayPrice    int `json:"fridayPrice"`
	SaturdayPrice  int `json:"saturdayPrice"`

	// Khuyến mãi gắn trực tiếp trên phòng
	PromoPrice    int    `json:"promoPrice"`
	PromoFromDate string `json:"promoFromDate"`
	PromoToDate   string `json:"promoToDate"`

	Status    int       `json:"status" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 3", r.Status)
	}
	return nil
}

// Rates chụp bảng giá của phòng cho pricing.ResolvePrice
func (r *Room) Rates() pricing.RoomRates {
	rates := pricing.RoomRates{
		WeekdayPrices: [7]int{
			r.SundayPrice,
			r.MondayPrice,
			r.TuesdayPrice,
			r.WednesdayPrice,
			r.ThursdayPrice,
			r.FridayPrice,
			r.SaturdayPrice,
		},
		FallbackPrice: r.Price,
	}
	if r.PromoPrice > 0 && r.PromoFromDate != "" && r.PromoToDate != "" {
		rates.LegacyPromo = &pricing.LegacyPromo{
			Price:    r.PromoPrice,
			FromDate: r.PromoFromDate,
			ToDate:   r.PromoToDate,
		}
	}
	return rates
}
