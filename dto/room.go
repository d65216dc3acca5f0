package dto

import (
	"encoding/json"
	"time"
)

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	RoomName      string          `json:"roomName" binding:"required"`
	Type          uint            `json:"type"`
	NumBed        int             `json:"numBed"`
	NumTolet      int             `json:"numTolet"`
	Acreage       int             `json:"acreage"`
	People        int             `json:"people"`
	Description   string          `json:"description"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img"`
	Price         int             `json:"price" binding:"required"`
	DaysPrice     []DayPrice      `json:"daysPrice"`
	PromoPrice    int             `json:"promoPrice"`
	PromoFromDate string          `json:"promoFromDate"`
	PromoToDate   string          `json:"promoToDate"`
}

// UpdateRoomRequest là DTO cho request cập nhật room
type UpdateRoomRequest struct {
	RoomId        uint            `json:"id" binding:"required"`
	RoomName      string          `json:"roomName"`
	Type          uint            `json:"type"`
	NumBed        int             `json:"numBed"`
	NumTolet      int             `json:"numTolet"`
	Acreage       int             `json:"acreage"`
	People        int             `json:"people"`
	Description   string          `json:"description"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img"`
	Price         int             `json:"price"`
	DaysPrice     []DayPrice      `json:"daysPrice"`
	PromoPrice    int             `json:"promoPrice"`
	PromoFromDate string          `json:"promoFromDate"`
	PromoToDate   string          `json:"promoToDate"`
}

// DayPrice là DTO cho giá theo thứ trong tuần, Day theo index 0 = Chủ nhật
type DayPrice struct {
	Day   int `json:"day"`
	Price int `json:"price"`
}

// RoomResponse là DTO cho danh sách phòng phía khách
type RoomResponse struct {
	RoomId       uint      `json:"id"`
	RoomName     string    `json:"roomName"`
	Type         uint      `json:"type"`
	NumBed       int       `json:"numBed"`
	NumTolet     int       `json:"numTolet"`
	Acreage      int       `json:"acreage"`
	People       int       `json:"people"`
	Avatar       string    `json:"avatar"`
	Status       int       `json:"status"`
	AveragePrice float64   `json:"averagePrice"`
	HasDateRange bool      `json:"hasDateRange"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RoomDetailResponse là DTO cho chi tiết phòng
type RoomDetailResponse struct {
	RoomId        uint            `json:"id"`
	RoomName      string          `json:"roomName"`
	Type          uint            `json:"type"`
	NumBed        int             `json:"numBed"`
	NumTolet      int             `json:"numTolet"`
	Acreage       int             `json:"acreage"`
	People        int             `json:"people"`
	Description   string          `json:"description"`
	Avatar        string          `json:"avatar"`
	Img           json.RawMessage `json:"img"`
	Status        int             `json:"status"`
	Price         int             `json:"price"`
	DaysPrice     []DayPrice      `json:"daysPrice"`
	PromoPrice    int             `json:"promoPrice"`
	PromoFromDate string          `json:"promoFromDate"`
	PromoToDate   string          `json:"promoToDate"`
	AveragePrice  float64         `json:"averagePrice"`
	HasDateRange  bool            `json:"hasDateRange"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
