package services

import (
	"testing"
	"time"

	"stayinn/constants"
	"stayinn/models"
	"stayinn/pricing"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(pricing.DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func dayPtr(t *testing.T, s string) *time.Time {
	d := day(t, s)
	return &d
}

func TestSelectActivePromotion_TodayMode(t *testing.T) {
	promotions := []models.Promotion{
		{ID: 1, FromDate: "2024-01-01", ToDate: "2024-01-10", Status: constants.PromotionStatusActive},
		{ID: 2, FromDate: "2024-02-01", ToDate: "2024-02-10", Status: constants.PromotionStatusActive},
	}

	got := SelectActivePromotion(promotions, nil, nil, day(t, "2024-01-05"))
	if got == nil || got.ID != 1 {
		t.Fatalf("expected promotion 1, got %+v", got)
	}

	if got := SelectActivePromotion(promotions, nil, nil, day(t, "2024-03-01")); got != nil {
		t.Fatalf("expected no promotion, got %+v", got)
	}
}

func TestSelectActivePromotion_IgnoresInactive(t *testing.T) {
	promotions := []models.Promotion{
		{ID: 1, FromDate: "2024-01-01", ToDate: "2024-01-31", Status: constants.PromotionStatusInactive},
	}
	if got := SelectActivePromotion(promotions, nil, nil, day(t, "2024-01-05")); got != nil {
		t.Fatalf("inactive promotion must not be selected, got %+v", got)
	}
}

func TestSelectActivePromotion_StayOverlap(t *testing.T) {
	promotions := []models.Promotion{
		{ID: 1, FromDate: "2024-01-03", ToDate: "2024-01-05", Status: constants.PromotionStatusActive},
	}

	// Kỳ lưu trú 01..04 (đêm cuối 03) giao với window
	got := SelectActivePromotion(promotions, dayPtr(t, "2024-01-01"), dayPtr(t, "2024-01-04"), day(t, "2023-12-01"))
	if got == nil || got.ID != 1 {
		t.Fatalf("expected overlap selection, got %+v", got)
	}

	// Kỳ lưu trú 01..03 có đêm cuối 02, trước window -> không chọn
	if got := SelectActivePromotion(promotions, dayPtr(t, "2024-01-01"), dayPtr(t, "2024-01-03"), day(t, "2023-12-01")); got != nil {
		t.Fatalf("stay ending before window must not match, got %+v", got)
	}
}

func TestSelectActivePromotion_MostRecentlyUpdatedWins(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	promotions := []models.Promotion{
		{ID: 1, FromDate: "2024-01-01", ToDate: "2024-01-31", Status: constants.PromotionStatusActive, UpdatedAt: older},
		{ID: 2, FromDate: "2024-01-01", ToDate: "2024-01-31", Status: constants.PromotionStatusActive, UpdatedAt: newer},
	}

	got := SelectActivePromotion(promotions, nil, nil, day(t, "2024-01-05"))
	if got == nil || got.ID != 2 {
		t.Fatalf("expected most recently updated promotion, got %+v", got)
	}
}
