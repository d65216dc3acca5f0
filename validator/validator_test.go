package validator

import (
	"testing"

	"stayinn/dto"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidateStay(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{"valid stay", "2024-01-01", "2024-01-04", false},
		{"same day", "2024-01-01", "2024-01-01", true},
		{"reversed", "2024-01-04", "2024-01-01", true},
		{"bad format", "01/01/2024", "2024-01-04", true},
		{"empty", "", "2024-01-04", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStay(tc.checkIn, tc.checkOut)
			if tc.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePromotionWindow(t *testing.T) {
	if err := ValidatePromotionWindow("2024-01-01", "2024-01-31", intPtr(100), nil); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
	if err := ValidatePromotionWindow("2024-01-31", "2024-01-01", nil, nil); err == nil {
		t.Error("reversed window must be rejected")
	}
	if err := ValidatePromotionWindow("2024-01-01", "2024-01-31", nil, floatPtr(120)); err == nil {
		t.Error("percent above 100 must be rejected")
	}
	if err := ValidatePromotionWindow("2024-01-01", "2024-01-31", nil, floatPtr(100)); err != nil {
		t.Errorf("percent of exactly 100 is allowed: %v", err)
	}
	if err := ValidatePromotionWindow("2024-01-01", "2024-01-31", intPtr(-5), nil); err == nil {
		t.Error("negative fixed price must be rejected")
	}
}

func TestValidateRoomPrices(t *testing.T) {
	if err := ValidateRoomPrices(100, []dto.DayPrice{{Day: 0, Price: 90}}, 0, "", ""); err != nil {
		t.Errorf("valid prices rejected: %v", err)
	}
	if err := ValidateRoomPrices(100, []dto.DayPrice{{Day: 7, Price: 90}}, 0, "", ""); err == nil {
		t.Error("weekday index 7 must be rejected")
	}
	if err := ValidateRoomPrices(-1, nil, 0, "", ""); err == nil {
		t.Error("negative fallback price must be rejected")
	}
	if err := ValidateRoomPrices(100, nil, 80, "2024-01-31", "2024-01-01"); err == nil {
		t.Error("reversed promo window must be rejected")
	}
	if err := ValidateRoomPrices(100, nil, 80, "2024-01-01", "2024-01-31"); err != nil {
		t.Errorf("valid promo window rejected: %v", err)
	}
}
