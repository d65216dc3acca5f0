package pricing

import (
	"testing"
	"time"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     []string
	}{
		{"three nights", "2024-01-01", "2024-01-04", []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{"one night", "2024-01-01", "2024-01-02", []string{"2024-01-01"}},
		{"zero nights", "2024-01-01", "2024-01-01", nil},
		{"check-out before check-in", "2024-01-04", "2024-01-01", nil},
		{"crosses month end", "2024-01-31", "2024-02-02", []string{"2024-01-31", "2024-02-01"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkIn, _ := time.Parse(DateLayout, tc.checkIn)
			checkOut, _ := time.Parse(DateLayout, tc.checkOut)
			nights := Nights(checkIn, checkOut)
			if len(nights) != len(tc.want) {
				t.Fatalf("expected %d nights, got %d", len(tc.want), len(nights))
			}
			for i, night := range nights {
				if FormatDate(night) != tc.want[i] {
					t.Errorf("night %d: expected %s, got %s", i, tc.want[i], FormatDate(night))
				}
			}
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 07/01/2024 là Chủ nhật
	sunday, _ := time.Parse(DateLayout, "2024-01-07")
	for i := 0; i < 7; i++ {
		if got := WeekdayIndex(sunday.AddDate(0, 0, i)); got != i {
			t.Errorf("day offset %d: expected index %d, got %d", i, i, got)
		}
	}
}

func TestBasePriceFor_Fallback(t *testing.T) {
	rates := RoomRates{
		WeekdayPrices: [7]int{0, 100, 0, 0, 0, 0, 0},
		FallbackPrice: 85,
	}
	monday, _ := time.Parse(DateLayout, "2024-01-01")
	if got := BasePriceFor(rates, monday); got != 100 {
		t.Errorf("expected configured price 100, got %d", got)
	}
	sunday, _ := time.Parse(DateLayout, "2024-01-07")
	if got := BasePriceFor(rates, sunday); got != 85 {
		t.Errorf("expected fallback 85, got %d", got)
	}
}
