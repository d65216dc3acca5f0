package pricing

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func datePtr(t *testing.T, s string) *time.Time {
	d := date(t, s)
	return &d
}

// 2024-01-01 là thứ Hai
var testRates = RoomRates{
	WeekdayPrices: [7]int{90, 100, 120, 110, 130, 150, 160},
	FallbackPrice: 80,
}

func TestResolvePrice_SingleDay_Baseline(t *testing.T) {
	got := ResolvePrice(testRates, nil, nil, nil, date(t, "2024-01-01"))
	if got.AveragePrice != 100 {
		t.Errorf("expected weekday base 100, got %v", got.AveragePrice)
	}
	if got.HasDateRange {
		t.Error("expected hasDateRange=false without dates")
	}
}

func TestResolvePrice_SingleDay_FallbackWhenWeekdayPriceZero(t *testing.T) {
	rates := testRates
	rates.WeekdayPrices[1] = 0
	got := ResolvePrice(rates, nil, nil, nil, date(t, "2024-01-01"))
	if got.AveragePrice != 80 {
		t.Errorf("expected fallback price 80, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_PromoFixedPrice(t *testing.T) {
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-31", Override: FixedPrice{Amount: 75}}
	got := ResolvePrice(testRates, nil, nil, promo, date(t, "2024-01-01"))
	if got.AveragePrice != 75 {
		t.Errorf("expected fixed promo price 75, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_PromoPercent(t *testing.T) {
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-31", Override: PercentDiscount{Percent: 25}}
	got := ResolvePrice(testRates, nil, nil, promo, date(t, "2024-01-01"))
	if got.AveragePrice != 75 {
		t.Errorf("expected 100*(1-25/100)=75, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_PromoBeatsLegacyPromo(t *testing.T) {
	rates := testRates
	rates.LegacyPromo = &LegacyPromo{Price: 50, FromDate: "2024-01-01", ToDate: "2024-01-31"}
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-31", Override: FixedPrice{Amount: 75}}

	got := ResolvePrice(rates, nil, nil, promo, date(t, "2024-01-01"))
	if got.AveragePrice != 75 {
		t.Errorf("active promo must win over legacy promo, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_LegacyPromoWhenNoActivePromo(t *testing.T) {
	rates := testRates
	rates.LegacyPromo = &LegacyPromo{Price: 50, FromDate: "2024-01-01", ToDate: "2024-01-31"}

	got := ResolvePrice(rates, nil, nil, nil, date(t, "2024-01-01"))
	if got.AveragePrice != 50 {
		t.Errorf("expected legacy promo price 50, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_PromoOutsideWindowFallsToLegacy(t *testing.T) {
	rates := testRates
	rates.LegacyPromo = &LegacyPromo{Price: 50, FromDate: "2024-01-01", ToDate: "2024-01-31"}
	promo := &Promo{FromDate: "2024-02-01", ToDate: "2024-02-29", Override: FixedPrice{Amount: 75}}

	got := ResolvePrice(rates, nil, nil, promo, date(t, "2024-01-01"))
	if got.AveragePrice != 50 {
		t.Errorf("promo outside its window must be ignored, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_PromoWithoutOverrideFallsToLegacy(t *testing.T) {
	rates := testRates
	rates.LegacyPromo = &LegacyPromo{Price: 50, FromDate: "2024-01-01", ToDate: "2024-01-31"}
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-31"}

	got := ResolvePrice(rates, nil, nil, promo, date(t, "2024-01-01"))
	if got.AveragePrice != 50 {
		t.Errorf("promo without price effect must fall through, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_SingleDay_WindowIsInclusiveBothEnds(t *testing.T) {
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-03", Override: FixedPrice{Amount: 75}}

	for _, day := range []string{"2024-01-01", "2024-01-03"} {
		got := ResolvePrice(testRates, nil, nil, promo, date(t, day))
		if got.AveragePrice != 75 {
			t.Errorf("day %s must be inside the inclusive window, got %v", day, got.AveragePrice)
		}
	}

	got := ResolvePrice(testRates, nil, nil, promo, date(t, "2024-01-04"))
	if got.AveragePrice == 75 {
		t.Error("day after toDate must be outside the window")
	}
}

func TestResolvePrice_DateRange_Averaging(t *testing.T) {
	// 3 đêm: 01, 02, 03/01 -> Mon 100, Tue 120, Wed 110
	got := ResolvePrice(testRates, datePtr(t, "2024-01-01"), datePtr(t, "2024-01-04"), nil, date(t, "2023-12-15"))
	want := (100.0 + 120.0 + 110.0) / 3
	if got.AveragePrice != want {
		t.Errorf("expected average %v, got %v", want, got.AveragePrice)
	}
	if !got.HasDateRange {
		t.Error("expected hasDateRange=true")
	}
}

func TestResolvePrice_DateRange_PartialNightDiscount(t *testing.T) {
	// Khuyến mãi chỉ phủ đêm 02/01: [100, 60, 110] -> 90
	promo := &Promo{FromDate: "2024-01-02", ToDate: "2024-01-02", Override: PercentDiscount{Percent: 50}}
	got := ResolvePrice(testRates, datePtr(t, "2024-01-01"), datePtr(t, "2024-01-04"), promo, date(t, "2023-12-15"))
	if got.AveragePrice != 90 {
		t.Errorf("expected average 90, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_DateRange_PerNightPrecedence(t *testing.T) {
	// Promo phủ đêm đầu, legacy promo phủ đêm thứ hai, đêm cuối giá gốc
	rates := testRates
	rates.LegacyPromo = &LegacyPromo{Price: 40, FromDate: "2024-01-02", ToDate: "2024-01-02"}
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-01", Override: FixedPrice{Amount: 70}}

	got := ResolvePrice(rates, datePtr(t, "2024-01-01"), datePtr(t, "2024-01-04"), promo, date(t, "2023-12-15"))
	want := (70.0 + 40.0 + 110.0) / 3
	if got.AveragePrice != want {
		t.Errorf("expected average %v, got %v", want, got.AveragePrice)
	}
}

func TestResolvePrice_DateRange_FullPercentYieldsZeroNight(t *testing.T) {
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-01", Override: PercentDiscount{Percent: 100}}
	got := ResolvePrice(testRates, datePtr(t, "2024-01-01"), datePtr(t, "2024-01-02"), promo, date(t, "2023-12-15"))
	if got.AveragePrice != 0 {
		t.Errorf("100%% discount must price the night at 0, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_DateRange_Degenerate(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"zero nights", "2024-01-01", "2024-01-01"},
		{"negative range", "2024-01-05", "2024-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolvePrice(testRates, datePtr(t, tc.checkIn), datePtr(t, tc.checkOut), nil, date(t, "2023-12-15"))
			want := float64(BasePriceFor(testRates, date(t, tc.checkIn)))
			if got.AveragePrice != want {
				t.Errorf("expected check-in weekday price %v, got %v", want, got.AveragePrice)
			}
			if !got.HasDateRange {
				t.Error("degenerate range still reports hasDateRange=true")
			}
		})
	}
}

func TestResolvePrice_MissingEitherDateUsesToday(t *testing.T) {
	promo := &Promo{FromDate: "2024-01-01", ToDate: "2024-01-31", Override: FixedPrice{Amount: 75}}

	got := ResolvePrice(testRates, datePtr(t, "2024-01-01"), nil, promo, date(t, "2024-02-05"))
	if got.HasDateRange {
		t.Error("single missing date must use single-day mode")
	}
	// today 05/02 nằm ngoài window -> giá gốc thứ Hai
	if got.AveragePrice != 100 {
		t.Errorf("expected base price 100, got %v", got.AveragePrice)
	}
}

func TestResolvePrice_Idempotent(t *testing.T) {
	rates := testRates
	rates.LegacyPromo = &LegacyPromo{Price: 40, FromDate: "2024-01-01", ToDate: "2024-01-31"}
	promo := &Promo{FromDate: "2024-01-02", ToDate: "2024-01-03", Override: PercentDiscount{Percent: 30}}

	first := ResolvePrice(rates, datePtr(t, "2024-01-01"), datePtr(t, "2024-01-04"), promo, date(t, "2023-12-15"))
	second := ResolvePrice(rates, datePtr(t, "2024-01-01"), datePtr(t, "2024-01-04"), promo, date(t, "2023-12-15"))
	if first != second {
		t.Errorf("identical inputs must produce identical quotes: %v vs %v", first, second)
	}
}
