package models

import (
	"testing"

	"stayinn/pricing"
)

func intPtr(v int) *int            { return &v }
func floatPtr(v float64) *float64  { return &v }

func TestPromotionOverride_FixedPriceWinsOverPercent(t *testing.T) {
	p := Promotion{FixedPrice: intPtr(90), DiscountPercent: floatPtr(20)}
	ov, ok := p.Override().(pricing.FixedPrice)
	if !ok {
		t.Fatalf("expected FixedPrice override, got %T", p.Override())
	}
	if ov.Amount != 90 {
		t.Errorf("expected amount 90, got %d", ov.Amount)
	}
}

func TestPromotionOverride_PercentOnly(t *testing.T) {
	p := Promotion{DiscountPercent: floatPtr(35)}
	ov, ok := p.Override().(pricing.PercentDiscount)
	if !ok {
		t.Fatalf("expected PercentDiscount override, got %T", p.Override())
	}
	if ov.Percent != 35 {
		t.Errorf("expected percent 35, got %v", ov.Percent)
	}
}

func TestPromotionOverride_NoneWhenBothUnset(t *testing.T) {
	p := Promotion{}
	if p.Override() != nil {
		t.Errorf("expected no override, got %T", p.Override())
	}
}

func TestRoomRates_LegacyPromoOnlyWhenComplete(t *testing.T) {
	room := Room{Price: 100, PromoPrice: 80}
	if room.Rates().LegacyPromo != nil {
		t.Error("promo without dates must not produce a legacy promo")
	}

	room.PromoFromDate = "2024-01-01"
	room.PromoToDate = "2024-01-31"
	lp := room.Rates().LegacyPromo
	if lp == nil || lp.Price != 80 {
		t.Fatalf("expected legacy promo with price 80, got %+v", lp)
	}
}
