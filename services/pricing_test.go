package services

import (
	"testing"

	"stay/models"
)

func TestResolveNightlyRate(t *testing.T) {
	cases := []struct {
		name         string
		table        models.PriceTable
		mealPlan     int
		wantPrice    int
		wantOriginal int
		wantDisc     bool
	}{
		{
			name:      "BaseOnly",
			table:     models.PriceTable{RoomOnly: models.PricePair{Base: 1000}},
			mealPlan:  models.MealPlanRoomOnly,
			wantPrice: 1000,
		},
		{
			name:         "DiscountApplied",
			table:        models.PriceTable{RoomOnly: models.PricePair{Base: 1000, Discounted: 800}},
			mealPlan:     models.MealPlanRoomOnly,
			wantPrice:    800,
			wantOriginal: 1000,
			wantDisc:     true,
		},
		{
			name:      "DiscountEqualToBaseIgnored",
			table:     models.PriceTable{RoomOnly: models.PricePair{Base: 1000, Discounted: 1000}},
			mealPlan:  models.MealPlanRoomOnly,
			wantPrice: 1000,
		},
		{
			name:      "DiscountAboveBaseIgnored",
			table:     models.PriceTable{RoomOnly: models.PricePair{Base: 1000, Discounted: 1200}},
			mealPlan:  models.MealPlanRoomOnly,
			wantPrice: 1000,
		},
		{
			name: "BreakfastConfigured",
			table: models.PriceTable{
				RoomOnly:  models.PricePair{Base: 1000},
				Breakfast: models.PricePair{Base: 1300},
			},
			mealPlan:  models.MealPlanBreakfast,
			wantPrice: 1300,
		},
		{
			name:      "BreakfastFallsBackToRoomOnly",
			table:     models.PriceTable{RoomOnly: models.PricePair{Base: 1000}},
			mealPlan:  models.MealPlanBreakfast,
			wantPrice: 1000,
		},
		{
			name:         "FallbackKeepsRoomOnlyDiscount",
			table:        models.PriceTable{RoomOnly: models.PricePair{Base: 1000, Discounted: 700}},
			mealPlan:     models.MealPlanAllMeals,
			wantPrice:    700,
			wantOriginal: 1000,
			wantDisc:     true,
		},
		{
			name:      "UnconfiguredTierStaysZero",
			table:     models.PriceTable{},
			mealPlan:  models.MealPlanRoomOnly,
			wantPrice: 0,
		},
		{
			name:      "AllMealsZeroRoomOnlyZero",
			table:     models.PriceTable{},
			mealPlan:  models.MealPlanAllMeals,
			wantPrice: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveNightlyRate(tc.table, tc.mealPlan)
			if got.Price != tc.wantPrice {
				t.Errorf("Price = %d, want %d", got.Price, tc.wantPrice)
			}
			if got.Original != tc.wantOriginal {
				t.Errorf("Original = %d, want %d", got.Original, tc.wantOriginal)
			}
			if got.IsDiscounted != tc.wantDisc {
				t.Errorf("IsDiscounted = %v, want %v", got.IsDiscounted, tc.wantDisc)
			}
		})
	}
}
