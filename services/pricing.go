package services

import (
	"stay/models"
)

// ResolvedRate là giá một đêm sau khi áp dụng giảm giá và fallback gói ăn
type ResolvedRate struct {
	Price        int
	Original     int
	IsDiscounted bool
}

// ResolveNightlyRate tính giá một đêm cho một bảng giá và gói ăn yêu cầu.
// Giá 0 được hiểu là chưa cấu hình: gói ăn chưa có giá sẽ rơi về giá
// Room-Only của cùng mức khách. Giá giảm chỉ được áp dụng khi
// 0 < giá giảm < giá gốc.
func ResolveNightlyRate(table models.PriceTable, mealPlan int) ResolvedRate {
	pair := table.Pair(mealPlan)
	if pair.Base == 0 && mealPlan != models.MealPlanRoomOnly {
		pair = table.Pair(models.MealPlanRoomOnly)
	}
	if pair.Discounted > 0 && pair.Discounted < pair.Base {
		return ResolvedRate{
			Price:        pair.Discounted,
			Original:     pair.Base,
			IsDiscounted: true,
		}
	}
	return ResolvedRate{Price: pair.Base}
}
