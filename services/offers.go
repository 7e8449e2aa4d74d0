package services

import (
	"fmt"

	"stay/constants"
	"stay/dto"
	"stay/models"
)

// MakeOfferID ghép ID loại phòng với số khách thành khóa ổn định của offer,
// dùng làm khóa cho lựa chọn
func MakeOfferID(categoryID uint, guests int) string {
	return fmt.Sprintf("%d_%d", categoryID, guests)
}

// GenerateOffers mở rộng một loại phòng khả dụng thành các offer theo số khách.
// Mô hình theo số khách sinh một offer cho mỗi mức 1-3 người lớn mà
// sức chứa cho phép và có giá cấu hình; mô hình theo phòng sinh đúng
// một offer trọn gói cho 1..totalOccupancy khách.
func GenerateOffers(cat *models.RoomCategory, mealPlan int) []dto.RoomOffer {
	switch pricing := cat.DecodePricing().(type) {
	case models.UnitPricing:
		rate := ResolveNightlyRate(pricing.Rates, mealPlan)
		if rate.Price <= 0 || pricing.TotalOccupancy < 1 {
			return nil
		}
		return []dto.RoomOffer{{
			OfferID:               MakeOfferID(cat.ID, pricing.TotalOccupancy),
			CategoryID:            cat.ID,
			Title:                 cat.Title,
			IntendedAdults:        0,
			GuestCapacity:         pricing.TotalOccupancy,
			PricePerNight:         rate.Price,
			OriginalPricePerNight: rate.Original,
			IsDiscounted:          rate.IsDiscounted,
			Currency:              cat.Currency,
		}}
	case models.OccupancyPricing:
		var offers []dto.RoomOffer
		for adults := 1; adults <= constants.MaxAdultsPerOffer; adults++ {
			if adults > cat.MaxOccupancy {
				break
			}
			table, ok := pricing.AdultTable(adults)
			if !ok {
				continue
			}
			rate := ResolveNightlyRate(table, mealPlan)
			if rate.Price <= 0 {
				continue
			}
			offers = append(offers, dto.RoomOffer{
				OfferID:               MakeOfferID(cat.ID, adults),
				CategoryID:            cat.ID,
				Title:                 cat.Title,
				IntendedAdults:        adults,
				GuestCapacity:         cat.MaxOccupancy,
				PricePerNight:         rate.Price,
				OriginalPricePerNight: rate.Original,
				IsDiscounted:          rate.IsDiscounted,
				Currency:              cat.Currency,
			})
		}
		return offers
	}
	return nil
}
