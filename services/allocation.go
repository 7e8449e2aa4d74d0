package services

import (
	"fmt"

	"stay/dto"
	"stay/errors"
	"stay/models"
)

// RoomInstance là một phòng cụ thể trong lựa chọn, một phần tử cho mỗi
// đơn vị số lượng, theo đúng thứ tự chọn
type RoomInstance struct {
	OfferID        string
	CategoryID     uint
	Title          string
	IntendedAdults int
	MaxOccupancy   int
	PricePerNight  int
	ChildTable     models.PriceTable
	Hike           *models.HikePeriod
	Currency       string
}

// BuildInstances trải lựa chọn thành danh sách phòng cụ thể theo thứ tự chọn.
// Offer theo số khách giữ đúng số người lớn của offer; offer theo phòng
// nhận dần số người lớn còn lại của truy vấn, tối đa bằng sức chứa.
func BuildInstances(entries []dto.SelectionEntry, offers []dto.RoomOffer, categories []models.RoomCategory, adultCount int) []RoomInstance {
	offerByID := make(map[string]dto.RoomOffer, len(offers))
	for _, o := range offers {
		offerByID[o.OfferID] = o
	}
	catByID := make(map[uint]*models.RoomCategory, len(categories))
	for i := range categories {
		catByID[categories[i].ID] = &categories[i]
	}

	var instances []RoomInstance
	remainingAdults := adultCount
	for _, e := range entries {
		offer, ok := offerByID[e.OfferID]
		if !ok {
			continue
		}
		cat, ok := catByID[offer.CategoryID]
		if !ok {
			continue
		}
		for i := 0; i < e.Quantity; i++ {
			adults := offer.IntendedAdults
			if adults == 0 {
				// Mô hình theo phòng
				adults = remainingAdults
				if adults > offer.GuestCapacity {
					adults = offer.GuestCapacity
				}
			}
			if adults > remainingAdults {
				adults = remainingAdults
			}
			remainingAdults -= adults
			instances = append(instances, RoomInstance{
				OfferID:        offer.OfferID,
				CategoryID:     cat.ID,
				Title:          cat.Title,
				IntendedAdults: offerAdults(offer, adults),
				MaxOccupancy:   offer.GuestCapacity,
				PricePerNight:  offer.PricePerNight,
				ChildTable:     cat.ChildTable(),
				Hike:           cat.DecodeSeasonalHike(),
				Currency:       cat.Currency,
			})
		}
	}
	return instances
}

// offerAdults chốt số người lớn ở trong một phòng cụ thể. Offer theo số khách
// luôn tính đủ số người lớn của offer kể cả khi truy vấn ít người hơn,
// vì giá đã gắn với mức khách đó.
func offerAdults(offer dto.RoomOffer, assigned int) int {
	if offer.IntendedAdults > 0 {
		return offer.IntendedAdults
	}
	return assigned
}

// AllocationResult là kết quả phân bổ trẻ em vào các phòng đã chọn
type AllocationResult struct {
	Placements         []dto.ChildPlacement
	ChildPricePerNight int
	Unplaced           int
}

// AllocateChildren phân bổ trẻ em theo tham lam, nhét trước, ổn định theo
// thứ tự chọn: mỗi phòng nhận tối đa phần sức chứa còn trống
// (maxOccupancy trừ số người lớn), giá trẻ em tính theo bảng giá trẻ em
// của loại phòng. Trẻ em còn dư sau khi duyệt hết phòng được báo lại,
// không bao giờ bị bỏ qua im lặng.
func AllocateChildren(instances []RoomInstance, childCount, mealPlan int) AllocationResult {
	result := AllocationResult{}
	remaining := childCount
	for i, inst := range instances {
		spare := inst.MaxOccupancy - inst.IntendedAdults
		if spare < 0 {
			spare = 0
		}
		take := remaining
		if take > spare {
			take = spare
		}
		placement := dto.ChildPlacement{
			OfferID:       inst.OfferID,
			InstanceIndex: i,
			Children:      take,
		}
		if take > 0 {
			rate := ResolveNightlyRate(inst.ChildTable, mealPlan)
			placement.PricePerNight = rate.Price * take
			result.ChildPricePerNight += placement.PricePerNight
			remaining -= take
		}
		result.Placements = append(result.Placements, placement)
	}
	result.Unplaced = remaining
	return result
}

// CheckCombinedCapacity so tổng số khách yêu cầu với tổng sức chứa của các
// phòng đã chọn, độc lập với kết quả phân bổ từng phòng
func CheckCombinedCapacity(instances []RoomInstance, adultCount, childCount int) error {
	capacity := 0
	for _, inst := range instances {
		capacity += inst.MaxOccupancy
	}
	guests := adultCount + childCount
	if guests > capacity {
		return errors.NewAppError(errors.ErrCodeCapacityExceeded,
			fmt.Sprintf("Tổng %d khách vượt quá sức chứa %d của các phòng đã chọn", guests, capacity),
			errors.ErrCapacityExceeded)
	}
	return nil
}
