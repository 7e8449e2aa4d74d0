package services

import (
	"fmt"
	"time"

	"stay/constants"
	"stay/dto"
	"stay/errors"
	"stay/models"
	"stay/services/logger"
)

// OfferEngine gom các bước suy diễn offer thành một mặt tiền duy nhất.
// Engine không giữ trạng thái ẩn: kết quả là hàm thuần của
// (danh sách loại phòng, truy vấn, lựa chọn) và được tính lại trọn vẹn
// mỗi lần gọi.
type OfferEngine struct {
	fees Fees
	log  logger.Logger
}

// NewOfferEngine tạo instance mới của OfferEngine
func NewOfferEngine(fees Fees, log logger.Logger) *OfferEngine {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &OfferEngine{fees: fees, log: log}
}

// ParseStayDates đọc và kiểm tra cặp ngày của truy vấn.
// Đặt qua đêm cần checkIn trước checkOut; đặt trong ngày cho phép trùng ngày.
func ParseStayDates(query dto.BookingQuery) (time.Time, time.Time, error) {
	checkIn, err := time.Parse("2006-01-02", query.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := time.Parse("2006-01-02", query.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
	}
	if query.BookingStyle == constants.BookingStyleDayUse {
		if checkOut.Before(checkIn) {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không được trước ngày nhận phòng", nil)
		}
	} else if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return checkIn, checkOut, nil
}

// Resolve tính lại toàn bộ trạng thái suy diễn cho một lần truy vấn:
// kiểm tra mở bán, sinh offer, áp lựa chọn, phân bổ trẻ em và tính giá.
// Các vi phạm về lựa chọn và sức chứa là thông báo tư vấn trong kết quả,
// chỉ dữ liệu đầu vào hỏng (ngày sai định dạng, số khách âm) mới là lỗi.
func (e *OfferEngine) Resolve(categories []models.RoomCategory, query dto.BookingQuery, requested []dto.SelectionEntry) (*dto.ResolutionResult, error) {
	checkIn, checkOut, err := ParseStayDates(query)
	if err != nil {
		return nil, err
	}
	if query.AdultCount < 1 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Cần ít nhất một người lớn", nil)
	}
	if query.ChildCount < 0 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em không được âm", nil)
	}

	result := &dto.ResolutionResult{}

	var available []models.RoomCategory
	for i := range categories {
		cat := &categories[i]
		if cat.Status != constants.CategoryStatusActive {
			continue
		}
		ok, reason := CheckAvailability(cat, checkIn, checkOut)
		result.Availability = append(result.Availability, dto.CategoryAvailability{
			CategoryID: cat.ID,
			Title:      cat.Title,
			Available:  ok,
			Reason:     reason,
		})
		if !ok {
			continue
		}
		available = append(available, *cat)
		result.Offers = append(result.Offers, GenerateOffers(cat, query.MealPlan)...)
	}

	// Áp lại lựa chọn của khách lên danh sách offer vừa sinh. Mục vi phạm
	// giới hạn bị bỏ qua, trạng thái trước đó giữ nguyên, thông báo đầu tiên
	// được trả về cho khách.
	selection := NewSelection()
	for _, entry := range requested {
		if err := selection.SetQuantity(result.Offers, available, entry.OfferID, entry.Quantity); err != nil {
			if result.SelectionError == "" {
				if appErr := errors.GetAppError(err); appErr != nil {
					result.SelectionError = appErr.Message
				} else {
					result.SelectionError = err.Error()
				}
			}
			e.log.Debug("Bỏ qua lựa chọn %s: %v", entry.OfferID, err)
		}
	}
	result.Selected = selection.Entries()
	result.TotalRooms = selection.TotalRooms()

	if result.TotalRooms == 0 {
		return result, nil
	}

	instances := BuildInstances(result.Selected, result.Offers, available, query.AdultCount)

	allocation := AllocateChildren(instances, query.ChildCount, query.MealPlan)
	result.ChildPlacements = allocation.Placements
	if allocation.Unplaced > 0 {
		result.CapacityError = fmt.Sprintf("Không xếp được %d trẻ em vào các phòng đã chọn", allocation.Unplaced)
	}
	if err := CheckCombinedCapacity(instances, query.AdultCount, query.ChildCount); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			result.CapacityError = appErr.Message
		}
	}

	breakdown := Aggregate(instances, allocation.ChildPricePerNight, checkIn, checkOut, query, e.fees)
	result.Breakdown = &breakdown

	// Payload bàn giao chỉ được dựng khi lựa chọn hợp lệ và đủ sức chứa
	if result.CapacityError == "" {
		result.Payload = &dto.ReservationPayload{
			PropertyID:   query.PropertyID,
			CheckIn:      query.CheckIn,
			CheckOut:     query.CheckOut,
			AdultCount:   query.AdultCount,
			ChildCount:   query.ChildCount,
			MealPlan:     query.MealPlan,
			TotalRooms:   result.TotalRooms,
			Selected:     result.Selected,
			Offers:       result.Offers,
			Breakdown:    breakdown,
			BookingStyle: query.BookingStyle,
		}
	}
	return result, nil
}
