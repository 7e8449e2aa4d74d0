package services

import (
	"fmt"

	"stay/constants"
	"stay/dto"
	"stay/errors"
	"stay/models"
)

// Selection giữ số lượng phòng đã chọn theo offer, giữ nguyên thứ tự chọn.
// Trạng thái chỉ sống trong một lần truy vấn, không lưu trữ.
type Selection struct {
	entries []dto.SelectionEntry
}

func NewSelection() *Selection {
	return &Selection{}
}

// Entries trả về bản sao danh sách lựa chọn theo thứ tự chọn
func (s *Selection) Entries() []dto.SelectionEntry {
	out := make([]dto.SelectionEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalRooms trả về tổng số phòng đã chọn trên mọi loại
func (s *Selection) TotalRooms() int {
	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}

// Quantity trả về số lượng đã chọn cho một offer
func (s *Selection) Quantity(offerID string) int {
	for _, e := range s.entries {
		if e.OfferID == offerID {
			return e.Quantity
		}
	}
	return 0
}

// SetQuantity cập nhật số lượng cho một offer sau khi kiểm tra giới hạn
// số phòng của loại, giới hạn tổng phòng một lần đặt và đồng tiền.
// Vi phạm bất kỳ giới hạn nào sẽ từ chối cả cập nhật, trạng thái cũ giữ nguyên.
func (s *Selection) SetQuantity(offers []dto.RoomOffer, categories []models.RoomCategory, offerID string, qty int) error {
	if qty < 0 {
		return errors.NewAppError(errors.ErrCodeSelectionLimit, "Số lượng phòng không được âm", nil)
	}

	offerByID := make(map[string]dto.RoomOffer, len(offers))
	for _, o := range offers {
		offerByID[o.OfferID] = o
	}
	offer, ok := offerByID[offerID]
	if !ok {
		return errors.NewAppError(errors.ErrCodeSelectionLimit, "Lựa chọn không còn khả dụng cho khoảng ngày này", errors.ErrOfferNotFound)
	}

	catByID := make(map[uint]models.RoomCategory, len(categories))
	for _, c := range categories {
		catByID[c.ID] = c
	}
	cat, ok := catByID[offer.CategoryID]
	if !ok {
		return errors.NewAppError(errors.ErrCodeSelectionLimit, "Loại phòng của lựa chọn không tồn tại", errors.ErrCategoryNotFound)
	}

	// Dựng trạng thái thử trước, chỉ ghi nhận khi mọi kiểm tra đều qua
	next := make([]dto.SelectionEntry, 0, len(s.entries)+1)
	found := false
	for _, e := range s.entries {
		if e.OfferID == offerID {
			found = true
			if qty > 0 {
				next = append(next, dto.SelectionEntry{OfferID: offerID, Quantity: qty})
			}
			continue
		}
		next = append(next, e)
	}
	if !found && qty > 0 {
		next = append(next, dto.SelectionEntry{OfferID: offerID, Quantity: qty})
	}

	perCategory := 0
	total := 0
	for _, e := range next {
		o, ok := offerByID[e.OfferID]
		if !ok {
			continue
		}
		total += e.Quantity
		if o.CategoryID == offer.CategoryID {
			perCategory += e.Quantity
		}
		if qty > 0 && o.Currency != offer.Currency {
			return errors.NewAppError(errors.ErrCodeMixedCurrency,
				"Không thể đặt chung các loại phòng khác đồng tiền trong một lần đặt", errors.ErrMixedCurrency)
		}
	}
	if perCategory > cat.Quantity {
		return errors.NewAppError(errors.ErrCodeSelectionLimit,
			fmt.Sprintf("Loại phòng %s chỉ còn tối đa %d phòng", cat.Title, cat.Quantity), errors.ErrCategoryQuantity)
	}
	if total > constants.MaxRoomsPerBooking {
		return errors.NewAppError(errors.ErrCodeSelectionLimit,
			fmt.Sprintf("Mỗi lần đặt tối đa %d phòng", constants.MaxRoomsPerBooking), errors.ErrCombinedRoomLimit)
	}

	s.entries = next
	return nil
}
