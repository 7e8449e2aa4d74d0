package validator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"stay/dto"
	"stay/errors"
	"stay/models"

	"github.com/fiam/gounidecode/unidecode"
)

// ValidateRoomCategory validate thông tin loại phòng trước khi lưu
func ValidateRoomCategory(cat *models.RoomCategory) error {
	if cat.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if err := cat.ValidateQuantity(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidQuantity, "Số phòng phải từ 1 trở lên", err)
	}

	if err := cat.ValidatePricingModel(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidPricing, "Mô hình giá không hợp lệ", err)
	}

	if err := cat.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ", err)
	}

	if err := cat.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Thông tin loại phòng không hợp lệ", err)
	}

	if cat.PricingModel == models.PricingUnit {
		if cat.TotalOccupancy < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa của mô hình theo phòng phải từ 1 trở lên", nil)
		}
	} else if cat.MaxOccupancy < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số khách tối đa phải từ 1 trở lên", nil)
	}

	for _, raw := range []json.RawMessage{cat.SingleRates, cat.DoubleRates, cat.TripleRates, cat.ChildRates, cat.UnitRates} {
		if err := validatePriceTable(raw); err != nil {
			return err
		}
	}

	if err := validateDateRanges(cat.AvailabilityPeriods); err != nil {
		return err
	}
	if err := validateBlackoutDates(cat.BlackoutDates); err != nil {
		return err
	}
	return nil
}

// validatePriceTable kiểm tra bảng giá: giá không âm, giá giảm nếu có
// phải nhỏ hơn giá gốc. Bảng rỗng là hợp lệ, engine sẽ mặc định về 0.
func validatePriceTable(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var table models.PriceTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng bảng giá không hợp lệ", err)
	}
	for _, pair := range []models.PricePair{table.RoomOnly, table.Breakfast, table.AllMeals} {
		if pair.Base < 0 || pair.Discounted < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Giá không được âm", nil)
		}
		if pair.Discounted > 0 && pair.Base > 0 && pair.Discounted >= pair.Base {
			return errors.NewAppError(errors.ErrCodeValidation, "Giá giảm phải nhỏ hơn giá gốc", nil)
		}
	}
	return nil
}

func validateDateRanges(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var periods []models.DateRange
	if err := json.Unmarshal(raw, &periods); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng khoảng mở bán không hợp lệ", err)
	}
	for _, p := range periods {
		from, err := time.Parse("2006-01-02", p.FromDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày bắt đầu không hợp lệ", err)
		}
		to, err := time.Parse("2006-01-02", p.ToDate)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày kết thúc không hợp lệ", err)
		}
		if to.Before(from) {
			return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
		}
	}
	return nil
}

func validateBlackoutDates(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var dates []string
	if err := json.Unmarshal(raw, &dates); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng danh sách ngày khóa không hợp lệ", err)
	}
	for _, d := range dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidDate, fmt.Sprintf("Ngày khóa không hợp lệ: %s", d), err)
		}
	}
	return nil
}

// ValidateBookingQuery validate truy vấn đặt phòng từ khách
func ValidateBookingQuery(query *dto.BookingQuery) error {
	if query.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chỗ ở không được để trống", nil)
	}
	if query.CheckIn == "" || query.CheckOut == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận và trả phòng không được để trống", nil)
	}
	if _, err := time.Parse("2006-01-02", query.CheckIn); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
	}
	if _, err := time.Parse("2006-01-02", query.CheckOut); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
	}
	if query.AdultCount < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Cần ít nhất một người lớn", nil)
	}
	if query.ChildCount < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em không được âm", nil)
	}
	if query.MealPlan < models.MealPlanRoomOnly || query.MealPlan > models.MealPlanAllMeals {
		return errors.NewAppError(errors.ErrCodeValidation, "Gói ăn không hợp lệ", nil)
	}
	return nil
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug tạo slug không dấu từ tên loại phòng
func MakeSlug(title string) string {
	s := strings.ToLower(unidecode.Unidecode(strings.TrimSpace(title)))
	s = slugCleaner.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
