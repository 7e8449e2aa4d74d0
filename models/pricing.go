package models

import (
	"encoding/json"
	"time"
)

// PricePair chứa giá gốc và giá giảm cho một gói ăn.
// Giá 0 nghĩa là chưa cấu hình.
type PricePair struct {
	Base       int `json:"base"`
	Discounted int `json:"discounted"`
}

// PriceTable chứa giá theo từng gói ăn cho một mức khách
type PriceTable struct {
	RoomOnly  PricePair `json:"roomOnly"`
	Breakfast PricePair `json:"breakfast"`
	AllMeals  PricePair `json:"allMeals"`
}

// Pair trả về cặp giá cho gói ăn yêu cầu
func (t PriceTable) Pair(mealPlan int) PricePair {
	switch mealPlan {
	case MealPlanBreakfast:
		return t.Breakfast
	case MealPlanAllMeals:
		return t.AllMeals
	default:
		return t.RoomOnly
	}
}

// DateRange là khoảng ngày mở bán, bao gồm cả hai đầu
type DateRange struct {
	FromDate string `json:"fromDate"` // Ngày bắt đầu (2006-01-02)
	ToDate   string `json:"toDate"`   // Ngày kết thúc (2006-01-02)
}

// Contains kiểm tra khoảng [from, to] có chứa trọn [checkIn, checkOut) không
func (r DateRange) Contains(checkIn, checkOut time.Time) bool {
	from, err := time.Parse("2006-01-02", r.FromDate)
	if err != nil {
		return false
	}
	to, err := time.Parse("2006-01-02", r.ToDate)
	if err != nil {
		return false
	}
	lastNight := checkOut.AddDate(0, 0, -1)
	return !checkIn.Before(from) && !lastNight.After(to)
}

// HikePeriod là phụ thu mùa cao điểm, cộng thêm theo đêm
type HikePeriod struct {
	FromDate string     `json:"fromDate"`
	ToDate   string     `json:"toDate"`
	Extra    PriceTable `json:"extra"`
}

// CategoryPricing là dạng giá đã giải mã của một loại phòng,
// phân biệt theo pricingModel
type CategoryPricing interface {
	Model() int
}

// OccupancyPricing giá theo số người lớn ở chung phòng
type OccupancyPricing struct {
	Single PriceTable
	Double PriceTable
	Triple PriceTable
	Child  PriceTable
}

func (OccupancyPricing) Model() int { return PricingOccupancy }

// AdultTable trả về bảng giá cho số người lớn yêu cầu, ok=false nếu ngoài 1-3
func (p OccupancyPricing) AdultTable(adults int) (PriceTable, bool) {
	switch adults {
	case 1:
		return p.Single, true
	case 2:
		return p.Double, true
	case 3:
		return p.Triple, true
	}
	return PriceTable{}, false
}

// UnitPricing một giá cho cả phòng, không phụ thuộc số người lớn
type UnitPricing struct {
	TotalOccupancy int
	Rates          PriceTable
}

func (UnitPricing) Model() int { return PricingUnit }

// decodeTable giải mã bảng giá từ JSON, dữ liệu thiếu hoặc hỏng
// trả về bảng giá 0 thay vì lỗi
func decodeTable(raw json.RawMessage) PriceTable {
	var t PriceTable
	if len(raw) == 0 {
		return PriceTable{}
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return PriceTable{}
	}
	return t
}

// DecodePricing giải mã cấu trúc giá của loại phòng theo pricingModel
func (c *RoomCategory) DecodePricing() CategoryPricing {
	if c.PricingModel == PricingUnit {
		return UnitPricing{
			TotalOccupancy: c.TotalOccupancy,
			Rates:          decodeTable(c.UnitRates),
		}
	}
	return OccupancyPricing{
		Single: decodeTable(c.SingleRates),
		Double: decodeTable(c.DoubleRates),
		Triple: decodeTable(c.TripleRates),
		Child:  decodeTable(c.ChildRates),
	}
}

// ChildTable trả về bảng giá trẻ em, mô hình theo phòng không có phụ thu trẻ em
func (c *RoomCategory) ChildTable() PriceTable {
	if c.PricingModel == PricingUnit {
		return PriceTable{}
	}
	return decodeTable(c.ChildRates)
}

// DecodeAvailabilityPeriods giải mã danh sách khoảng mở bán
func (c *RoomCategory) DecodeAvailabilityPeriods() []DateRange {
	var periods []DateRange
	if len(c.AvailabilityPeriods) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.AvailabilityPeriods, &periods); err != nil {
		return nil
	}
	return periods
}

// DecodeBlackoutDates giải mã danh sách ngày khóa
func (c *RoomCategory) DecodeBlackoutDates() []string {
	var dates []string
	if len(c.BlackoutDates) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.BlackoutDates, &dates); err != nil {
		return nil
	}
	return dates
}

// DecodeSeasonalHike giải mã phụ thu mùa cao điểm, nil nếu không có
func (c *RoomCategory) DecodeSeasonalHike() *HikePeriod {
	if len(c.SeasonalHike) == 0 {
		return nil
	}
	var hike HikePeriod
	if err := json.Unmarshal(c.SeasonalHike, &hike); err != nil {
		return nil
	}
	if hike.FromDate == "" || hike.ToDate == "" {
		return nil
	}
	return &hike
}
