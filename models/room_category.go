package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type RoomCategory struct {
	ID                  uint            `json:"id" gorm:"primaryKey"` // ID cho loại phòng
	PropertyID          uint            `json:"propertyId" gorm:"index" validate:"required"`
	Title               string          `json:"title" validate:"required"` // Tên loại phòng
	Slug                string          `json:"slug" gorm:"index"`
	Quantity            int             `json:"quantity" validate:"min=1"` // Số phòng vật lý
	Currency            string          `json:"currency" gorm:"default:VND"`
	PricingModel        int             `json:"pricingModel"`   // 0: theo số khách, 1: theo phòng
	MaxOccupancy        int             `json:"maxOccupancy"`   // Số khách tối đa mỗi phòng
	TotalOccupancy      int             `json:"totalOccupancy"` // Sức chứa cho mô hình theo phòng
	RoomSize            int             `json:"roomSize"`       // Diện tích phòng (m2)
	Description         string          `json:"description"`
	Activities          json.RawMessage `json:"activities" gorm:"type:json"` // Hoạt động (không tính giá)
	Facilities          json.RawMessage `json:"facilities" gorm:"type:json"` // Tiện nghi (không tính giá)
	SingleRates         json.RawMessage `json:"singleRates" gorm:"type:json"`
	DoubleRates         json.RawMessage `json:"doubleRates" gorm:"type:json"`
	TripleRates         json.RawMessage `json:"tripleRates" gorm:"type:json"`
	ChildRates          json.RawMessage `json:"childRates" gorm:"type:json"` // Giá trẻ em 5-12 tuổi
	UnitRates           json.RawMessage `json:"unitRates" gorm:"type:json"`
	AvailabilityPeriods json.RawMessage `json:"availabilityPeriods" gorm:"type:json"` // Rỗng = luôn mở bán
	BlackoutDates       json.RawMessage `json:"blackoutDates" gorm:"type:json"`       // Danh sách ngày khóa (ISO)
	SeasonalHike        json.RawMessage `json:"seasonalHike" gorm:"type:json"`        // Phụ thu mùa cao điểm
	Status              int             `json:"status" gorm:"default:1"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Pricing model constants
const (
	PricingOccupancy = 0
	PricingUnit      = 1
)

// Meal plan constants
const (
	MealPlanRoomOnly  = 0
	MealPlanBreakfast = 1
	MealPlanAllMeals  = 2
)

func (c *RoomCategory) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	if err := c.ValidatePricingModel(); err != nil {
		return err
	}
	return c.ValidateStatus()
}

func (c *RoomCategory) ValidateStatus() error {
	if c.Status < 0 || c.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be either 0 or 1", c.Status)
	}
	return nil
}

func (c *RoomCategory) ValidatePricingModel() error {
	if c.PricingModel < PricingOccupancy || c.PricingModel > PricingUnit {
		return fmt.Errorf("invalid pricingModel: %d, must be either 0 or 1", c.PricingModel)
	}
	return nil
}

func (c *RoomCategory) ValidateQuantity() error {
	if c.Quantity < 1 {
		return fmt.Errorf("invalid quantity: %d, must be at least 1", c.Quantity)
	}
	return nil
}

// Capacity trả về số khách tối đa cho một phòng thuộc loại này
func (c *RoomCategory) Capacity() int {
	if c.PricingModel == PricingUnit {
		return c.TotalOccupancy
	}
	return c.MaxOccupancy
}
