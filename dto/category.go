package dto

import (
	"encoding/json"
	"time"
)

// CreateRoomCategoryRequest là DTO cho request tạo loại phòng
type CreateRoomCategoryRequest struct {
	PropertyID          uint            `json:"propertyId" binding:"required"`
	Title               string          `json:"title" binding:"required"`
	Quantity            int             `json:"quantity" binding:"required"`
	Currency            string          `json:"currency"`
	PricingModel        int             `json:"pricingModel"`
	MaxOccupancy        int             `json:"maxOccupancy"`
	TotalOccupancy      int             `json:"totalOccupancy"`
	RoomSize            int             `json:"roomSize"`
	Description         string          `json:"description"`
	Activities          json.RawMessage `json:"activities"`
	Facilities          json.RawMessage `json:"facilities"`
	SingleRates         json.RawMessage `json:"singleRates"`
	DoubleRates         json.RawMessage `json:"doubleRates"`
	TripleRates         json.RawMessage `json:"tripleRates"`
	ChildRates          json.RawMessage `json:"childRates"`
	UnitRates           json.RawMessage `json:"unitRates"`
	AvailabilityPeriods json.RawMessage `json:"availabilityPeriods"`
	BlackoutDates       json.RawMessage `json:"blackoutDates"`
	SeasonalHike        json.RawMessage `json:"seasonalHike"`
}

// UpdateRoomCategoryRequest là DTO cho request cập nhật loại phòng
type UpdateRoomCategoryRequest struct {
	ID uint `json:"id" binding:"required"`
	CreateRoomCategoryRequest
}

// RoomCategoryResponse là DTO cho danh sách loại phòng
type RoomCategoryResponse struct {
	ID           uint      `json:"id"`
	PropertyID   uint      `json:"propertyId"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Quantity     int       `json:"quantity"`
	Currency     string    `json:"currency"`
	PricingModel int       `json:"pricingModel"`
	MaxOccupancy int       `json:"maxOccupancy"`
	RoomSize     int       `json:"roomSize"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryStatusRequest là DTO cho request đổi trạng thái loại phòng
type CategoryStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}
