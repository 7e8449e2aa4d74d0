package dto

// RoomOffer là một lựa chọn đặt được, sinh ra từ loại phòng cho một lần truy vấn.
// Offer không được lưu trữ, mỗi lần đổi đầu vào sẽ tính lại từ đầu.
type RoomOffer struct {
	OfferID               string `json:"offerId"`
	CategoryID            uint   `json:"categoryId"`
	Title                 string `json:"title"`
	IntendedAdults        int    `json:"intendedAdults"` // 0 với mô hình theo phòng
	GuestCapacity         int    `json:"guestCapacity"`
	PricePerNight         int    `json:"pricePerNight"`
	OriginalPricePerNight int    `json:"originalPricePerNight,omitempty"`
	IsDiscounted          bool   `json:"isDiscounted"`
	Currency              string `json:"currency"`
}

// CategoryAvailability là kết quả kiểm tra mở bán của một loại phòng
type CategoryAvailability struct {
	CategoryID uint   `json:"categoryId"`
	Title      string `json:"title"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}

// ChildPlacement là số trẻ em được xếp vào một phòng cụ thể
type ChildPlacement struct {
	OfferID       string `json:"offerId"`
	InstanceIndex int    `json:"instanceIndex"`
	Children      int    `json:"children"`
	PricePerNight int    `json:"pricePerNight"`
}

// PriceBreakdown là bảng giá cuối của một lựa chọn
type PriceBreakdown struct {
	PricePerNight int     `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	Subtotal      int     `json:"subtotal"`
	SeasonalHike  int     `json:"seasonalHike"`
	ServiceCharge int     `json:"serviceCharge"`
	Taxes         float64 `json:"taxes"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

// ResolutionResult là toàn bộ trạng thái suy diễn cho một lần truy vấn.
// Các thông báo lỗi đều mang tính tư vấn, rỗng nghĩa là không có lỗi.
type ResolutionResult struct {
	Offers          []RoomOffer            `json:"offers"`
	Availability    []CategoryAvailability `json:"availability"`
	Selected        []SelectionEntry       `json:"selected"`
	TotalRooms      int                    `json:"totalRooms"`
	ChildPlacements []ChildPlacement       `json:"childPlacements,omitempty"`
	Breakdown       *PriceBreakdown        `json:"breakdown,omitempty"`
	CapacityError   string                 `json:"capacityError,omitempty"`
	SelectionError  string                 `json:"selectionError,omitempty"`
	Payload         *ReservationPayload    `json:"payload,omitempty"`
}

// ReservationPayload là dữ liệu bàn giao cho luồng gửi đặt phòng bên ngoài
type ReservationPayload struct {
	PropertyID   uint             `json:"propertyId"`
	CheckIn      string           `json:"checkIn"`
	CheckOut     string           `json:"checkOut"`
	AdultCount   int              `json:"adultCount"`
	ChildCount   int              `json:"childCount"`
	MealPlan     int              `json:"mealPlan"`
	TotalRooms   int              `json:"totalRooms"`
	Selected     []SelectionEntry `json:"selected"`
	Offers       []RoomOffer      `json:"offers"`
	Breakdown    PriceBreakdown   `json:"breakdown"`
	BookingStyle int              `json:"bookingStyle"`
}
