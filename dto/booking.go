package dto

// BookingQuery là đầu vào của một lần tính offer, ngày theo định dạng 2006-01-02
type BookingQuery struct {
	PropertyID   uint   `json:"propertyId" form:"propertyId" binding:"required"`
	CheckIn      string `json:"checkIn" form:"checkIn"`
	CheckOut     string `json:"checkOut" form:"checkOut"`
	AdultCount   int    `json:"adultCount" form:"adultCount"`
	ChildCount   int    `json:"childCount" form:"childCount"` // Trẻ em 5-12 tuổi
	MealPlan     int    `json:"mealPlan" form:"mealPlan"`
	BookingStyle int    `json:"bookingStyle" form:"bookingStyle"` // 0: qua đêm, 1: trong ngày
}

// SelectionEntry là số lượng đã chọn cho một offer, thứ tự chọn được giữ nguyên
type SelectionEntry struct {
	OfferID  string `json:"offerId"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest là yêu cầu tính giá cuối cho một lựa chọn phòng
type QuoteRequest struct {
	Query    BookingQuery     `json:"query"`
	Selected []SelectionEntry `json:"selected"`
}

// BookingPreferences là ảnh chụp tùy chọn gần nhất của khách theo từng chỗ ở.
// Chỉ là tối ưu trải nghiệm, dữ liệu thiếu hoặc cũ không được làm hỏng việc tính offer.
type BookingPreferences struct {
	CheckIn      string           `json:"checkIn,omitempty"`
	CheckOut     string           `json:"checkOut,omitempty"`
	AdultCount   *int             `json:"adultCount,omitempty"`
	ChildCount   *int             `json:"childCount,omitempty"`
	MealPlan     *int             `json:"mealPlan,omitempty"`
	BookingStyle *int             `json:"bookingStyle,omitempty"`
	Selected     []SelectionEntry `json:"selected,omitempty"`
}
