package constants

// Category status
const (
	CategoryStatusInactive = 0
	CategoryStatusActive   = 1
)

// Booking style
const (
	BookingStyleOvernight = 0
	BookingStyleDayUse    = 1
)

// Giới hạn đặt phòng
const (
	MaxRoomsPerBooking = 5
	MaxAdultsPerOffer  = 3
)

// Phí và thuế mặc định, có thể ghi đè qua biến môi trường (xem config)
const (
	DefaultServiceFeePerNight = 50000
	DefaultFlatBookingFee     = 30000
	DefaultTaxRate            = 0.08
)
