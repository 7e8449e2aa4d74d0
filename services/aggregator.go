package services

import (
	"time"

	"stay/constants"
	"stay/dto"
)

// Fees là tham số phí dịch vụ và thuế cho một lần tính giá,
// nạp từ biến môi trường trong config
type Fees struct {
	ServiceFeePerNight int
	FlatBookingFee     int
	TaxRate            float64
}

// DefaultFees trả về mức phí mặc định
func DefaultFees() Fees {
	return Fees{
		ServiceFeePerNight: constants.DefaultServiceFeePerNight,
		FlatBookingFee:     constants.DefaultFlatBookingFee,
		TaxRate:            constants.DefaultTaxRate,
	}
}

// Nights tính số đêm giữa hai mốc sau khi bỏ phần giờ.
// Đặt trong ngày cùng một ngày được tính là 1 đêm; đặt qua đêm
// cần checkOut sau checkIn, nếu không trả về 0.
func Nights(checkIn, checkOut time.Time, bookingStyle int) int {
	in := stripTime(checkIn)
	out := stripTime(checkOut)
	nights := int(out.Sub(in).Hours()+23) / 24
	if nights < 1 {
		if bookingStyle == constants.BookingStyleDayUse {
			return 1
		}
		return 0
	}
	return nights
}

// SeasonalHikeTotal cộng phụ thu mùa cao điểm cho các đêm của kỳ ở nằm trong
// kỳ phụ thu, tính trên từng phòng cụ thể. Phụ thu là phần cộng thêm trên giá
// đêm, không thay thế giá đêm.
func SeasonalHikeTotal(instances []RoomInstance, checkIn, checkOut time.Time, mealPlan int) int {
	total := 0
	for _, inst := range instances {
		if inst.Hike == nil {
			continue
		}
		from, err := time.Parse("2006-01-02", inst.Hike.FromDate)
		if err != nil {
			continue
		}
		to, err := time.Parse("2006-01-02", inst.Hike.ToDate)
		if err != nil {
			continue
		}
		rate := ResolveNightlyRate(inst.Hike.Extra, mealPlan)
		if rate.Price <= 0 {
			continue
		}
		for _, day := range stayDates(checkIn, checkOut) {
			if !day.Before(from) && !day.After(to) {
				total += rate.Price
			}
		}
	}
	return total
}

// Aggregate tính bảng giá cuối cho lựa chọn hiện tại: giá mỗi đêm nhân số đêm,
// cộng phụ thu mùa cao điểm, phí dịch vụ theo đêm (đặt qua đêm) hoặc phí cố
// định mỗi lần đặt (đặt trong ngày), rồi thuế trên toàn bộ phần chịu thuế.
// Mọi số tiền giữ nguyên đồng tiền của loại phòng.
func Aggregate(instances []RoomInstance, childPricePerNight int, checkIn, checkOut time.Time, query dto.BookingQuery, fees Fees) dto.PriceBreakdown {
	pricePerNight := childPricePerNight
	currency := ""
	for _, inst := range instances {
		pricePerNight += inst.PricePerNight
		if currency == "" {
			currency = inst.Currency
		}
	}

	nights := Nights(checkIn, checkOut, query.BookingStyle)
	subtotal := pricePerNight * nights
	hike := SeasonalHikeTotal(instances, checkIn, checkOut, query.MealPlan)

	serviceCharge := 0
	if query.BookingStyle == constants.BookingStyleDayUse {
		serviceCharge = fees.FlatBookingFee
	} else {
		serviceCharge = fees.ServiceFeePerNight * nights
	}

	taxable := subtotal + hike + serviceCharge
	taxes := float64(taxable) * fees.TaxRate

	return dto.PriceBreakdown{
		PricePerNight: pricePerNight,
		Nights:        nights,
		Subtotal:      subtotal,
		SeasonalHike:  hike,
		ServiceCharge: serviceCharge,
		Taxes:         taxes,
		Total:         float64(taxable) + taxes,
		Currency:      currency,
	}
}
