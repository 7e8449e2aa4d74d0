package services

import (
	"fmt"
	"time"

	"stay/models"
)

// CheckAvailability kiểm tra một loại phòng có mở bán cho khoảng ở hay không.
// Nếu có khai báo khoảng mở bán thì toàn bộ kỳ ở phải nằm trọn trong ít nhất
// một khoảng; không khai báo nghĩa là luôn mở bán, chỉ còn xét ngày khóa.
// Kết quả là trạng thái tư vấn, không phải lỗi.
func CheckAvailability(cat *models.RoomCategory, checkIn, checkOut time.Time) (bool, string) {
	periods := cat.DecodeAvailabilityPeriods()
	if len(periods) > 0 {
		contained := false
		for _, p := range periods {
			if p.Contains(checkIn, checkOut) {
				contained = true
				break
			}
		}
		if !contained {
			return false, fmt.Sprintf("Loại phòng %s không mở bán trọn khoảng %s đến %s",
				cat.Title, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
		}
	}

	blackouts := cat.DecodeBlackoutDates()
	if len(blackouts) == 0 {
		return true, ""
	}
	blocked := make(map[string]struct{}, len(blackouts))
	for _, d := range blackouts {
		blocked[d] = struct{}{}
	}

	// Duyệt từng ngày trong [checkIn, checkOut), ngày xung đột đầu tiên được báo lại.
	// Đặt trong ngày dùng chính ngày nhận phòng.
	for _, day := range stayDates(checkIn, checkOut) {
		key := day.Format("2006-01-02")
		if _, ok := blocked[key]; ok {
			return false, fmt.Sprintf("Loại phòng %s bị khóa ngày %s", cat.Title, key)
		}
	}
	return true, ""
}

// stayDates liệt kê các ngày của kỳ ở, nửa mở [checkIn, checkOut).
// Kỳ ở trong ngày trả về đúng ngày nhận phòng.
func stayDates(checkIn, checkOut time.Time) []time.Time {
	in := stripTime(checkIn)
	out := stripTime(checkOut)
	if !in.Before(out) {
		return []time.Time{in}
	}
	var days []time.Time
	for day := in; day.Before(out); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// stripTime bỏ phần giờ, giữ lại ngày theo UTC
func stripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
