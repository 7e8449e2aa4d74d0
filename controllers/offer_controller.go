package controllers

import (
	"fmt"

	"stay/config"
	"stay/dto"
	"stay/errors"
	"stay/response"
	"stay/services"
	"stay/services/logger"
	"stay/utils"
	"stay/validator"

	"github.com/gin-gonic/gin"
)

// preferenceKey tạo khóa ảnh chụp tùy chọn theo khách và chỗ ở.
// Không có định danh phiên thì bỏ qua phần tùy chọn đã lưu.
func preferenceKey(c *gin.Context, propertyID uint) string {
	sessionID := c.GetHeader("X-Session-Id")
	if sessionID == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", sessionID, propertyID)
}

// boundPreferences dựng ảnh chụp từ các tham số khách gửi tường minh trên
// query string. Tham số có mặt với giá trị 0 (Room-Only, đặt qua đêm) vẫn là
// lựa chọn tường minh, chỉ tham số vắng mặt mới để nil cho ảnh chụp cũ bù vào.
func boundPreferences(c *gin.Context, query dto.BookingQuery) *dto.BookingPreferences {
	prefs := &dto.BookingPreferences{
		CheckIn:  query.CheckIn,
		CheckOut: query.CheckOut,
	}
	if _, ok := c.GetQuery("adultCount"); ok {
		v := query.AdultCount
		prefs.AdultCount = &v
	}
	if _, ok := c.GetQuery("childCount"); ok {
		v := query.ChildCount
		prefs.ChildCount = &v
	}
	if _, ok := c.GetQuery("mealPlan"); ok {
		v := query.MealPlan
		prefs.MealPlan = &v
	}
	if _, ok := c.GetQuery("bookingStyle"); ok {
		v := query.BookingStyle
		prefs.BookingStyle = &v
	}
	return prefs
}

func newOfferEngine() *services.OfferEngine {
	return services.NewOfferEngine(config.LoadFees(), logger.NewDefaultLogger(logger.InfoLevel))
}

func writeEngineError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		response.BadRequest(c, appErr.Message)
		return
	}
	response.ServerError(c)
}

// GetRoomOffers tính danh sách offer cho một chỗ ở theo khoảng ngày,
// số khách và gói ăn. Toàn bộ trạng thái được tính lại mỗi lần gọi.
func GetRoomOffers(c *gin.Context) {
	var query dto.BookingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		utils.LogError("Không thể kết nối Redis, bỏ qua tùy chọn đã lưu: %v", err)
		rdb = nil
	}

	// Hợp nhất tham số tường minh với ảnh chụp gần nhất: trường có mặt trên
	// query string luôn thắng, ảnh chụp chỉ bù trường vắng mặt
	prefs := boundPreferences(c, query)
	prefKey := preferenceKey(c, query.PropertyID)
	if rdb != nil && prefKey != "" {
		prefRepo := services.NewRedisPreferenceRepository(rdb)
		if stored, err := prefRepo.Load(config.Ctx, prefKey); err == nil {
			prefs = services.MergePreferences(stored, prefs)
		}
	}
	query = services.ApplyPreferences(query, prefs)
	selected := prefs.Selected

	if err := validator.ValidateBookingQuery(&query); err != nil {
		writeEngineError(c, err)
		return
	}

	categories, err := services.NewCategoryCacheService(config.DB, rdb).
		ListByProperty(config.Ctx, query.PropertyID)
	if err != nil {
		response.ServerError(c)
		return
	}

	result, err := newOfferEngine().Resolve(categories, query, selected)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	if rdb != nil && prefKey != "" {
		prefRepo := services.NewRedisPreferenceRepository(rdb)
		if err := prefRepo.Save(config.Ctx, prefKey, services.SnapshotPreferences(query, result.Selected)); err != nil {
			utils.LogError("Lỗi khi lưu tùy chọn đặt phòng: %v", err)
		}
	}

	response.Success(c, result)
}

// CreateQuote áp một lựa chọn phòng lên truy vấn và trả về bảng giá cuối
// cùng payload bàn giao cho luồng gửi đặt phòng
func CreateQuote(c *gin.Context) {
	var request dto.QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBookingQuery(&request.Query); err != nil {
		writeEngineError(c, err)
		return
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		utils.LogError("Không thể kết nối Redis: %v", err)
		rdb = nil
	}

	categories, err := services.NewCategoryCacheService(config.DB, rdb).
		ListByProperty(config.Ctx, request.Query.PropertyID)
	if err != nil {
		response.ServerError(c)
		return
	}

	result, err := newOfferEngine().Resolve(categories, request.Query, request.Selected)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	prefKey := preferenceKey(c, request.Query.PropertyID)
	if rdb != nil && prefKey != "" {
		prefRepo := services.NewRedisPreferenceRepository(rdb)
		if err := prefRepo.Save(config.Ctx, prefKey, services.SnapshotPreferences(request.Query, result.Selected)); err != nil {
			utils.LogError("Lỗi khi lưu tùy chọn đặt phòng: %v", err)
		}
	}

	response.Success(c, result)
}

// ClearBookingPreferences xóa ảnh chụp tùy chọn đã lưu của một chỗ ở
func ClearBookingPreferences(c *gin.Context) {
	var query dto.BookingQuery
	if err := c.ShouldBindQuery(&query); err != nil || query.PropertyID == 0 {
		response.BadRequest(c, "propertyId là bắt buộc")
		return
	}

	prefKey := preferenceKey(c, query.PropertyID)
	if prefKey == "" {
		response.BadRequest(c, "Thiếu định danh phiên")
		return
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}
	if err := services.NewRedisPreferenceRepository(rdb).Clear(config.Ctx, prefKey); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
