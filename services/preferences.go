package services

import (
	"context"
	"encoding/json"
	"time"

	"stay/dto"

	"github.com/redis/go-redis/v9"
)

// PreferenceRepository lưu và nạp ảnh chụp tùy chọn đặt phòng gần nhất của
// khách theo từng chỗ ở. Đây chỉ là tối ưu trải nghiệm: dữ liệu thiếu, cũ
// hoặc lỗi lưu trữ không được làm hỏng việc tính offer.
type PreferenceRepository interface {
	Load(ctx context.Context, key string) (*dto.BookingPreferences, error)
	Save(ctx context.Context, key string, prefs *dto.BookingPreferences) error
	Clear(ctx context.Context, key string) error
}

// RedisPreferenceRepository triển khai PreferenceRepository trên Redis
type RedisPreferenceRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPreferenceRepository(rdb *redis.Client) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{rdb: rdb, ttl: 30 * time.Minute}
}

func (r *RedisPreferenceRepository) Load(ctx context.Context, key string) (*dto.BookingPreferences, error) {
	val, err := r.rdb.Get(ctx, "booking_prefs:"+key).Result()
	if err != nil {
		return nil, err
	}
	var prefs dto.BookingPreferences
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *RedisPreferenceRepository) Save(ctx context.Context, key string, prefs *dto.BookingPreferences) error {
	b, _ := json.Marshal(prefs)
	return r.rdb.Set(ctx, "booking_prefs:"+key, b, r.ttl).Err()
}

func (r *RedisPreferenceRepository) Clear(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, "booking_prefs:"+key).Err()
}

// MergePreferences bù các trường còn thiếu của truy vấn mới bằng ảnh chụp cũ
func MergePreferences(old *dto.BookingPreferences, new *dto.BookingPreferences) *dto.BookingPreferences {
	if old == nil {
		return new
	}
	if new == nil {
		return old
	}
	new.CheckIn = orString(new.CheckIn, old.CheckIn)
	new.CheckOut = orString(new.CheckOut, old.CheckOut)
	new.AdultCount = orIntPointer(new.AdultCount, old.AdultCount)
	new.ChildCount = orIntPointer(new.ChildCount, old.ChildCount)
	new.MealPlan = orIntPointer(new.MealPlan, old.MealPlan)
	new.BookingStyle = orIntPointer(new.BookingStyle, old.BookingStyle)
	if len(new.Selected) == 0 {
		new.Selected = old.Selected
	}
	return new
}

// ApplyPreferences áp một ảnh chụp lên truy vấn. Ảnh chụp phải đã được hợp
// nhất trước bằng MergePreferences nên thứ tự ưu tiên đã chốt xong: con trỏ
// nil hay chuỗi rỗng nghĩa là chưa có giá trị, còn 0 (Room-Only, đặt qua đêm)
// là lựa chọn tường minh của khách và được giữ nguyên.
func ApplyPreferences(query dto.BookingQuery, prefs *dto.BookingPreferences) dto.BookingQuery {
	if prefs == nil {
		return query
	}
	if prefs.CheckIn != "" {
		query.CheckIn = prefs.CheckIn
	}
	if prefs.CheckOut != "" {
		query.CheckOut = prefs.CheckOut
	}
	if prefs.AdultCount != nil {
		query.AdultCount = *prefs.AdultCount
	}
	if prefs.ChildCount != nil {
		query.ChildCount = *prefs.ChildCount
	}
	if prefs.MealPlan != nil {
		query.MealPlan = *prefs.MealPlan
	}
	if prefs.BookingStyle != nil {
		query.BookingStyle = *prefs.BookingStyle
	}
	return query
}

// SnapshotPreferences dựng ảnh chụp từ truy vấn và lựa chọn hiện tại
func SnapshotPreferences(query dto.BookingQuery, selected []dto.SelectionEntry) *dto.BookingPreferences {
	adults := query.AdultCount
	children := query.ChildCount
	mealPlan := query.MealPlan
	style := query.BookingStyle
	return &dto.BookingPreferences{
		CheckIn:      query.CheckIn,
		CheckOut:     query.CheckOut,
		AdultCount:   &adults,
		ChildCount:   &children,
		MealPlan:     &mealPlan,
		BookingStyle: &style,
		Selected:     selected,
	}
}

func orString(new, old string) string {
	if new != "" {
		return new
	}
	return old
}

func orIntPointer(new, old *int) *int {
	if new != nil {
		return new
	}
	return old
}
