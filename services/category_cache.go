package services

import (
	"context"
	"fmt"
	"time"

	"stay/constants"
	"stay/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CategoryCacheService nạp danh sách loại phòng của một chỗ ở, có cache Redis.
// Engine nhận danh sách này như tham số, bản thân engine không truy vấn DB.
type CategoryCacheService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCategoryCacheService(db *gorm.DB, rdb *redis.Client) *CategoryCacheService {
	return &CategoryCacheService{db: db, rdb: rdb}
}

// CategoryCacheKey tạo cache key cho danh sách loại phòng của một chỗ ở
func CategoryCacheKey(propertyID uint) string {
	return fmt.Sprintf("categories:property:%d", propertyID)
}

// ListByProperty trả về các loại phòng của một chỗ ở, ưu tiên cache
func (s *CategoryCacheService) ListByProperty(ctx context.Context, propertyID uint) ([]models.RoomCategory, error) {
	cacheKey := CategoryCacheKey(propertyID)

	var categories []models.RoomCategory
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKey, &categories); err == nil && len(categories) > 0 {
			return categories, nil
		}
	}

	if err := s.db.Where("property_id = ?", propertyID).
		Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}

	if s.rdb != nil && len(categories) > 0 {
		_ = SetToRedis(ctx, s.rdb, cacheKey, categories, 10*time.Minute)
	}
	return categories, nil
}

// Invalidate xóa cache danh sách loại phòng của một chỗ ở
func (s *CategoryCacheService) Invalidate(ctx context.Context, propertyID uint) error {
	if s.rdb == nil {
		return nil
	}
	return DeleteFromRedis(ctx, s.rdb, CategoryCacheKey(propertyID))
}

// WarmAdapter bọc CategoryCacheService cho cron job, tự giữ context nền
type WarmAdapter struct {
	svc *CategoryCacheService
}

func NewWarmAdapter(svc *CategoryCacheService) *WarmAdapter {
	return &WarmAdapter{svc: svc}
}

func (a *WarmAdapter) WarmActiveProperties() error {
	return a.svc.WarmActiveProperties(context.Background())
}

// WarmActiveProperties nạp lại cache cho các chỗ ở đang có loại phòng hoạt động,
// dùng cho cron job hằng đêm
func (s *CategoryCacheService) WarmActiveProperties(ctx context.Context) error {
	var propertyIDs []uint
	if err := s.db.Model(&models.RoomCategory{}).
		Where("status = ?", constants.CategoryStatusActive).
		Distinct("property_id").Pluck("property_id", &propertyIDs).Error; err != nil {
		return err
	}
	for _, id := range propertyIDs {
		if err := s.Invalidate(ctx, id); err != nil {
			return err
		}
		if _, err := s.ListByProperty(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
