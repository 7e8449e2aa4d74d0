package controllers

import (
	"errors"
	"strconv"

	"stay/config"
	"stay/constants"
	"stay/dto"
	"stay/models"
	"stay/response"
	"stay/services"
	"stay/utils"
	"stay/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToRoomCategoryResponse(cat models.RoomCategory) dto.RoomCategoryResponse {
	return dto.RoomCategoryResponse{
		ID:           cat.ID,
		PropertyID:   cat.PropertyID,
		Title:        cat.Title,
		Slug:         cat.Slug,
		Quantity:     cat.Quantity,
		Currency:     cat.Currency,
		PricingModel: cat.PricingModel,
		MaxOccupancy: cat.Capacity(),
		RoomSize:     cat.RoomSize,
		Status:       cat.Status,
		CreatedAt:    cat.CreatedAt,
		UpdatedAt:    cat.UpdatedAt,
	}
}

func applyCategoryRequest(cat *models.RoomCategory, req dto.CreateRoomCategoryRequest) {
	cat.PropertyID = req.PropertyID
	cat.Title = req.Title
	cat.Slug = validator.MakeSlug(req.Title)
	cat.Quantity = req.Quantity
	cat.Currency = req.Currency
	if cat.Currency == "" {
		cat.Currency = "VND"
	}
	cat.PricingModel = req.PricingModel
	cat.MaxOccupancy = req.MaxOccupancy
	cat.TotalOccupancy = req.TotalOccupancy
	cat.RoomSize = req.RoomSize
	cat.Description = req.Description
	cat.Activities = req.Activities
	cat.Facilities = req.Facilities
	cat.SingleRates = req.SingleRates
	cat.DoubleRates = req.DoubleRates
	cat.TripleRates = req.TripleRates
	cat.ChildRates = req.ChildRates
	cat.UnitRates = req.UnitRates
	cat.AvailabilityPeriods = req.AvailabilityPeriods
	cat.BlackoutDates = req.BlackoutDates
	cat.SeasonalHike = req.SeasonalHike
}

func GetRoomCategories(c *gin.Context) {
	propertyIDStr := c.Query("propertyId")
	if propertyIDStr == "" {
		response.BadRequest(c, "propertyId là bắt buộc")
		return
	}
	propertyID, err := strconv.ParseUint(propertyIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "propertyId không hợp lệ")
		return
	}

	// Xử lý phân trang
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		utils.LogError("Không thể kết nối Redis, đọc thẳng từ DB: %v", err)
		rdb = nil
	}
	categoryService := services.NewCategoryCacheService(config.DB, rdb)

	categories, err := categoryService.ListByProperty(config.Ctx, uint(propertyID))
	if err != nil {
		response.ServerError(c)
		return
	}

	// Lọc theo trạng thái nếu có
	if statusFilter := c.Query("status"); statusFilter != "" {
		parsedStatus, err := strconv.Atoi(statusFilter)
		if err == nil {
			filtered := make([]models.RoomCategory, 0)
			for _, cat := range categories {
				if cat.Status == parsedStatus {
					filtered = append(filtered, cat)
				}
			}
			categories = filtered
		}
	}

	total := len(categories)
	start := page * limit
	end := start + limit
	if start >= total {
		categories = []models.RoomCategory{}
	} else if end > total {
		categories = categories[start:]
	} else {
		categories = categories[start:end]
	}

	var categoryResponses []dto.RoomCategoryResponse
	for _, cat := range categories {
		categoryResponses = append(categoryResponses, convertToRoomCategoryResponse(cat))
	}

	response.SuccessWithPagination(c, categoryResponses, page, limit, total)
}

func CreateRoomCategory(c *gin.Context) {
	var request dto.CreateRoomCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var cat models.RoomCategory
	applyCategoryRequest(&cat, request)
	cat.Status = constants.CategoryStatusActive

	if err := validator.ValidateRoomCategory(&cat); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&cat).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCategoryCache(cat.PropertyID)
	response.Success(c, cat)
}

func GetRoomCategoryDetail(c *gin.Context) {
	id := c.Param("id")

	var cat models.RoomCategory
	if err := config.DB.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, cat)
}

func UpdateRoomCategory(c *gin.Context) {
	var request dto.UpdateRoomCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var cat models.RoomCategory
	if err := config.DB.First(&cat, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	applyCategoryRequest(&cat, request.CreateRoomCategoryRequest)

	if err := validator.ValidateRoomCategory(&cat); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&cat).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCategoryCache(cat.PropertyID)
	response.Success(c, cat)
}

func ChangeRoomCategoryStatus(c *gin.Context) {
	var request dto.CategoryStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var cat models.RoomCategory
	if err := config.DB.First(&cat, request.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	cat.Status = request.Status
	if err := cat.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if err := config.DB.Save(&cat).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCategoryCache(cat.PropertyID)
	response.Success(c, convertToRoomCategoryResponse(cat))
}

func DeleteRoomCategory(c *gin.Context) {
	id := c.Param("id")

	var cat models.RoomCategory
	if err := config.DB.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&cat).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCategoryCache(cat.PropertyID)
	response.Success(c, gin.H{"id": cat.ID})
}

// invalidateCategoryCache xóa cache danh sách loại phòng sau khi ghi.
// Lỗi Redis chỉ ghi log, cache sẽ tự hết hạn.
func invalidateCategoryCache(propertyID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		utils.LogError("Không thể kết nối Redis để xóa cache: %v", err)
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, services.CategoryCacheKey(propertyID)); err != nil {
		utils.LogError("Lỗi khi xóa cache loại phòng: %v", err)
	}
}
