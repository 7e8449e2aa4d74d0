package routes

import (
	"stay/controllers"
	middlewares "stay/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	v1 := router.Group("/api/v1")

	v1.GET("/categories", controllers.GetRoomCategories)
	v1.GET("/categories/:id", controllers.GetRoomCategoryDetail)
	v1.POST("/categories", middlewares.AuthMiddleware(1, 2), controllers.CreateRoomCategory)
	v1.PUT("/categoryUpdate", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoomCategory)
	v1.PUT("/categoryStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeRoomCategoryStatus)
	v1.DELETE("/categories/:id", middlewares.AuthMiddleware(1), controllers.DeleteRoomCategory)

	v1.GET("/offers", controllers.GetRoomOffers)
	v1.POST("/quote", controllers.CreateQuote)
	v1.DELETE("/preferences", controllers.ClearBookingPreferences)
}
