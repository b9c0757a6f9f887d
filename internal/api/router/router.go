package router

import (
	"pata-go/internal/api/handler"
	"pata-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	animalHandler *handler.AnimalHandler,
	favoriteHandler *handler.FavoriteHandler,
	taxonomyHandler *handler.TaxonomyHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/otp/request", authHandler.RequestOTP)
		auth.POST("/otp/verify", authHandler.VerifyOTP)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 宠物模块 ---
	animals := v1.Group("/animals")
	{
		// 列表/搜索/详情可匿名访问，登录后附带收藏状态
		animalsOptional := animals.Group("", middleware.AuthOptional())
		{
			animalsOptional.GET("", animalHandler.List)
			animalsOptional.POST("/search", animalHandler.Search)
			animalsOptional.GET("/:id", animalHandler.GetDetail)
		}

		animals.GET("/suggest", searchHandler.Suggest)

		animalsAuth := animals.Group("", middleware.AuthRequired())
		{
			animalsAuth.POST("", animalHandler.Create)
			animalsAuth.PUT("/:id", animalHandler.Update)
			animalsAuth.POST("/:id/photos", animalHandler.UploadPhoto)
		}
	}

	// --- 收藏模块 ---
	favorites := v1.Group("", middleware.AuthRequired())
	{
		favorites.POST("/favorite-animal", favoriteHandler.Toggle)
		favorites.GET("/favorite-animals", favoriteHandler.ListMyFavorites)
	}

	// --- 类别模块 ---
	v1.GET("/pet-types", taxonomyHandler.ListPetTypes)
	v1.GET("/breed-types", taxonomyHandler.ListBreedTypes)
}
