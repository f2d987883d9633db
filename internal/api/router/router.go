package router

import (
	"user-service/internal/api/handlers"
	"user-service/internal/api/middleware"
	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/cache"
	"user-service/internal/infrastructure/repository"
	"user-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the HTTP surface. A nil db selects the in-memory
// repository; a nil redisCache disables the idempotency middleware.
func NewRouter(db *gorm.DB, redisCache *cache.RedisCache) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.Logger())
	r.Use(cors.Default())
	r.Use(gin.Recovery())

	var userRepo user.UserRepository
	if db != nil {
		userRepo = repository.NewUserRepository(db)
	} else {
		userRepo = repository.NewMemoryUserRepository()
	}
	userService := service.NewUserService(userRepo)

	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db, redisCache)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			createHandlers := []gin.HandlerFunc{userHandler.CreateUser}
			if redisCache != nil {
				store := repository.NewRedisIdempotencyRepository(redisCache.GetClient())
				createHandlers = []gin.HandlerFunc{middleware.Idempotency(store), userHandler.CreateUser}
			}

			users.GET("", userHandler.GetUsers)
			users.POST("", createHandlers...)
			users.GET("/username/:username", userHandler.GetUserByUsername)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}
	return r
}
