package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jengzang/bodymap-backend-go/internal/config"
	"github.com/jengzang/bodymap-backend-go/internal/handler"
	"github.com/jengzang/bodymap-backend-go/internal/metrics"
	"github.com/jengzang/bodymap-backend-go/internal/middleware"
	"github.com/jengzang/bodymap-backend-go/internal/service"
)

// Dependencies are the services and infrastructure the router is built from
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter // nil disables rate limiting
	Symptoms    *service.SymptomService
	BodyMap     *service.BodyMapService
}

// SetupRouter 设置路由
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Body Map API is running",
		})
	})

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	regionHandler := handler.NewRegionHandler()
	severityHandler := handler.NewSeverityHandler()
	bodyMapHandler := handler.NewBodyMapHandler(deps.BodyMap)
	symptomHandler := handler.NewSymptomHandler(deps.Symptoms)

	// API 路由组
	api := r.Group("/api/v1")
	if deps.RateLimiter != nil {
		api.Use(middleware.RateLimit(deps.RateLimiter))
	}
	{
		// 部位目录接口
		regions := api.Group("/regions")
		{
			regions.GET("", regionHandler.ListRegions)
			regions.GET("/parents", regionHandler.ListParents)
			regions.GET("/hit", regionHandler.HitTest)
			regions.GET("/:id", regionHandler.GetRegion)
			regions.GET("/:id/children", regionHandler.GetChildren)
		}

		// 严重程度接口
		sev := api.Group("/severity")
		{
			sev.GET("/legend", severityHandler.Legend)
			sev.GET("/classify", severityHandler.Classify)
		}

		// 以下接口按用户隔离
		owned := api.Group("")
		owned.Use(middleware.Auth(deps.Config.Auth.JWTSecret, deps.Config.Auth.Required))
		{
			// 人体热力图接口
			bodyMap := owned.Group("/body-map")
			{
				bodyMap.GET("", bodyMapHandler.GetBodyMap)
				bodyMap.GET("/regions/:id/symptoms", bodyMapHandler.GetRegionSymptoms)
			}

			// 症状记录接口
			symptoms := owned.Group("/symptoms")
			{
				symptoms.GET("", symptomHandler.ListSymptoms)
				symptoms.POST("", symptomHandler.CreateSymptom)
				symptoms.GET("/breakdown", bodyMapHandler.GetBreakdown)
				symptoms.GET("/:id", symptomHandler.GetSymptom)
				symptoms.DELETE("/:id", symptomHandler.DeleteSymptom)
			}
		}
	}

	return r
}
