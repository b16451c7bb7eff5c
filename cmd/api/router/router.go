package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"review-desk/cmd/api/handlers"
	"review-desk/cmd/api/metrics"
	"review-desk/cmd/api/middleware"
	"review-desk/cmd/api/services"
	"review-desk/cmd/api/store"
	_ "review-desk/docs"
)

// Deps 는 라우터가 핸들러에 넘겨줄 협력자다.
type Deps struct {
	Reviews       *services.ReviewService
	Store         store.Store
	StorageDriver string
	CORSOrigins   []string
}

// New 는 gin 엔진을 만들고 CORS 로 감싼 핸들러를 반환한다.
func New(deps Deps) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), metrics.GinMiddleware())

	r.GET("/", handlers.IndexHandler())
	r.GET("/favicon.ico", handlers.FaviconHandler())
	r.GET("/health", handlers.HealthHandler(deps.Store, deps.StorageDriver))

	r.POST("/submit_review", handlers.SubmitReviewHandler(deps.Reviews))
	r.GET("/submissions", handlers.ListSubmissionsHandler(deps.Reviews))
	r.POST("/star_summary", handlers.StarSummaryHandler(deps.Reviews))
	r.GET("/stats", handlers.StatsHandler(deps.Reviews))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}
