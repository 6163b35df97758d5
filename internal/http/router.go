package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"macrotrack/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	profileH *ProfileHandler,
	diaryH *DiaryHandler,
	weightH *WeightHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Rutas publicas.
	users := r.Group("/users")
	users.POST("", userH.Register)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	// Rutas protegidas por JWT.
	authRequired := r.Group("/", JWTAuthMiddleware(jwtSvc))
	authRequired.GET("/me", userH.Me)

	profile := authRequired.Group("/profile")
	profile.POST("/onboarding", profileH.CompleteOnboarding)
	profile.GET("", profileH.GetProfile)
	profile.PATCH("/biometrics", profileH.PatchBiometrics)

	diary := authRequired.Group("/diary")
	diary.POST("/entries", diaryH.AddEntry)
	diary.GET("/entries", diaryH.ListDay)
	diary.DELETE("/entries/:id", diaryH.DeleteEntry)
	diary.GET("/summary", diaryH.DaySummary)

	weight := authRequired.Group("/weight")
	weight.POST("", weightH.LogWeight)
	weight.GET("", weightH.ListWeight)
	weight.DELETE("/:id", weightH.DeleteWeight)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
