package handler

import (
	"wallet-identity/internal/adapter/http/middleware"
	"wallet-identity/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// maxRequestBody bounds every request body. A full feed page of comments fits.
const maxRequestBody = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CommentSvc     ports.CommentService
	IdentitySvc    ports.IdentityService
	DEKSvc         ports.DEKService
	TokenSvc       ports.TokenService
	WalletAddress  string
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = no /metrics endpoint
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode == "" {
		deps.Mode = gin.ReleaseMode
	}
	gin.SetMode(deps.Mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(deps.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Every API route acts for the local wallet.
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.WalletAddress, deps.Logger))

	commentHandler := NewCommentHandler(deps.CommentSvc, deps.DEKSvc)
	comments := v1.Group("/comments", rl("comments"))
	{
		comments.POST("/encrypt", commentHandler.Encrypt)
		comments.POST("/decrypt", commentHandler.Decrypt)
	}

	identityHandler := NewIdentityHandler(deps.IdentitySvc)
	identity := v1.Group("/identity", rl("identity"))
	{
		identity.POST("/transactions", identityHandler.CheckTransactions)
		identity.GET("/numbers/:e164", identityHandler.GetNumber)
		identity.PUT("/self", identityHandler.SetSelf)
	}

	dekHandler := NewDEKHandler(deps.DEKSvc, deps.WalletAddress)
	dek := v1.Group("/dek")
	{
		dek.POST("", rl("dek_register"), dekHandler.Create)
		dek.GET("/gas", rl("dek"), dekHandler.EstimateGas)
		dek.GET("/auth-signer", rl("dek"), dekHandler.AuthSigner)
		dek.POST("/auth-sign", rl("dek"), dekHandler.AuthSign)
		dek.POST("/register", rl("dek_register"), dekHandler.Register)
		dek.POST("/register/relayed", rl("dek_register"), dekHandler.RegisterRelayed)
		dek.GET("/:address", rl("dek"), dekHandler.Get)
	}

	return r
}
