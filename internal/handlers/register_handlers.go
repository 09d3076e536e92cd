package handlers

import (
	"log"

	portssvc "github.com/VyankateshKulkarni06/E-Rupee/internal/core/ports/services"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/middleware"
	"github.com/VyankateshKulkarni06/E-Rupee/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Everything else requires a valid bearer token
	registerProtectedRoutes(r, cfg, services)
}

// registerAuthRoutes sets up the routes for registration and login.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		log.Printf("Warning: Invalid value for LOGIN_RATE_LIMIT (%q). Defaulting to 5-M.\n", cfg.LoginRateLimit)
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	user := r.Group("/user")
	{
		user.POST("/register", h.register)
		user.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}
}

// registerProtectedRoutes configures every route behind the auth middleware,
// keeping the original route surface the frontend expects.
func registerProtectedRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	th := newTransferHandler(services.Transfer, services.User)
	gh := newGrantHandler(services.Grant)
	ph := newPendingHandler(services.Approval)
	bh := newBalanceHandler(services.User)

	authed := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret))

	transact := authed.Group("/transact")
	{
		transact.POST("/transfer", th.transfer)
		transact.GET("/check-user", th.checkUser)
		transact.POST("/permission_extra_bal", gh.requestRelease)
		transact.GET("/extra_balances", gh.listGrants)
		transact.POST("/cancel_extra_bal", gh.cancelGrant)
		transact.PUT("/pending_request", ph.resolve)
	}

	authed.POST("/getBalance", bh.getBalance)
	authed.POST("/getHistory", th.history)
	authed.GET("/getPending", ph.listPending)
}
