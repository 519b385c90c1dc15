package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fixitnow/internal/config"
	"fixitnow/internal/database"
	"fixitnow/internal/middleware"
	"fixitnow/internal/modules/auth"
	"fixitnow/internal/modules/booking"
	"fixitnow/internal/modules/catalog"
	"fixitnow/internal/modules/health"
	"fixitnow/internal/modules/payment"
	"fixitnow/internal/modules/review"
	jwtsvc "fixitnow/internal/pkg/jwt"
	"fixitnow/internal/pkg/response"
	"fixitnow/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, categoryRepo, userRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, userRepo, serviceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	paymentService := payment.NewService(paymentRepo, bookingRepo)
	paymentHandler := payment.NewHandler(paymentService)

	healthHandler := health.NewHandler(cfg.ServiceName, cfg.Version, cfg.Environment)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		healthHandler.RegisterRoutes(api)
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		bookingHandler.RegisterRoutes(api)
		reviewHandler.RegisterRoutes(api)
		paymentHandler.RegisterRoutes(api)

		// protected (profile and provider endpoints)
		protected := api.Group("/")
		protected.Use(authMiddleware(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func authMiddleware(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "Unauthorized", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortWithError(c, http.StatusUnauthorized, "Unauthorized", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "Unauthorized", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
