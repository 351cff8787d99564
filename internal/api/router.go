package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/announcement"
	annHttp "github.com/courtsidehq/courtside-backend/internal/announcement/http"
	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/booking"
	bookingHttp "github.com/courtsidehq/courtside-backend/internal/booking/http"
	"github.com/courtsidehq/courtside-backend/internal/club"
	clubHttp "github.com/courtsidehq/courtside-backend/internal/club/http"
	"github.com/courtsidehq/courtside-backend/internal/coach"
	coachHttp "github.com/courtsidehq/courtside-backend/internal/coach/http"
	"github.com/courtsidehq/courtside-backend/internal/court"
	courtHttp "github.com/courtsidehq/courtside-backend/internal/court/http"
	"github.com/courtsidehq/courtside-backend/internal/file"
	fileHttp "github.com/courtsidehq/courtside-backend/internal/file/http"
	"github.com/courtsidehq/courtside-backend/internal/organization"
	orgHttp "github.com/courtsidehq/courtside-backend/internal/organization/http"
	"github.com/courtsidehq/courtside-backend/internal/stats"
	statsHttp "github.com/courtsidehq/courtside-backend/internal/stats/http"
	"github.com/courtsidehq/courtside-backend/internal/user"
	userHttp "github.com/courtsidehq/courtside-backend/internal/user/http"
)

// Config carries everything the router needs to assemble the API surface.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService         user.Service
	OrgService          organization.Service
	ClubService         club.Service
	CourtService        court.Service
	CoachService        coach.Service
	BookingService      booking.Service
	StatsService        stats.Service
	AnnouncementService announcement.Service
	FileService         file.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware and registers every module's routes
// under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	orgHandler := orgHttp.NewHandler(cfg.OrgService)
	clubHandler := clubHttp.NewHandler(cfg.ClubService, cfg.OrgService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.ClubService)
	coachHandler := coachHttp.NewHandler(cfg.CoachService, cfg.ClubService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	statsHandler := statsHttp.NewHandler(cfg.StatsService, cfg.ClubService)
	annHandler := annHttp.NewHandler(cfg.AnnouncementService, cfg.UserService)
	fileHandler := fileHttp.NewHandler(cfg.FileService, cfg.UserService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		orgHttp.RegisterRoutes(v1, orgHandler, authMiddleware)
		clubHttp.RegisterRoutes(v1, clubHandler, authMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware)
		coachHttp.RegisterRoutes(v1, coachHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		statsHttp.RegisterRoutes(v1, statsHandler, authMiddleware)
		annHttp.RegisterRoutes(v1, annHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}
