package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/announcement"
	"github.com/courtsidehq/courtside-backend/internal/api"
	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/booking"
	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/coach"
	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/file"
	"github.com/courtsidehq/courtside-backend/internal/organization"
	"github.com/courtsidehq/courtside-backend/internal/pkg/storage"
	"github.com/courtsidehq/courtside-backend/internal/stats"
	"github.com/courtsidehq/courtside-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	BookingHoldTTL       time.Duration
	SweepInterval        time.Duration
	StatsRefreshInterval time.Duration
	StorageBasePath      string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	JWTManager     *auth.JWTManager
	Sweeper        *booking.Sweeper
	StatsRefresher *stats.Refresher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Organization module
	orgRepo := organization.NewPgxRepository(cfg.DBPool)
	orgService := organization.NewService(orgRepo, userService)

	// Club module
	clubRepo := club.NewPgxRepository(cfg.DBPool)
	clubService := club.NewService(clubRepo, orgService)

	// Booking repo doubles as the commitment source for availability checks,
	// so it is created before the court and coach services that consume it.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Court module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, clubService, bookingRepo)

	// Coach module
	coachRepo := coach.NewPgxRepository(cfg.DBPool)
	coachService := coach.NewService(coachRepo, clubService, courtService, bookingRepo)

	// Stats module
	statsRepo := stats.NewPgxRepository(cfg.DBPool)
	statsService := stats.NewService(statsRepo, clubService)
	statsRefresher := stats.NewRefresher(statsRepo, statsService, cfg.StatsRefreshInterval)

	// Booking module
	bookingService := booking.NewService(
		bookingRepo, courtService, coachService, clubService, statsService, cfg.BookingHoldTTL,
	)
	sweeper := booking.NewSweeper(bookingRepo, cfg.SweepInterval)

	// Announcement module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo, clubService)

	// File module
	store, err := storage.NewLocalStorage(cfg.StorageBasePath)
	if err != nil {
		return nil, err
	}
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		OrgService:          orgService,
		ClubService:         clubService,
		CourtService:        courtService,
		CoachService:        coachService,
		BookingService:      bookingService,
		StatsService:        statsService,
		AnnouncementService: annService,
		FileService:         fileService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:         router,
		JWTManager:     jwtManager,
		Sweeper:        sweeper,
		StatsRefresher: statsRefresher,
	}, nil
}
