package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/stats"
)

type DailyStatsResponse struct {
	Date             string    `json:"date"`
	TotalBookings    int       `json:"total_bookings"`
	CancelledCount   int       `json:"cancelled_count"`
	NoShowCount      int       `json:"no_show_count"`
	BookedMinutes    int       `json:"booked_minutes"`
	OpenCourtMinutes int       `json:"open_court_minutes"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	RevenueCents     int64     `json:"revenue_cents"`
	ComputedAt       time.Time `json:"computed_at"`
}

func NewDailyStatsResponse(s *stats.ClubDailyStats) DailyStatsResponse {
	return DailyStatsResponse{
		Date:             s.Date,
		TotalBookings:    s.TotalBookings,
		CancelledCount:   s.CancelledCount,
		NoShowCount:      s.NoShowCount,
		BookedMinutes:    s.BookedMinutes,
		OpenCourtMinutes: s.OpenCourtMinutes,
		OccupancyRate:    s.OccupancyRate,
		RevenueCents:     s.RevenueCents,
		ComputedAt:       s.ComputedAt,
	}
}
