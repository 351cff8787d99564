package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Repository interface {
	// Get returns the cached row for a club-date, or nil when none exists.
	Get(ctx context.Context, clubID, date string) (*ClubDailyStats, error)

	// Upsert writes the aggregate, clearing the dirty flag.
	Upsert(ctx context.Context, s *ClubDailyStats) error

	// MarkDirty flags a club-date for recomputation, creating a placeholder
	// row if none exists yet.
	MarkDirty(ctx context.Context, clubID, date string) error

	// BookingsForDay loads the raw booking slices overlapping the day window
	// for all courts of the club.
	BookingsForDay(ctx context.Context, clubID string, day schedule.TimeWindow) ([]BookingRow, error)

	CountCourts(ctx context.Context, clubID string) (int, error)

	// ListDirty returns club-dates flagged for recomputation, oldest first.
	ListDirty(ctx context.Context, limit int) ([]DirtyKey, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Get(ctx context.Context, clubID, date string) (*ClubDailyStats, error) {
	query, args, err := psql.Select(
		"id", "club_id", "date",
		"total_bookings", "cancelled_count", "no_show_count",
		"booked_minutes", "open_court_minutes", "occupancy_rate",
		"revenue_cents", "dirty", "computed_at",
	).
		From("public.club_daily_stats").
		Where(squirrel.Eq{"club_id": clubID, "date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get stats query failed: %w", err)
	}

	var s ClubDailyStats
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.ClubID, &s.Date,
		&s.TotalBookings, &s.CancelledCount, &s.NoShowCount,
		&s.BookedMinutes, &s.OpenCourtMinutes, &s.OccupancyRate,
		&s.RevenueCents, &s.Dirty, &s.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stats failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Upsert(ctx context.Context, s *ClubDailyStats) error {
	query, args, err := psql.Insert("public.club_daily_stats").
		Columns("club_id", "date",
			"total_bookings", "cancelled_count", "no_show_count",
			"booked_minutes", "open_court_minutes", "occupancy_rate",
			"revenue_cents", "dirty", "computed_at").
		Values(s.ClubID, s.Date,
			s.TotalBookings, s.CancelledCount, s.NoShowCount,
			s.BookedMinutes, s.OpenCourtMinutes, s.OccupancyRate,
			s.RevenueCents, false, s.ComputedAt).
		Suffix(`ON CONFLICT (club_id, date) DO UPDATE SET
			total_bookings = EXCLUDED.total_bookings,
			cancelled_count = EXCLUDED.cancelled_count,
			no_show_count = EXCLUDED.no_show_count,
			booked_minutes = EXCLUDED.booked_minutes,
			open_court_minutes = EXCLUDED.open_court_minutes,
			occupancy_rate = EXCLUDED.occupancy_rate,
			revenue_cents = EXCLUDED.revenue_cents,
			dirty = false,
			computed_at = EXCLUDED.computed_at
			RETURNING id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert stats query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID); err != nil {
		return fmt.Errorf("upsert stats failed: %w", err)
	}
	s.Dirty = false
	return nil
}

func (r *pgxRepository) MarkDirty(ctx context.Context, clubID, date string) error {
	query, args, err := psql.Insert("public.club_daily_stats").
		Columns("club_id", "date", "dirty").
		Values(clubID, date, true).
		Suffix("ON CONFLICT (club_id, date) DO UPDATE SET dirty = true").
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark dirty query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark stats dirty failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) BookingsForDay(ctx context.Context, clubID string, day schedule.TimeWindow) ([]BookingRow, error) {
	query, args, err := psql.Select(
		"b.start_time", "b.end_time", "b.status", "b.payment_status", "b.price_cents",
	).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Where(squirrel.Eq{"c.club_id": clubID}).
		Where(squirrel.Lt{"b.start_time": day.End}).
		Where(squirrel.Gt{"b.end_time": day.Start}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bookings for day query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings for day failed: %w", err)
	}
	defer rows.Close()

	var out []BookingRow
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(&b.Start, &b.End, &b.Status, &b.PaymentStatus, &b.PriceCents); err != nil {
			return nil, fmt.Errorf("scan booking row failed: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *pgxRepository) ListDirty(ctx context.Context, limit int) ([]DirtyKey, error) {
	query, args, err := psql.Select("club_id", "date").
		From("public.club_daily_stats").
		Where(squirrel.Eq{"dirty": true}).
		OrderBy("computed_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list dirty query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dirty stats failed: %w", err)
	}
	defer rows.Close()

	var keys []DirtyKey
	for rows.Next() {
		var k DirtyKey
		if err := rows.Scan(&k.ClubID, &k.Date); err != nil {
			return nil, fmt.Errorf("scan dirty key failed: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (r *pgxRepository) CountCourts(ctx context.Context, clubID string) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("public.courts").
		Where(squirrel.Eq{"club_id": clubID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count courts query failed: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count courts failed: %w", err)
	}
	return n, nil
}
