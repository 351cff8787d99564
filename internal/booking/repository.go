package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// releasedStatuses give the slot back; a completed booking keeps occupying
// its historical window.
var releasedStatuses = []string{string(StatusCancelled), string(StatusNoShow)}

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id string) error

	// HasOverlap checks for a conflicting non-terminal booking on the court.
	// excludeBookingID ignores the booking itself during reschedules.
	HasOverlap(ctx context.Context, courtID string, start, end time.Time, excludeBookingID string) (bool, error)

	// CourtCommitments returns the busy windows of one court inside window,
	// clipped to it. Terminal bookings do not count.
	CourtCommitments(ctx context.Context, courtID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error)

	// CoachCommitments is the coach-side counterpart of CourtCommitments.
	CoachCommitments(ctx context.Context, coachID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error)

	// CancelExpired finalizes unpaid holds whose expiry has passed and
	// returns how many rows changed.
	CancelExpired(ctx context.Context, now time.Time) (int64, error)

	// CompletePast finalizes non-terminal bookings whose window has passed.
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns("court_id", "coach_id", "user_id", "start_time", "end_time",
			"status", "payment_status", "price_cents", "reservation_expires_at").
		Values(b.CourtID, b.CoachID, b.UserID, b.StartTime, b.EndTime,
			b.Status, b.PaymentStatus, b.PriceCents, b.ReservationExpiresAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		// Backstop for the court no-overlap exclusion constraint when two
		// inserts race past the application-level check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

var bookingColumns = []string{
	"b.id", "b.court_id", "c.name", "cl.id", "cl.name",
	"b.coach_id", "co.display_name", "b.user_id", "u.display_name",
	"b.start_time", "b.end_time", "b.status", "b.payment_status", "b.price_cents",
	"b.reservation_expires_at", "b.cancelled_at", "b.created_at", "b.updated_at",
}

func bookingFrom(sel squirrel.SelectBuilder) squirrel.SelectBuilder {
	return sel.
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Join("public.clubs cl ON c.club_id = cl.id").
		Join("public.users u ON b.user_id = u.id").
		LeftJoin("public.coaches co ON b.coach_id = co.id")
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.CourtID, &b.CourtName, &b.ClubID, &b.ClubName,
		&b.CoachID, &b.CoachName, &b.UserID, &b.UserName,
		&b.StartTime, &b.EndTime, &b.Status, &b.PaymentStatus, &b.PriceCents,
		&b.ReservationExpiresAt, &b.CancelledAt, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := bookingFrom(psql.Select(bookingColumns...)).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	columns := append(append([]string{}, bookingColumns...), "count(*) OVER() as total_count")
	query := bookingFrom(psql.Select(columns...))

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"b.court_id": filter.CourtID})
	}
	if filter.CoachID != "" {
		query = query.Where(squirrel.Eq{"b.coach_id": filter.CoachID})
	}
	if filter.ClubID != "" {
		query = query.Where(squirrel.Eq{"cl.id": filter.ClubID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.StartTime != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_time": filter.StartTime})
	}
	if filter.EndTime != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": filter.EndTime})
	}

	orderBy := "b.start_time"
	switch filter.SortBy {
	case "created_at", "start_time", "end_time":
		orderBy = "b." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder == "asc" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	query, args, err := psql.Update("public.bookings").
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("status", b.Status).
		Set("payment_status", b.PaymentStatus).
		Set("price_cents", b.PriceCents).
		Set("reservation_expires_at", b.ReservationExpiresAt).
		Set("cancelled_at", b.CancelledAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, courtID string, start, end time.Time, excludeBookingID string) (bool, error) {
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.NotEq{"status": releasedStatuses}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeBookingID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) CourtCommitments(ctx context.Context, courtID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	return r.commitments(ctx, squirrel.Eq{"court_id": courtID}, window)
}

func (r *pgxRepository) CoachCommitments(ctx context.Context, coachID string, window schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	return r.commitments(ctx, squirrel.Eq{"coach_id": coachID}, window)
}

func (r *pgxRepository) commitments(ctx context.Context, owner squirrel.Eq, window schedule.TimeWindow) ([]schedule.TimeWindow, error) {
	query, args, err := psql.Select("start_time", "end_time").
		From("public.bookings").
		Where(owner).
		Where(squirrel.NotEq{"status": releasedStatuses}).
		Where(squirrel.Lt{"start_time": window.End}).
		Where(squirrel.Gt{"end_time": window.Start}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build commitments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commitments failed: %w", err)
	}
	defer rows.Close()

	var windows []schedule.TimeWindow
	for rows.Next() {
		var w schedule.TimeWindow
		if err := rows.Scan(&w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("scan commitment failed: %w", err)
		}
		if clipped, ok := w.Clip(window); ok {
			windows = append(windows, clipped)
		}
	}
	return windows, nil
}

func (r *pgxRepository) CancelExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Update("public.bookings").
		Set("status", StatusCancelled).
		Set("cancelled_at", now).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.NotEq{"status": releasedStatuses}).
		Where(squirrel.NotEq{"status": StatusCompleted}).
		Where(squirrel.Eq{"payment_status": PaymentUnpaid}).
		Where(squirrel.NotEq{"reservation_expires_at": nil}).
		Where(squirrel.LtOrEq{"reservation_expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cancel expired query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cancel expired holds failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Update("public.bookings").
		Set("status", StatusCompleted).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.NotEq{"status": releasedStatuses}).
		Where(squirrel.NotEq{"status": StatusCompleted}).
		Where(squirrel.LtOrEq{"end_time": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build complete past query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("complete past bookings failed: %w", err)
	}
	return ct.RowsAffected(), nil
}
