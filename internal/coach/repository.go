package coach

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Coach) error
	GetByID(ctx context.Context, id string) (*Coach, error)
	List(ctx context.Context, filter Filter) ([]*Coach, int, error)
	Update(ctx context.Context, c *Coach) error
	Delete(ctx context.Context, id string) error

	CreateWeeklySlot(ctx context.Context, slot *WeeklySlot) error
	ListWeeklySlots(ctx context.Context, coachID string) ([]WeeklySlot, error)
	DeleteWeeklySlot(ctx context.Context, coachID, slotID string) error

	CreateTimeOff(ctx context.Context, off *TimeOff) error
	ListTimeOff(ctx context.Context, coachID string, dates []string) ([]TimeOff, error)
	DeleteTimeOff(ctx context.Context, coachID, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, c *Coach) error {
	query, args, err := psql.Insert("public.coaches").
		Columns("club_id", "user_id", "display_name", "bio", "hourly_rate_cents").
		Values(c.ClubID, c.UserID, c.DisplayName, c.Bio, c.HourlyRateCents).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create coach query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Coach, error) {
	query, args, err := psql.Select(
		"id", "club_id", "user_id", "display_name", "bio", "hourly_rate_cents",
		"created_at", "updated_at",
	).
		From("public.coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get coach query failed: %w", err)
	}

	var c Coach
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.ClubID, &c.UserID, &c.DisplayName, &c.Bio, &c.HourlyRateCents,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get coach failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Coach, int, error) {
	query := psql.Select(
		"id", "club_id", "user_id", "display_name", "bio", "hourly_rate_cents",
		"created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.coaches")

	if filter.ClubID != "" {
		query = query.Where(squirrel.Eq{"club_id": filter.ClubID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	query = query.OrderBy("display_name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list coaches query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list coaches failed: %w", err)
	}
	defer rows.Close()

	var coaches []*Coach
	var total int
	for rows.Next() {
		var c Coach
		if err := rows.Scan(
			&c.ID, &c.ClubID, &c.UserID, &c.DisplayName, &c.Bio, &c.HourlyRateCents,
			&c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan coach failed: %w", err)
		}
		coaches = append(coaches, &c)
	}

	return coaches, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Coach) error {
	query, args, err := psql.Update("public.coaches").
		Set("display_name", c.DisplayName).
		Set("bio", c.Bio).
		Set("hourly_rate_cents", c.HourlyRateCents).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update coach query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update coach failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete coach query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete coach failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreateWeeklySlot(ctx context.Context, slot *WeeklySlot) error {
	query, args, err := psql.Insert("public.coach_weekly_slots").
		Columns("coach_id", "day_of_week", "start_time", "end_time", "note").
		Values(slot.CoachID, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.Note).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create weekly slot query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&slot.ID)
}

func (r *pgxRepository) ListWeeklySlots(ctx context.Context, coachID string) ([]WeeklySlot, error) {
	query, args, err := psql.Select("id", "coach_id", "day_of_week", "start_time", "end_time", "note").
		From("public.coach_weekly_slots").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list weekly slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weekly slots failed: %w", err)
	}
	defer rows.Close()

	var slots []WeeklySlot
	for rows.Next() {
		var s WeeklySlot
		if err := rows.Scan(&s.ID, &s.CoachID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.Note); err != nil {
			return nil, fmt.Errorf("scan weekly slot failed: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *pgxRepository) DeleteWeeklySlot(ctx context.Context, coachID, slotID string) error {
	query, args, err := psql.Delete("public.coach_weekly_slots").
		Where(squirrel.Eq{"id": slotID, "coach_id": coachID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete weekly slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete weekly slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *pgxRepository) CreateTimeOff(ctx context.Context, off *TimeOff) error {
	query, args, err := psql.Insert("public.coach_time_off").
		Columns("coach_id", "date", "full_day", "start_time", "end_time", "reason").
		Values(off.CoachID, off.Date, off.FullDay, off.StartTime, off.EndTime, off.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create time off query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&off.ID, &off.CreatedAt)
}

func (r *pgxRepository) ListTimeOff(ctx context.Context, coachID string, dates []string) ([]TimeOff, error) {
	query := psql.Select("id", "coach_id", "date", "full_day", "start_time", "end_time", "reason", "created_at").
		From("public.coach_time_off").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("date ASC")

	if len(dates) > 0 {
		query = query.Where(squirrel.Eq{"date": dates})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time off query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list time off failed: %w", err)
	}
	defer rows.Close()

	var entries []TimeOff
	for rows.Next() {
		var off TimeOff
		if err := rows.Scan(&off.ID, &off.CoachID, &off.Date, &off.FullDay, &off.StartTime, &off.EndTime, &off.Reason, &off.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan time off failed: %w", err)
		}
		entries = append(entries, off)
	}
	return entries, nil
}

func (r *pgxRepository) DeleteTimeOff(ctx context.Context, coachID, id string) error {
	query, args, err := psql.Delete("public.coach_time_off").
		Where(squirrel.Eq{"id": id, "coach_id": coachID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete time off query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete time off failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrTimeOffNotFound
	}
	return nil
}
