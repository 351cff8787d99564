package club

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Club) error
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, filter Filter) ([]*Club, int, error)
	Update(ctx context.Context, c *Club) error
	Delete(ctx context.Context, id string) error

	// UpsertBusinessHours replaces the weekly rule for one day-of-week.
	UpsertBusinessHours(ctx context.Context, rule *BusinessHourRule) error
	ListBusinessHours(ctx context.Context, clubID string) ([]BusinessHourRule, error)

	CreateException(ctx context.Context, ex *SpecialHourException) error
	ListExceptions(ctx context.Context, clubID string, dates []string) ([]SpecialHourException, error)
	DeleteException(ctx context.Context, clubID, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, c *Club) error {
	query, args, err := psql.Insert("public.clubs").
		Columns("organization_id", "name", "timezone", "address", "description").
		Values(c.OrganizationID, c.Name, c.Timezone, c.Address, c.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create club query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Club, error) {
	query, args, err := psql.Select(
		"id", "organization_id", "name", "timezone", "address", "description",
		"created_at", "updated_at",
	).
		From("public.clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get club query failed: %w", err)
	}

	var c Club
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.Timezone, &c.Address, &c.Description,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get club failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Club, int, error) {
	query := psql.Select(
		"id", "organization_id", "name", "timezone", "address", "description",
		"created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.clubs")

	if filter.OrganizationID != "" {
		query = query.Where(squirrel.Eq{"organization_id": filter.OrganizationID})
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	query = query.OrderBy("name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list clubs query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clubs failed: %w", err)
	}
	defer rows.Close()

	var clubs []*Club
	var total int
	for rows.Next() {
		var c Club
		if err := rows.Scan(
			&c.ID, &c.OrganizationID, &c.Name, &c.Timezone, &c.Address, &c.Description,
			&c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan club failed: %w", err)
		}
		clubs = append(clubs, &c)
	}

	return clubs, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Club) error {
	query, args, err := psql.Update("public.clubs").
		Set("name", c.Name).
		Set("timezone", c.Timezone).
		Set("address", c.Address).
		Set("description", c.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update club query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update club failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete club query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete club failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpsertBusinessHours(ctx context.Context, rule *BusinessHourRule) error {
	query, args, err := psql.Insert("public.business_hours").
		Columns("club_id", "day_of_week", "open_time", "close_time", "is_closed").
		Values(rule.ClubID, rule.DayOfWeek, rule.OpenTime, rule.CloseTime, rule.IsClosed).
		Suffix(`ON CONFLICT (club_id, day_of_week) DO UPDATE
			SET open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    is_closed = EXCLUDED.is_closed
			RETURNING id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert business hours query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&rule.ID)
}

func (r *pgxRepository) ListBusinessHours(ctx context.Context, clubID string) ([]BusinessHourRule, error) {
	query, args, err := psql.Select("id", "club_id", "day_of_week", "open_time", "close_time", "is_closed").
		From("public.business_hours").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list business hours query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list business hours failed: %w", err)
	}
	defer rows.Close()

	var rules []BusinessHourRule
	for rows.Next() {
		var rule BusinessHourRule
		if err := rows.Scan(&rule.ID, &rule.ClubID, &rule.DayOfWeek, &rule.OpenTime, &rule.CloseTime, &rule.IsClosed); err != nil {
			return nil, fmt.Errorf("scan business hour rule failed: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *pgxRepository) CreateException(ctx context.Context, ex *SpecialHourException) error {
	query, args, err := psql.Insert("public.special_hours").
		Columns("club_id", "date", "open_time", "close_time", "is_closed").
		Values(ex.ClubID, ex.Date, ex.OpenTime, ex.CloseTime, ex.IsClosed).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create exception query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ex.ID, &ex.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrExceptionExists
		}
		return fmt.Errorf("create exception failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListExceptions(ctx context.Context, clubID string, dates []string) ([]SpecialHourException, error) {
	query := psql.Select("id", "club_id", "date", "open_time", "close_time", "is_closed", "created_at").
		From("public.special_hours").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("date ASC")

	if len(dates) > 0 {
		query = query.Where(squirrel.Eq{"date": dates})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list exceptions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list exceptions failed: %w", err)
	}
	defer rows.Close()

	var exceptions []SpecialHourException
	for rows.Next() {
		var ex SpecialHourException
		if err := rows.Scan(&ex.ID, &ex.ClubID, &ex.Date, &ex.OpenTime, &ex.CloseTime, &ex.IsClosed, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exception failed: %w", err)
		}
		exceptions = append(exceptions, ex)
	}
	return exceptions, nil
}

func (r *pgxRepository) DeleteException(ctx context.Context, clubID, id string) error {
	query, args, err := psql.Delete("public.special_hours").
		Where(squirrel.Eq{"id": id, "club_id": clubID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete exception query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete exception failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
