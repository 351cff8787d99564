package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtsidehq/courtside-backend/internal/pricing"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id string) error

	CreatePriceRule(ctx context.Context, rule *pricing.Rule) error
	ListPriceRules(ctx context.Context, courtID string) ([]pricing.Rule, error)
	DeletePriceRule(ctx context.Context, courtID, ruleID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	query, args, err := psql.Insert("public.courts").
		Columns("club_id", "name", "sport", "indoor", "default_price_cents").
		Values(c.ClubID, c.Name, c.Sport, c.Indoor, c.DefaultPriceCents).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create court query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	query, args, err := psql.Select(
		"id", "club_id", "name", "sport", "indoor", "default_price_cents",
		"created_at", "updated_at",
	).
		From("public.courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get court query failed: %w", err)
	}

	var c Court
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.ClubID, &c.Name, &c.Sport, &c.Indoor, &c.DefaultPriceCents,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	query := psql.Select(
		"id", "club_id", "name", "sport", "indoor", "default_price_cents",
		"created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.courts")

	if filter.ClubID != "" {
		query = query.Where(squirrel.Eq{"club_id": filter.ClubID})
	}
	if filter.Sport != "" {
		query = query.Where(squirrel.Eq{"sport": filter.Sport})
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
		return nil, 0, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	var total int
	for rows.Next() {
		var c Court
		if err := rows.Scan(
			&c.ID, &c.ClubID, &c.Name, &c.Sport, &c.Indoor, &c.DefaultPriceCents,
			&c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, &c)
	}

	return courts, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	query, args, err := psql.Update("public.courts").
		Set("name", c.Name).
		Set("sport", c.Sport).
		Set("indoor", c.Indoor).
		Set("default_price_cents", c.DefaultPriceCents).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreatePriceRule(ctx context.Context, rule *pricing.Rule) error {
	query, args, err := psql.Insert("public.court_price_rules").
		Columns("court_id", "day_of_week", "start_time", "end_time", "price_cents").
		Values(rule.CourtID, rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.PriceCents).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create price rule query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt)
}

func (r *pgxRepository) ListPriceRules(ctx context.Context, courtID string) ([]pricing.Rule, error) {
	query, args, err := psql.Select("id", "court_id", "day_of_week", "start_time", "end_time", "price_cents", "created_at").
		From("public.court_price_rules").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list price rules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price rules failed: %w", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var rule pricing.Rule
		if err := rows.Scan(&rule.ID, &rule.CourtID, &rule.DayOfWeek, &rule.StartTime, &rule.EndTime, &rule.PriceCents, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price rule failed: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *pgxRepository) DeletePriceRule(ctx context.Context, courtID, ruleID string) error {
	query, args, err := psql.Delete("public.court_price_rules").
		Where(squirrel.Eq{"id": ruleID, "court_id": courtID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete price rule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete price rule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRuleNotFound
	}
	return nil
}
