package organization

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

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Repository interface {
	Create(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	List(ctx context.Context, filter Filter) ([]*Organization, int, error)
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id string) error

	GetMember(ctx context.Context, orgID, userID string) (*Member, error)
	AddMember(ctx context.Context, orgID, userID, role string) error
	RemoveMember(ctx context.Context, orgID, userID string) error
	UpdateMemberRole(ctx context.Context, orgID, userID, role string) error
	ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error)
	CountOwners(ctx context.Context, orgID string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, org *Organization) error {
	query, args, err := psql.Insert("public.organizations").
		Columns("name", "is_active").
		Values(org.Name, org.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create organization query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&org.ID, &org.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Organization, error) {
	query, args, err := psql.Select("id", "name", "is_active", "created_at").
		From("public.organizations").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get organization query failed: %w", err)
	}

	var org Organization
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&org.ID, &org.Name, &org.IsActive, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organization failed: %w", err)
	}
	return &org, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Organization, int, error) {
	query := psql.Select("id", "name", "is_active", "created_at", "count(*) OVER() AS total_count").
		From("public.organizations").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list organizations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list organizations failed: %w", err)
	}
	defer rows.Close()

	var orgs []*Organization
	var total int
	for rows.Next() {
		var org Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.IsActive, &org.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan organization failed: %w", err)
		}
		orgs = append(orgs, &org)
	}
	return orgs, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, org *Organization) error {
	query, args, err := psql.Update("public.organizations").
		Set("name", org.Name).
		Set("is_active", org.IsActive).
		Where(squirrel.Eq{"id": org.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update organization query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update organization failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes by deactivating.
func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Update("public.organizations").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete organization query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete organization failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) GetMember(ctx context.Context, orgID, userID string) (*Member, error) {
	query, args, err := psql.Select("m.user_id", "u.email", "u.display_name", "m.role").
		From("public.organization_members m").
		Join("public.users u ON m.user_id = u.id").
		Where(squirrel.Eq{"m.organization_id": orgID, "m.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get member query failed: %w", err)
	}

	var m Member
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotMember
		}
		return nil, fmt.Errorf("get member failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) AddMember(ctx context.Context, orgID, userID, role string) error {
	query, args, err := psql.Insert("public.organization_members").
		Columns("organization_id", "user_id", "role").
		Values(orgID, userID, role).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add member query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrUserAlreadyMember
			case pgerrcode.ForeignKeyViolation:
				return ErrUserNotFound
			}
		}
		return fmt.Errorf("add member failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) RemoveMember(ctx context.Context, orgID, userID string) error {
	query, args, err := psql.Delete("public.organization_members").
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove member query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove member failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrUserNotMember
	}
	return nil
}

func (r *pgxRepository) UpdateMemberRole(ctx context.Context, orgID, userID, role string) error {
	query, args, err := psql.Update("public.organization_members").
		Set("role", role).
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update member role query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update member role failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrUserNotMember
	}
	return nil
}

func (r *pgxRepository) ListMembers(ctx context.Context, orgID string, filter MemberFilter) ([]*Member, int, error) {
	query := psql.Select("m.user_id", "u.email", "u.display_name", "m.role", "count(*) OVER() AS total_count").
		From("public.organization_members m").
		Join("public.users u ON m.user_id = u.id").
		Where(squirrel.Eq{"m.organization_id": orgID}).
		OrderBy("m.role ASC", "u.display_name ASC")

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
		return nil, 0, fmt.Errorf("build list members query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list members failed: %w", err)
	}
	defer rows.Close()

	var members []*Member
	var total int
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Email, &m.DisplayName, &m.Role, &total); err != nil {
			return nil, 0, fmt.Errorf("scan member failed: %w", err)
		}
		members = append(members, &m)
	}
	return members, total, nil
}

func (r *pgxRepository) CountOwners(ctx context.Context, orgID string) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("public.organization_members").
		Where(squirrel.Eq{"organization_id": orgID, "role": RoleOwner}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count owners query failed: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count owners failed: %w", err)
	}
	return n, nil
}
