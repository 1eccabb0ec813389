package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Gender       string    `db:"gender"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var userColumns = []any{
	"id", "username", "password_hash", "first_name", "last_name",
	"gender", "role", "created_at", "updated_at",
}

func (r userRow) domain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Gender:       domain.Gender(r.Gender),
		Role:         domain.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type usersRepo struct {
	c conn
}

func (r *usersRepo) getBy(ctx context.Context, where goqu.Ex) (domain.User, error) {
	var row userRow
	if err := r.c.get(ctx, &row, r.c.from(usersTable).Select(userColumns...).Where(where)); err != nil {
		return domain.User{}, err
	}
	return row.domain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getBy(ctx, goqu.Ex{"id": id})
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getBy(ctx, goqu.Ex{"username": username})
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	_, err := r.c.exec(ctx, r.c.insert(usersTable).Rows(goqu.Record{
		"id":            u.ID,
		"username":      u.Username,
		"password_hash": u.PasswordHash,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"gender":        string(u.Gender),
		"role":          string(u.Role),
		"created_at":    u.CreatedAt,
		"updated_at":    now,
	}))
	return err
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	return r.c.execOne(ctx, r.c.update(usersTable).Set(goqu.Record{
		"username":      u.Username,
		"password_hash": u.PasswordHash,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"gender":        string(u.Gender),
		"role":          string(u.Role),
		"updated_at":    time.Now().UTC(),
	}).Where(goqu.Ex{"id": u.ID}))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	return r.c.execOne(ctx, r.c.delete(usersTable).Where(goqu.Ex{"id": id}))
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	err := r.c.selectAll(ctx, &rows, r.c.from(usersTable).
		Select(userColumns...).
		Order(goqu.I("username").Asc()))
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.c.count(ctx, usersTable)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
