package sqlstore

import (
	"context"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
)

type usersRepo struct {
	q      *queries.Queries
	mapErr ErrorMapper
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	id, err := r.q.CreateUser(ctx, queries.CreateUserParams{
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		HashedPassword: u.PasswordHash,
		IsActive:       u.IsActive,
		IsAdmin:        u.IsAdmin,
	})
	if err != nil {
		return 0, r.mapErr(err)
	}
	return id, nil
}

func (r *usersRepo) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUser(row))
	}
	return users, nil
}

func (r *usersRepo) SetUserActive(ctx context.Context, id int64, active bool) error {
	return mustAffect(r.q.SetUserActive(ctx, id, active))
}

func (r *usersRepo) SetUserAdmin(ctx context.Context, id int64, admin bool) error {
	return mustAffect(r.q.SetUserAdmin(ctx, id, admin))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return mustAffect(r.q.UpdateUserPasswordHash(ctx, id, hash))
}

func mapUser(row queries.User) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		PasswordHash: row.HashedPassword,
		IsActive:     row.IsActive,
		IsAdmin:      row.IsAdmin,
	}
}
