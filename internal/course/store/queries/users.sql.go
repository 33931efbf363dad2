package queries

import "context"

const userColumns = `id, username, first_name, last_name, hashed_password, is_active, is_admin`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.FirstName,
		&i.LastName,
		&i.HashedPassword,
		&i.IsActive,
		&i.IsAdmin,
	)
	return i, err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	return scanUser(q.queryRow(ctx, getUserByID, id))
}

const getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = ?`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(q.queryRow(ctx, getUserByUsername, username))
}

const createUser = `
INSERT INTO users (username, first_name, last_name, hashed_password, is_active, is_admin)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`

type CreateUserParams struct {
	Username       string
	FirstName      string
	LastName       string
	HashedPassword string
	IsActive       bool
	IsAdmin        bool
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createUser,
		arg.Username,
		arg.FirstName,
		arg.LastName,
		arg.HashedPassword,
		arg.IsActive,
		arg.IsAdmin,
	).Scan(&id)
	return id, err
}

const listActiveUsers = `SELECT ` + userColumns + ` FROM users WHERE is_active = TRUE ORDER BY id`

func (q *Queries) ListActiveUsers(ctx context.Context) ([]User, error) {
	rows, err := q.query(ctx, listActiveUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setUserActive = `UPDATE users SET is_active = ? WHERE id = ?`

func (q *Queries) SetUserActive(ctx context.Context, id int64, active bool) (int64, error) {
	return q.execRows(ctx, setUserActive, active, id)
}

const setUserAdmin = `UPDATE users SET is_admin = ? WHERE id = ?`

func (q *Queries) SetUserAdmin(ctx context.Context, id int64, admin bool) (int64, error) {
	return q.execRows(ctx, setUserAdmin, admin, id)
}

const updateUserPasswordHash = `UPDATE users SET hashed_password = ? WHERE id = ?`

func (q *Queries) UpdateUserPasswordHash(ctx context.Context, id int64, hash string) (int64, error) {
	return q.execRows(ctx, updateUserPasswordHash, hash, id)
}
