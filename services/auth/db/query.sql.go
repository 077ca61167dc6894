package db

import (
	"context"
)

const userColumns = `user.id, user.name, user.email, user.phone, user.password_hash, user.created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :exec
insert into user (id, name, email, phone, password_hash, created_at)
values (?, ?, ?, ?, ?, ?)
`

type CreateUserParams struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    int64
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.PasswordHash,
		arg.CreatedAt,
	)
	return err
}

const getUserByEmail = `-- name: GetUserByEmail :one
select ` + userColumns + ` from user
where email = ?
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	return scanUser(row)
}

const getUserByID = `-- name: GetUserByID :one
select ` + userColumns + ` from user
where id = ?
`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	return scanUser(row)
}

const createToken = `-- name: CreateToken :exec
insert into token (token, user_id, expires_at)
values (?, ?, ?)
`

type CreateTokenParams struct {
	Token     string
	UserID    string
	ExpiresAt int64
}

func (q *Queries) CreateToken(ctx context.Context, arg CreateTokenParams) error {
	_, err := q.db.ExecContext(ctx, createToken, arg.Token, arg.UserID, arg.ExpiresAt)
	return err
}

const getUserFromToken = `-- name: GetUserFromToken :one
select ` + userColumns + ` from token
inner join user on user.id = token.user_id
where token.token = ? and token.expires_at > ?
`

type GetUserFromTokenParams struct {
	Token string
	Now   int64
}

func (q *Queries) GetUserFromToken(ctx context.Context, arg GetUserFromTokenParams) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserFromToken, arg.Token, arg.Now)
	return scanUser(row)
}

const deleteToken = `-- name: DeleteToken :exec
delete from token
where token = ?
`

func (q *Queries) DeleteToken(ctx context.Context, token string) error {
	_, err := q.db.ExecContext(ctx, deleteToken, token)
	return err
}

const deleteExpiredTokens = `-- name: DeleteExpiredTokens :exec
delete from token
where expires_at <= ?
`

func (q *Queries) DeleteExpiredTokens(ctx context.Context, now int64) error {
	_, err := q.db.ExecContext(ctx, deleteExpiredTokens, now)
	return err
}

const createMessage = `-- name: CreateMessage :exec
insert into message (user_id, name, email, phone, message, created_at)
values (?, ?, ?, ?, ?, ?)
`

type CreateMessageParams struct {
	UserID    string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt int64
}

func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) error {
	_, err := q.db.ExecContext(ctx, createMessage,
		arg.UserID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.Message,
		arg.CreatedAt,
	)
	return err
}

const getUserMessages = `-- name: GetUserMessages :many
select id, user_id, name, email, phone, message, created_at from message
where user_id = ?
order by id asc
`

func (q *Queries) GetUserMessages(ctx context.Context, userID string) ([]Message, error) {
	rows, err := q.db.QueryContext(ctx, getUserMessages, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Message
	for rows.Next() {
		var i Message
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Name,
			&i.Email,
			&i.Phone,
			&i.Message,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
