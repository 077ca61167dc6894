package db

import (
	"context"
	"database/sql"
)

func scanForms(rows *sql.Rows) ([]Form, error) {
	defer rows.Close()
	var items []Form
	for rows.Next() {
		var i Form
		if err := rows.Scan(
			&i.ID,
			&i.DocumentName,
			&i.DocDesc,
			&i.Questions,
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

const createForm = `-- name: CreateForm :exec
insert into form (id, document_name, doc_desc, questions, created_at)
values (?, ?, ?, ?, ?)
`

type CreateFormParams struct {
	ID           string
	DocumentName string
	DocDesc      string
	Questions    string
	CreatedAt    int64
}

func (q *Queries) CreateForm(ctx context.Context, arg CreateFormParams) error {
	_, err := q.db.ExecContext(ctx, createForm,
		arg.ID,
		arg.DocumentName,
		arg.DocDesc,
		arg.Questions,
		arg.CreatedAt,
	)
	return err
}

const getForm = `-- name: GetForm :one
select id, document_name, doc_desc, questions, created_at from form
where id = ?
`

func (q *Queries) GetForm(ctx context.Context, id string) (Form, error) {
	row := q.db.QueryRowContext(ctx, getForm, id)
	var i Form
	err := row.Scan(
		&i.ID,
		&i.DocumentName,
		&i.DocDesc,
		&i.Questions,
		&i.CreatedAt,
	)
	return i, err
}

const getLatestForm = `-- name: GetLatestForm :one
select id, document_name, doc_desc, questions, created_at from form
order by created_at desc, rowid desc
limit 1
`

func (q *Queries) GetLatestForm(ctx context.Context) (Form, error) {
	row := q.db.QueryRowContext(ctx, getLatestForm)
	var i Form
	err := row.Scan(
		&i.ID,
		&i.DocumentName,
		&i.DocDesc,
		&i.Questions,
		&i.CreatedAt,
	)
	return i, err
}

const listForms = `-- name: ListForms :many
select id, document_name, doc_desc, questions, created_at from form
order by created_at asc, rowid asc
`

func (q *Queries) ListForms(ctx context.Context) ([]Form, error) {
	rows, err := q.db.QueryContext(ctx, listForms)
	if err != nil {
		return nil, err
	}
	return scanForms(rows)
}

const listRecentForms = `-- name: ListRecentForms :many
select id, document_name, doc_desc, questions, created_at from form
order by created_at desc, rowid desc
limit ?
`

func (q *Queries) ListRecentForms(ctx context.Context, limit int64) ([]Form, error) {
	rows, err := q.db.QueryContext(ctx, listRecentForms, limit)
	if err != nil {
		return nil, err
	}
	return scanForms(rows)
}

const createResponse = `-- name: CreateResponse :exec
insert into response (id, user_name, form_id, answers, created_at, updated_at)
values (?, ?, ?, ?, ?, ?)
`

type CreateResponseParams struct {
	ID        string
	UserName  string
	FormID    string
	Answers   string
	CreatedAt int64
	UpdatedAt int64
}

func (q *Queries) CreateResponse(ctx context.Context, arg CreateResponseParams) error {
	_, err := q.db.ExecContext(ctx, createResponse,
		arg.ID,
		arg.UserName,
		arg.FormID,
		arg.Answers,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const listResponses = `-- name: ListResponses :many
select id, user_name, form_id, answers, created_at, updated_at from response
order by created_at asc, rowid asc
`

func (q *Queries) ListResponses(ctx context.Context) ([]Response, error) {
	rows, err := q.db.QueryContext(ctx, listResponses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Response
	for rows.Next() {
		var i Response
		if err := rows.Scan(
			&i.ID,
			&i.UserName,
			&i.FormID,
			&i.Answers,
			&i.CreatedAt,
			&i.UpdatedAt,
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
