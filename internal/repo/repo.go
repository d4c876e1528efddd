// Package repo is the Postgres persistence layer: user accounts and saved
// piping projects.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Project is one saved calculation. Payload holds the client's request
// document verbatim as JSON; the server never interprets it on the way out.
type Project struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveProject(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID, projectID int) (Project, error)
	DeleteProject(ctx context.Context, userID, projectID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveProject(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO projects (user_id, name, payload, created_at, updated_at)
	          VALUES ($1, $2, $3, now(), now()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := `SELECT id, user_id, name, payload, created_at, updated_at
	          FROM projects WHERE user_id=$1 ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Payload, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID, projectID int) (Project, error) {
	var p Project
	query := `SELECT id, user_id, name, payload, created_at, updated_at
	          FROM projects WHERE id=$1 AND user_id=$2`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Payload, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresRepository) DeleteProject(ctx context.Context, userID, projectID int) error {
	query := "DELETE FROM projects WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, projectID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
