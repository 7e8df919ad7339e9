package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Assessment struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type AssessmentMeta struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type VerificationTicket struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	Qualification string `json:"qualification"`
	Status        string `json:"status"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	CreateAssessment(ctx context.Context, userID int, title string, payload json.RawMessage) (int, error)
	ListAssessments(ctx context.Context, userID int) ([]AssessmentMeta, error)
	GetAssessment(ctx context.Context, userID, id int) (Assessment, error)

	CreateVerificationTicket(ctx context.Context, userID int, qualification string) (int, error)
	ListPendingVerificationTickets(ctx context.Context) ([]VerificationTicket, error)
	MarkVerificationTicketSent(ctx context.Context, id int) error
	GetVerificationTicket(ctx context.Context, id int) (VerificationTicket, error)
	UpdateVerificationTicketStatus(ctx context.Context, id int, status string) error
	SetVerifiedUntil(ctx context.Context, userID int, until time.Time) error
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

func (r *PostgresRepository) CreateAssessment(ctx context.Context, userID int, title string, payload json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO assessments (user_id, title, payload, created_at) VALUES ($1, $2, $3, now()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, title, []byte(payload)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListAssessments(ctx context.Context, userID int) ([]AssessmentMeta, error) {
	query := "SELECT id, title, created_at FROM assessments WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AssessmentMeta
	for rows.Next() {
		var m AssessmentMeta
		if err := rows.Scan(&m.ID, &m.Title, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetAssessment(ctx context.Context, userID, id int) (Assessment, error) {
	var a Assessment
	var payload []byte
	query := "SELECT id, title, payload, created_at FROM assessments WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&a.ID, &a.Title, &payload, &a.CreatedAt)
	if err != nil {
		return Assessment{}, err
	}
	a.Payload = payload
	return a, nil
}

func (r *PostgresRepository) CreateVerificationTicket(ctx context.Context, userID int, qualification string) (int, error) {
	var id int
	query := "INSERT INTO verification_tickets (user_id, qualification, status) VALUES ($1, $2, 'pending') RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, qualification).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListPendingVerificationTickets(ctx context.Context) ([]VerificationTicket, error) {
	query := "SELECT id, user_id, qualification, status FROM verification_tickets WHERE status='pending' ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VerificationTicket
	for rows.Next() {
		var t VerificationTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Qualification, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) MarkVerificationTicketSent(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE verification_tickets SET status='sent' WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) GetVerificationTicket(ctx context.Context, id int) (VerificationTicket, error) {
	var t VerificationTicket
	query := "SELECT id, user_id, qualification, status FROM verification_tickets WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.UserID, &t.Qualification, &t.Status)
	return t, err
}

func (r *PostgresRepository) UpdateVerificationTicketStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE verification_tickets SET status=$2 WHERE id=$1", id, status)
	return err
}

func (r *PostgresRepository) SetVerifiedUntil(ctx context.Context, userID int, until time.Time) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET verified_until=$2 WHERE id=$1", userID, until)
	return err
}
