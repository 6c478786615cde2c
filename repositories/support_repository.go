package repositories

import (
	"context"
	"errors"
	"time"

	"fartburger/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

type SupportRepository struct {
	db *pgxpool.Pool
}

func NewSupportRepository(db *pgxpool.Pool) *SupportRepository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) Create(ctx context.Context, userName, message string) (*models.SupportMessage, error) {
	query := `
		INSERT INTO support_messages (user_name, message, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_name, message, admin_response, status, created_at, responded_at
	`
	msg := &models.SupportMessage{}
	err := r.db.QueryRow(ctx, query, userName, message, models.MessagePending, time.Now()).Scan(
		&msg.ID,
		&msg.UserName,
		&msg.Message,
		&msg.AdminResponse,
		&msg.Status,
		&msg.CreatedAt,
		&msg.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *SupportRepository) FindAll(ctx context.Context) ([]models.SupportMessage, error) {
	query := `
		SELECT id, user_name, message, admin_response, status, created_at, responded_at
		FROM support_messages
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.SupportMessage{}
	for rows.Next() {
		var msg models.SupportMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.UserName,
			&msg.Message,
			&msg.AdminResponse,
			&msg.Status,
			&msg.CreatedAt,
			&msg.RespondedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *SupportRepository) Respond(ctx context.Context, id int, response string) (*models.SupportMessage, error) {
	query := `
		UPDATE support_messages
		SET admin_response = $1, status = $2, responded_at = $3
		WHERE id = $4
		RETURNING id, user_name, message, admin_response, status, created_at, responded_at
	`
	msg := &models.SupportMessage{}
	err := r.db.QueryRow(ctx, query, response, models.MessageAnswered, time.Now(), id).Scan(
		&msg.ID,
		&msg.UserName,
		&msg.Message,
		&msg.AdminResponse,
		&msg.Status,
		&msg.CreatedAt,
		&msg.RespondedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return msg, nil
}
