package postgres

import (
	"context"

	"github.com/finsight/finsight-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chatMessagesRepo struct{ pool *pgxpool.Pool }

func (r *chatMessagesRepo) Create(m models.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO chat_messages(id, user_id, message, response) VALUES($1,$2,$3,$4)`,
		m.ID, m.UserID, m.Message, m.Response,
	)
	return err
}

func (r *chatMessagesRepo) ListByUser(userID string) ([]models.ChatMessage, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, user_id, message, response, created_at
		   FROM chat_messages WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
