package sqlite

import (
	"context"
	"database/sql"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
)

type messagesRepo struct {
	db *sql.DB
}

const messageColumns = `id, from_tg_id, to_tg_id, text, created_at`

func (r *messagesRepo) Create(ctx context.Context, fromTgID, toTgID int64, text string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (from_tg_id, to_tg_id, text)
		VALUES (?, ?, ?)`,
		fromTgID, toTgID, text)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *messagesRepo) GetByID(ctx context.Context, id int64) (domain.Message, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	return scanMessage(row)
}

func (r *messagesRepo) ListBetween(ctx context.Context, a, b int64) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages
		WHERE (from_tg_id = ? AND to_tg_id = ?)
		   OR (from_tg_id = ? AND to_tg_id = ?)
		ORDER BY created_at ASC`,
		a, b, b, a)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func scanMessage(row rowScanner) (domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.FromTgID, &m.ToTgID, &m.Text, &m.CreatedAt)
	if err != nil {
		return domain.Message{}, mapNotFound(err)
	}
	return m, nil
}
