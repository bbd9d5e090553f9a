package sqlite

import (
	"context"
	"database/sql"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
)

type invitesRepo struct {
	db *sql.DB
}

const inviteColumns = `id, from_tg_id, to_tg_id, status, created_at`

func (r *invitesRepo) GetPending(ctx context.Context, fromTgID, toTgID int64) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		WHERE from_tg_id = ? AND to_tg_id = ? AND status = ?`,
		fromTgID, toTgID, domain.InviteStatusPending)
	return scanInvite(row)
}

func (r *invitesRepo) Create(ctx context.Context, fromTgID, toTgID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (from_tg_id, to_tg_id, status)
		VALUES (?, ?, ?)`,
		fromTgID, toTgID, domain.InviteStatusPending)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *invitesRepo) GetByID(ctx context.Context, id int64) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id)
	return scanInvite(row)
}

func (r *invitesRepo) ListForUser(ctx context.Context, tgID int64) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		WHERE from_tg_id = ? OR to_tg_id = ?
		ORDER BY created_at DESC`,
		tgID, tgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var inv domain.Invite
	err := row.Scan(&inv.ID, &inv.FromTgID, &inv.ToTgID, &inv.Status, &inv.CreatedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}
