package sqlite

import (
	"context"
	"database/sql"

	"github.com/kompanion-app/kompanion/internal/miniapp/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, tg_id, first_name, last_name, middle_name, age,
	about, drinks, topics, location, balance, is_subscribed`

func (r *usersRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetByTgID(ctx context.Context, tgID int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE tg_id = ?`, tgID)
	return scanUser(row)
}

func (r *usersRepo) Insert(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (
			tg_id, first_name, last_name, middle_name, age,
			about, drinks, topics, location
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.TgID,
		u.FirstName,
		mapOptionalString(u.LastName),
		mapOptionalString(u.MiddleName),
		mapOptionalInt64(u.Age),
		mapOptionalString(u.About),
		mapOptionalString(u.Drinks),
		mapOptionalString(u.Topics),
		mapOptionalString(u.Location),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateProfile(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		SET first_name = ?, last_name = ?, middle_name = ?, age = ?,
			about = ?, drinks = ?, topics = ?, location = ?
		WHERE tg_id = ?`,
		u.FirstName,
		mapOptionalString(u.LastName),
		mapOptionalString(u.MiddleName),
		mapOptionalInt64(u.Age),
		mapOptionalString(u.About),
		mapOptionalString(u.Drinks),
		mapOptionalString(u.Topics),
		mapOptionalString(u.Location),
		u.TgID,
	)
	return err
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) AddBalance(ctx context.Context, tgID int64, amount float64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		SET balance = COALESCE(balance, 0) + ?
		WHERE tg_id = ?`,
		amount, tgID)
	return err
}

func (r *usersRepo) SetSubscribed(ctx context.Context, tgID int64, active bool) error {
	subscribed := 0
	if active {
		subscribed = 1
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_subscribed = ? WHERE tg_id = ?`,
		subscribed, tgID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u          domain.User
		tgID       sql.NullInt64
		lastName   sql.NullString
		middleName sql.NullString
		age        sql.NullInt64
		about      sql.NullString
		drinks     sql.NullString
		topics     sql.NullString
		location   sql.NullString
		balance    sql.NullFloat64
		subscribed sql.NullInt64
	)

	err := row.Scan(
		&u.ID, &tgID, &u.FirstName, &lastName, &middleName, &age,
		&about, &drinks, &topics, &location, &balance, &subscribed,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.TgID = tgID.Int64
	u.LastName = mapNullStringPtr(lastName)
	u.MiddleName = mapNullStringPtr(middleName)
	u.Age = mapNullInt64Ptr(age)
	u.About = mapNullStringPtr(about)
	u.Drinks = mapNullStringPtr(drinks)
	u.Topics = mapNullStringPtr(topics)
	u.Location = mapNullStringPtr(location)
	u.Balance = balance.Float64
	u.Subscribed = subscribed.Int64 != 0
	return u, nil
}
