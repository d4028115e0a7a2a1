package postgres

import (
	"context"
	"database/sql"
	"time"

	"coolgym-backend/internal/domain"
	"coolgym-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, password_hash, name, phone, type, role, client_plan_id, profile_photo, is_deleted, created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, email, password_hash, name, phone, type, role, client_plan_id, profile_photo, is_deleted, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10, $10) RETURNING id`
	now := time.Now().UTC()
	u.CreatedOn = now
	u.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.Name, u.Phone, u.Type, u.Role, u.ClientPlanID, u.ProfilePhoto, now,
	).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_deleted = FALSE`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate takes a row lock on the user so concurrent
// transactions touching the same client serialize.
func (r *userRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_deleted = FALSE FOR UPDATE`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND is_deleted = FALSE`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_deleted = FALSE`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username=$1, email=$2, password_hash=$3, name=$4, phone=$5, type=$6, role=$7, client_plan_id=$8, profile_photo=$9, is_deleted=$10, updated_on=$11 WHERE id=$12`
	u.UpdatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.Name, u.Phone, u.Type, u.Role, u.ClientPlanID, u.ProfilePhoto, u.IsDeleted, u.UpdatedOn, u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_deleted = FALSE ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Type, &u.Role,
			&u.ClientPlanID, &u.ProfilePhoto, &u.IsDeleted, &u.CreatedOn, &u.UpdatedOn,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Type, &u.Role,
		&u.ClientPlanID, &u.ProfilePhoto, &u.IsDeleted, &u.CreatedOn, &u.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
