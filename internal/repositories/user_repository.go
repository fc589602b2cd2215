package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"waataxi/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateUser inserts the user row and, for passenger and driver roles, the
// linked profile row in the same transaction.
func (r *UserRepository) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	user := models.User{
		ID:       uuid.NewString(),
		Phone:    req.Phone,
		Role:     req.Role,
		IsActive: true,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (id, phone, role, is_active, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at`,
		user.ID, user.Phone, user.Role, user.IsActive,
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrDuplicatePhone
		}
		return models.User{}, err
	}

	switch req.Role {
	case models.RolePassenger:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO passengers (id, user_id, first_name, last_name, created_at) VALUES ($1, $2, $3, $4, NOW())`,
			uuid.NewString(), user.ID, req.FirstName, req.LastName)
	case models.RoleDriver:
		license := ""
		if req.LicenseNumber != nil {
			license = *req.LicenseNumber
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO drivers (id, user_id, first_name, last_name, license_number, is_available, created_at) VALUES ($1, $2, $3, $4, $5, TRUE, NOW())`,
			uuid.NewString(), user.ID, req.FirstName, req.LastName, license)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrDuplicateDriver
		}
		return models.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	query := `SELECT id, phone, role, is_active, created_at, updated_at FROM users WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Phone, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (models.User, error) {
	var user models.User
	query := `SELECT id, phone, role, is_active, created_at, updated_at FROM users WHERE phone = $1`
	err := r.DB.QueryRowContext(ctx, query, phone).Scan(&user.ID, &user.Phone, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) GetUsers(ctx context.Context, limit int) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, phone, role, is_active, created_at, updated_at FROM users ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Phone, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	var user models.User
	query := `UPDATE users
	          SET phone = COALESCE($1, phone),
	              is_active = COALESCE($2, is_active),
	              updated_at = NOW()
	          WHERE id = $3
	          RETURNING id, phone, role, is_active, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query, req.Phone, req.IsActive, id).Scan(&user.ID, &user.Phone, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if isUniqueViolation(err) {
		return models.User{}, models.ErrDuplicatePhone
	}
	return user, err
}

func (r *UserRepository) DeactivateUser(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
