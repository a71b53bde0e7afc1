package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el id numérico generado,
// para que el caller pueda reservar el uid dentro de la misma transacción.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (uid, phone, password_hash, role, otp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.UID, user.Phone, user.PasswordHash, user.Role, user.OTP, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UpdateUID fija el uid con prefijo de rol derivado del id numérico.
func (r *UserRepo) UpdateUID(id int64, uid string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE users SET uid = $2 WHERE id = $1`, id, uid)
	if err != nil {
		return fmt.Errorf("update user uid: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id numérico.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByPhone obtiene un usuario por teléfono (único).
func (r *UserRepo) GetByPhone(phone string) (*entity.User, error) {
	return r.getBy(`WHERE phone = $1`, phone)
}

func (r *UserRepo) getBy(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, uid, phone, password_hash, role, otp, created_at
		FROM users ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.UID, &u.Phone, &u.PasswordHash, &u.Role, &u.OTP, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdateOTPMirror actualiza el espejo users.otp (no autoritativo).
func (r *UserRepo) UpdateOTPMirror(id int64, code string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE users SET otp = $2 WHERE id = $1`, id, code)
	if err != nil {
		return fmt.Errorf("update user otp: %w", err)
	}
	return nil
}
