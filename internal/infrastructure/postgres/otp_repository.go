package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo implementación de OTPRepository (usable con pool o tx).
type OTPRepo struct {
	q Querier
}

// NewOTPRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

// Create persiste un código OTP.
func (r *OTPRepo) Create(otp *entity.OTP) error {
	query := `
		INSERT INTO otps (user_id, code, used, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		otp.UserID, otp.Code, otp.Used, otp.ExpiresAt, otp.CreatedAt,
	).Scan(&otp.ID)
	if err != nil {
		return fmt.Errorf("insert otp: %w", err)
	}
	return nil
}

// GetByUserAndCode devuelve la fila más reciente para ese usuario y código (usada o no).
func (r *OTPRepo) GetByUserAndCode(userID int64, code string) (*entity.OTP, error) {
	query := `
		SELECT id, user_id, code, used, expires_at, created_at
		FROM otps WHERE user_id = $1 AND code = $2
		ORDER BY created_at DESC LIMIT 1`
	var o entity.OTP
	err := r.q.QueryRow(context.Background(), query, userID, code).Scan(
		&o.ID, &o.UserID, &o.Code, &o.Used, &o.ExpiresAt, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get otp: %w", err)
	}
	return &o, nil
}

// MarkUsed marca el código como consumido.
func (r *OTPRepo) MarkUsed(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE otps SET used = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark otp used: %w", err)
	}
	return nil
}
