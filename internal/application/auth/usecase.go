package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/extid"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
	"github.com/grocerybag/grocerybag-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OTPConfig configuración del flujo OTP.
type OTPConfig struct {
	ExpiryMinutes int
	DevReturnCode bool
}

// UserTxRunner agrupa insert del usuario + reserva del uid en una transacción,
// para que nunca se observe una fila sin uid.
type UserTxRunner interface {
	RunUser(ctx context.Context, fn func(userRepo repository.UserRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y flujo OTP.
type AuthUseCase struct {
	txRunner UserTxRunner
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	jwtCfg   JWTConfig
	otpCfg   OTPConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(txRunner UserTxRunner, userRepo repository.UserRepository, otpRepo repository.OTPRepository, jwtCfg JWTConfig, otpCfg OTPConfig) *AuthUseCase {
	if otpCfg.ExpiryMinutes <= 0 {
		otpCfg.ExpiryMinutes = 10
	}
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, otpRepo: otpRepo, jwtCfg: jwtCfg, otpCfg: otpCfg}
}

// Register crea un usuario: hashea el password con bcrypt, inserta la fila y
// reserva el uid con prefijo de rol (AD/US/CU) en la misma transacción.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Phone == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Role {
	case entity.RoleAdmin, entity.RoleUser, entity.RoleCustomer:
	default:
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrPhoneAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	err = uc.txRunner.RunUser(ctx, func(userRepo repository.UserRepository) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		user.UID = extid.ForUser(user.Role, user.ID)
		return userRepo.UpdateUID(user.ID, user.UID)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Message: "Usuario creado", UID: user.UID}, nil
}

// Login verifica teléfono/password y genera el JWT de sesión.
// Teléfono desconocido y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Phone == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UID, user.Phone, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login correcto",
		Token:   token,
		UID:     user.UID,
		Role:    user.Role,
	}, nil
}

// RequestOTP emite un código de 6 dígitos con vigencia acotada. La fila en la
// tabla otps es la fuente de verdad; users.otp solo es un espejo de conveniencia.
// No hay canal de envío configurado: con DevReturnCode la respuesta incluye el código.
func (uc *AuthUseCase) RequestOTP(ctx context.Context, in dto.RequestOTPRequest) (*dto.RequestOTPResponse, error) {
	if in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	otp := &entity.OTP{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: now.Add(time.Duration(uc.otpCfg.ExpiryMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.otpRepo.Create(otp); err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateOTPMirror(user.ID, code); err != nil {
		return nil, err
	}

	resp := &dto.RequestOTPResponse{
		Message:   "Código emitido",
		ExpiresAt: otp.ExpiresAt.Format(time.RFC3339),
	}
	if uc.otpCfg.DevReturnCode {
		resp.OTP = code
	}
	return resp, nil
}

// VerifyOTP consume un código: debe coincidir, no estar usado y no estar
// expirado. Un código ya consumido vuelve a fallar con el mismo error.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, in dto.VerifyOTPRequest) (*dto.MessageResponse, error) {
	if in.Phone == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	otp, err := uc.otpRepo.GetByUserAndCode(user.ID, in.Code)
	if err != nil {
		return nil, err
	}
	if otp == nil || !otp.Valid(time.Now()) {
		return nil, domain.ErrOtpInvalidOrExpired
	}
	if err := uc.otpRepo.MarkUsed(otp.ID); err != nil {
		return nil, err
	}
	// Limpiar el espejo; la fila ya quedó marcada como usada.
	_ = uc.userRepo.UpdateOTPMirror(user.ID, "")

	return &dto.MessageResponse{Message: "Código verificado"}, nil
}

// generateCode produce un código decimal de 6 dígitos con crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
