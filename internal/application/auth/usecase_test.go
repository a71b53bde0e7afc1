package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/domain"
	"github.com/grocerybag/grocerybag-api/internal/domain/entity"
	"github.com/grocerybag/grocerybag-api/internal/domain/repository"
	"github.com/grocerybag/grocerybag-api/pkg/jwt"
)

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Phone == user.Phone {
			return domain.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateUID(id int64, uid string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.UID = uid
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByPhone(phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateOTPMirror(id int64, code string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.OTP = code
	return nil
}

type fakeOTPRepo struct {
	otps   map[int64]*entity.OTP
	nextID int64
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{otps: map[int64]*entity.OTP{}, nextID: 1}
}

func (r *fakeOTPRepo) Create(otp *entity.OTP) error {
	otp.ID = r.nextID
	r.nextID++
	cp := *otp
	r.otps[otp.ID] = &cp
	return nil
}

func (r *fakeOTPRepo) GetByUserAndCode(userID int64, code string) (*entity.OTP, error) {
	var latest *entity.OTP
	for _, o := range r.otps {
		if o.UserID == userID && o.Code == code {
			if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
				latest = o
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeOTPRepo) MarkUsed(id int64) error {
	o, ok := r.otps[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Used = true
	return nil
}

type userTxRunnerFunc func(ctx context.Context, fn func(repository.UserRepository) error) error

func (f userTxRunnerFunc) RunUser(ctx context.Context, fn func(userRepo repository.UserRepository) error) error {
	return f(ctx, fn)
}

func newTestUseCase() (*AuthUseCase, *fakeUserRepo, *fakeOTPRepo) {
	userRepo := newFakeUserRepo()
	otpRepo := newFakeOTPRepo()
	uc := NewAuthUseCase(
		userTxRunnerFunc(func(ctx context.Context, fn func(repository.UserRepository) error) error {
			return fn(userRepo)
		}),
		userRepo,
		otpRepo,
		JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "grocerybag-api"},
		OTPConfig{ExpiryMinutes: 10, DevReturnCode: true},
	)
	return uc, userRepo, otpRepo
}

func TestRegister_AsignaUIDConPrefijoDeRol(t *testing.T) {
	uc, userRepo, _ := newTestUseCase()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Phone:    "3001234567",
		Password: "secreta1",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "AD-0001", resp.UID)

	u, err := userRepo.GetByPhone("3001234567")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "AD-0001", u.UID, "el uid debe quedar persistido")
	assert.NotEqual(t, "secreta1", u.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreta1")))
}

func TestRegister_TelefonoDuplicado(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "otra-clave", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenValido(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Phone: "3001234567", Password: "secreta1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "US-0001", resp.UID)
	assert.Equal(t, entity.RoleUser, resp.Role)

	uid, phone, role, err := jwt.Parse("secreto-de-prueba", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "US-0001", uid)
	assert.Equal(t, "3001234567", phone)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Phone: "3001234567", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Teléfono desconocido produce el mismo error que password incorrecto.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Phone: "3009999999", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRequestOTP_EmiteCodigoYEspejo(t *testing.T) {
	uc, userRepo, otpRepo := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)

	resp, err := uc.RequestOTP(context.Background(), dto.RequestOTPRequest{Phone: "3001234567"})
	require.NoError(t, err)
	assert.Len(t, resp.OTP, 6, "con DevReturnCode el código viaja en la respuesta")

	u, _ := userRepo.GetByPhone("3001234567")
	assert.Equal(t, resp.OTP, u.OTP, "el espejo users.otp debe reflejar el último código")

	otp, err := otpRepo.GetByUserAndCode(u.ID, resp.OTP)
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.False(t, otp.Used)
	assert.True(t, otp.ExpiresAt.After(time.Now()))
}

func TestRequestOTP_UsuarioDesconocido(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.RequestOTP(context.Background(), dto.RequestOTPRequest{Phone: "3009999999"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVerifyOTP_ConsumeElCodigo(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)
	issued, err := uc.RequestOTP(context.Background(), dto.RequestOTPRequest{Phone: "3001234567"})
	require.NoError(t, err)

	_, err = uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Phone: "3001234567", Code: issued.OTP})
	require.NoError(t, err)

	// El mismo código no puede consumirse dos veces.
	_, err = uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Phone: "3001234567", Code: issued.OTP})
	assert.ErrorIs(t, err, domain.ErrOtpInvalidOrExpired)
}

func TestVerifyOTP_CodigoIncorrecto(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)
	_, err = uc.RequestOTP(context.Background(), dto.RequestOTPRequest{Phone: "3001234567"})
	require.NoError(t, err)

	_, err = uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Phone: "3001234567", Code: "000000"})
	assert.ErrorIs(t, err, domain.ErrOtpInvalidOrExpired)
}

func TestVerifyOTP_CodigoExpirado(t *testing.T) {
	uc, _, otpRepo := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Phone: "3001234567", Password: "secreta1", Role: entity.RoleUser})
	require.NoError(t, err)
	issued, err := uc.RequestOTP(context.Background(), dto.RequestOTPRequest{Phone: "3001234567"})
	require.NoError(t, err)

	// Forzar expiración.
	for _, o := range otpRepo.otps {
		o.ExpiresAt = time.Now().Add(-time.Minute)
	}

	_, err = uc.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Phone: "3001234567", Code: issued.OTP})
	assert.ErrorIs(t, err, domain.ErrOtpInvalidOrExpired)
}
