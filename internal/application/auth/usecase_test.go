package auth_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/scrypt"

	"github.com/jhoicas/billing-portal/internal/application/auth"
	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository/repomock"
	"github.com/jhoicas/billing-portal/pkg/jwt"
	"github.com/jhoicas/billing-portal/pkg/logger"
	"github.com/jhoicas/billing-portal/pkg/password"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() (*auth.AuthUseCase, *repomock.UserRepo, *repomock.CompanyRepo) {
	users := &repomock.UserRepo{}
	companies := &repomock.CompanyRepo{}
	uc := auth.NewAuthUseCase(users, companies, auth.SessionConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "billing-portal-test"}, logger.Nop())
	return uc, users, companies
}

func companyID(id int64) *int64 { return &id }

func TestLogin_CredencialesValidasDevuelveToken(t *testing.T) {
	uc, users, _ := newAuthUC()
	hash, err := password.Hash("tech123")
	require.NoError(t, err)
	users.On("GetByUsername", mock.Anything, "tech").Return(&entity.User{
		ID: 2, Username: "tech", PasswordHash: hash, Role: entity.RoleCompany, CompanyID: companyID(7),
	}, nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: " tech ", Password: "tech123"})
	require.NoError(t, err)
	assert.Equal(t, "tech", out.User.Username)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, int64(7), *claims.CompanyID)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_ContraseñaIncorrectaEsUnauthorized(t *testing.T) {
	uc, users, _ := newAuthUC()
	hash, _ := password.Hash("admin123")
	users.On("GetByUsername", mock.Anything, "admin").Return(&entity.User{ID: 1, PasswordHash: hash, Role: entity.RoleAdmin}, nil)
	users.On("GetByUsername", mock.Anything, "nadie").Return(nil, nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_HashHeredadoSeMigraABcrypt(t *testing.T) {
	uc, users, _ := newAuthUC()
	salt := "00112233445566778899aabbccddeeff"
	key, err := scrypt.Key([]byte("admin123"), []byte(salt), 16384, 8, 1, 64)
	require.NoError(t, err)
	legacy := hex.EncodeToString(key) + "." + salt

	users.On("GetByUsername", mock.Anything, "admin").Return(&entity.User{ID: 1, Username: "admin", PasswordHash: legacy, Role: entity.RoleAdmin}, nil)
	users.On("UpdatePassword", mock.Anything, int64(1), mock.MatchedBy(func(h string) bool {
		return !password.IsLegacy(h) && password.Verify(h, "admin123") == nil
	}), false).Return(nil).Once()

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestRegister_UsuarioEmpresa(t *testing.T) {
	uc, users, companies := newAuthUC()
	companies.On("GetByID", mock.Anything, int64(7)).Return(&entity.Company{ID: 7}, nil)
	users.On("GetByUsername", mock.Anything, "nuevo").Return(nil, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleCompany && u.ForcePasswordChange && password.Verify(u.PasswordHash, "secreto") == nil
	})).Return(nil).Run(func(args mock.Arguments) { args.Get(1).(*entity.User).ID = 10 })

	out, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "nuevo", Password: "secreto", CompanyID: companyID(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Equal(t, entity.RoleCompany, out.Role)
	assert.True(t, out.ForcePasswordChange)
}

func TestRegister_Validaciones(t *testing.T) {
	tests := []struct {
		name  string
		in    dto.RegisterRequest
		field string
	}{
		{"sin usuario", dto.RegisterRequest{Password: "secreto"}, "username"},
		{"contraseña corta", dto.RegisterRequest{Username: "a", Password: "12345"}, "password"},
		{"rol desconocido", dto.RegisterRequest{Username: "a", Password: "secreto", Role: "root"}, "role"},
		{"empresa sin companyId", dto.RegisterRequest{Username: "a", Password: "secreto", Role: entity.RoleCompany}, "companyId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, users, _ := newAuthUC()
			_, err := uc.Register(context.Background(), tt.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, users, _ := newAuthUC()
	users.On("GetByUsername", mock.Anything, "admin").Return(&entity.User{ID: 1}, nil)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "admin", Password: "secreto", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestChangePassword(t *testing.T) {
	uc, users, _ := newAuthUC()
	users.On("UpdatePassword", mock.Anything, int64(2), mock.AnythingOfType("string"), false).Return(nil).Once()

	err := uc.ChangePassword(context.Background(), 2, dto.ChangePasswordRequest{Password: "corto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.ChangePassword(context.Background(), 2, dto.ChangePasswordRequest{Password: "nueva-clave"}))
	users.AssertExpectations(t)
}

func TestSessionService_Resolve(t *testing.T) {
	users := &repomock.UserRepo{}
	svc := auth.NewSessionService(users, testSecret)
	users.On("GetByID", mock.Anything, int64(1)).Return(&entity.User{ID: 1, Role: entity.RoleAdmin}, nil)
	users.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)
	users.On("GetByID", mock.Anything, int64(500)).Return(nil, errors.New("db caída"))

	tok, err := jwt.Generate(testSecret, 1, nil, entity.RoleAdmin, "test", 60)
	require.NoError(t, err)
	u, err := svc.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	_, err = svc.Resolve(context.Background(), "token.invalido.aqui")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	gone, _ := jwt.Generate(testSecret, 99, nil, entity.RoleAdmin, "test", 60)
	_, err = svc.Resolve(context.Background(), gone)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	broken, _ := jwt.Generate(testSecret, 500, nil, entity.RoleAdmin, "test", 60)
	_, err = svc.Resolve(context.Background(), broken)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
