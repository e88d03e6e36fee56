package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/billing-portal/internal/application/dto"
	"github.com/jhoicas/billing-portal/internal/domain"
	"github.com/jhoicas/billing-portal/internal/domain/entity"
	"github.com/jhoicas/billing-portal/internal/domain/repository"
	"github.com/jhoicas/billing-portal/pkg/jwt"
	"github.com/jhoicas/billing-portal/pkg/logger"
	"github.com/jhoicas/billing-portal/pkg/password"
)

// SessionConfig configuración para generación de tokens de sesión.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, alta de usuarios y cambio de contraseña.
type AuthUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	cfg       SessionConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, companies repository.CompanyRepository, cfg SessionConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, companies: companies, cfg: cfg, log: log.Component("auth")}
}

// Login verifica usuario/contraseña, genera el token de sesión y retorna token + usuario.
// Un hash heredado (scrypt) se reemplaza por bcrypt tras un login exitoso.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.NewValidationError("username", "usuario y contraseña requeridos")
	}
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.PersistenceError("buscar usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := password.Verify(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if password.IsLegacy(user.PasswordHash) {
		uc.upgradeHash(ctx, user, in.Password)
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.CompanyID, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("login")
	return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (uc *AuthUseCase) upgradeHash(ctx context.Context, user *entity.User, plain string) {
	hash, err := password.Hash(plain)
	if err == nil {
		err = uc.users.UpdatePassword(ctx, user.ID, hash, user.ForcePasswordChange)
	}
	if err != nil {
		uc.log.Warn().Err(err).Int64("user_id", user.ID).Msg("no se pudo migrar hash heredado")
		return
	}
	user.PasswordHash = hash
}

// Register crea un usuario. Rol por defecto company; un usuario company exige empresa existente.
// Devuelve domain.ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.NewValidationError("username", "usuario requerido")
	}
	if len(in.Password) < password.MinLength {
		return nil, domain.NewValidationError("password", "la contraseña debe tener al menos 6 caracteres")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCompany
	}
	if !entity.ValidRole(role) {
		return nil, domain.NewValidationError("role", "rol desconocido")
	}
	if role == entity.RoleCompany && (in.CompanyID == nil || *in.CompanyID <= 0) {
		return nil, domain.NewValidationError("companyId", "requerido para usuarios de empresa")
	}
	if in.CompanyID != nil {
		company, err := uc.companies.GetByID(ctx, *in.CompanyID)
		if err != nil {
			return nil, domain.PersistenceError("buscar empresa", err)
		}
		if company == nil {
			return nil, domain.NewValidationError("companyId", "la empresa no existe")
		}
	}

	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.PersistenceError("buscar usuario", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:            username,
		PasswordHash:        hash,
		Role:                role,
		CompanyID:           in.CompanyID,
		ForcePasswordChange: true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		return nil, domain.PersistenceError("crear usuario", err)
	}
	uc.log.Info().Int64("user_id", user.ID).Str("role", role).Msg("usuario creado")
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ChangePassword reemplaza la contraseña del usuario y quita el cambio obligatorio.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID int64, in dto.ChangePasswordRequest) error {
	if len(in.Password) < password.MinLength {
		return domain.NewValidationError("password", "la contraseña debe tener al menos 6 caracteres")
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, userID, hash, false); err != nil {
		return domain.PersistenceError("actualizar contraseña", err)
	}
	return nil
}
