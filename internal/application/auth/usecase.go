package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
	"github.com/josbwnn/PAPELERIA-EDUVAL/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro con clave compartida y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	registerKey string
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, registerKey string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, registerKey: registerKey, jwtCfg: jwtCfg}
}

// Register crea un usuario del personal. La clave de registro debe coincidir
// con la configurada; si no, no se crea nada aunque el resto sea válido.
// Username y password son obligatorios; el rol por defecto es empleado y debe
// pertenecer al conjunto cerrado. La coincidencia de username es exacta
// (sensible a mayúsculas). El password se guarda solo como hash bcrypt.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.RegisterKey != uc.registerKey || uc.registerKey == "" {
		return nil, domain.ErrInvalidRegisterKey
	}
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmpleado
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Devuelve siempre domain.ErrUnauthorized ante usuario inexistente o password
// incorrecto: la respuesta no revela cuál de los dos campos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse convierte la entidad a DTO sin exponer el hash del password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
