package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/auth"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
)

const testRegisterKey = "clave-papeleria-2024"

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "papeleria-eduval-test",
}

// memUserRepo doble en memoria del puerto UserRepository.
type memUserRepo struct {
	users map[string]*entity.User // por username (coincidencia exacta)
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.users[u.Username] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) UpdateRole(id, role string) error {
	u, _ := r.GetByID(id)
	if u == nil {
		return domain.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	for username, u := range r.users {
		if u.ID == id {
			delete(r.users, username)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memUserRepo) List(string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, testRegisterKey, testJWTCfg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ConClaveCorrecta(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	resp, err := uc.Register(dto.RegisterRequest{
		Username:    "maria",
		Password:    "secreta123",
		Role:        entity.RoleCajero,
		RegisterKey: testRegisterKey,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", resp.Username)
	assert.Equal(t, entity.RoleCajero, resp.Role)
	assert.NotEmpty(t, resp.ID)

	stored := repo.users["maria"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash,
		"el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash debe corresponder al password original")
}

func TestRegister_ClaveIncorrecta_NoCreaNada(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Username:    "maria",
		Password:    "secreta123",
		RegisterKey: "clave-equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRegisterKey)
	assert.Empty(t, repo.users,
		"una clave incorrecta no debe crear el usuario aunque el resto sea válido")
}

func TestRegister_ClaveConfiguradaVacia_RechazaTodo(t *testing.T) {
	// Con la clave sin configurar no debe poder registrarse nadie, ni
	// siquiera enviando clave vacía.
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, "", testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRegisterKey)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Register(dto.RegisterRequest{
		Password: "secreta123", RegisterKey: testRegisterKey,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username es obligatorio")

	_, err = uc.Register(dto.RegisterRequest{
		Username: "maria", RegisterKey: testRegisterKey,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password es obligatorio")
}

func TestRegister_RolPorDefectoEmpleado(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	resp, err := uc.Register(dto.RegisterRequest{
		Username: "pedro", Password: "secreta123", RegisterKey: testRegisterKey,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmpleado, resp.Role)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Register(dto.RegisterRequest{
		Username: "pedro", Password: "secreta123",
		Role: "gerente", RegisterKey: testRegisterKey,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria", Password: "secreta123", RegisterKey: testRegisterKey,
	})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{
		Username: "maria", Password: "otra456", RegisterKey: testRegisterKey,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// La coincidencia es exacta: "Maria" es otro usuario.
	_, err = uc.Register(dto.RegisterRequest{
		Username: "Maria", Password: "otra456", RegisterKey: testRegisterKey,
	})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria", Password: "secreta123",
		Role: entity.RoleAdministrador, RegisterKey: testRegisterKey,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria", resp.User.Username)
	assert.Equal(t, entity.RoleAdministrador, resp.User.Role)
}

func TestLogin_NoRevelaQueCampoFallo(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria", Password: "secreta123", RegisterKey: testRegisterKey,
	})
	require.NoError(t, err)

	// Usuario inexistente y password incorrecto producen el mismo error.
	_, errUser := uc.Login(dto.LoginRequest{Username: "no-existe", Password: "secreta123"})
	_, errPass := uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})

	assert.ErrorIs(t, errUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errUser, errPass,
		"la respuesta no debe distinguir usuario inexistente de password incorrecto")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
