package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/usecase"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
)

// fakeUserRepo doble en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateRole(id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func staffUser(id, username, role string) *entity.User {
	return &entity.User{ID: id, Username: username, Role: role}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeRole_Correcto(t *testing.T) {
	repo := newFakeUserRepo(
		staffUser("admin-1", "ana", entity.RoleAdministrador),
		staffUser("user-2", "pedro", entity.RoleEmpleado),
	)
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.ChangeRole("admin-1", "user-2", entity.RoleCajero))
	assert.Equal(t, entity.RoleCajero, repo.users["user-2"].Role)
}

func TestChangeRole_NuncaASiMismo(t *testing.T) {
	repo := newFakeUserRepo(staffUser("admin-1", "ana", entity.RoleAdministrador))
	uc := usecase.NewUserUseCase(repo)

	err := uc.ChangeRole("admin-1", "admin-1", entity.RoleCajero)
	assert.ErrorIs(t, err, domain.ErrSelfAction,
		"un administrador no debe poder cambiarse el rol a sí mismo")
	assert.Equal(t, entity.RoleAdministrador, repo.users["admin-1"].Role)
}

func TestChangeRole_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo(
		staffUser("admin-1", "ana", entity.RoleAdministrador),
		staffUser("user-2", "pedro", entity.RoleEmpleado),
	)
	uc := usecase.NewUserUseCase(repo)

	err := uc.ChangeRole("admin-1", "user-2", "gerente")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Equal(t, entity.RoleEmpleado, repo.users["user-2"].Role)
}

func TestChangeRole_UsuarioNoExiste(t *testing.T) {
	repo := newFakeUserRepo(staffUser("admin-1", "ana", entity.RoleAdministrador))
	uc := usecase.NewUserUseCase(repo)

	err := uc.ChangeRole("admin-1", "no-existe", entity.RoleCajero)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDelete_Correcto(t *testing.T) {
	repo := newFakeUserRepo(
		staffUser("admin-1", "ana", entity.RoleAdministrador),
		staffUser("user-2", "pedro", entity.RoleEmpleado),
	)
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.Delete("admin-1", "user-2"))
	assert.NotContains(t, repo.users, "user-2")
}

func TestUserDelete_NuncaASiMismo(t *testing.T) {
	repo := newFakeUserRepo(staffUser("admin-1", "ana", entity.RoleAdministrador))
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete("admin-1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrSelfAction,
		"un administrador no debe poder eliminarse a sí mismo")
	assert.Contains(t, repo.users, "admin-1")
}

func TestUserDelete_NoExiste(t *testing.T) {
	repo := newFakeUserRepo(staffUser("admin-1", "ana", entity.RoleAdministrador))
	uc := usecase.NewUserUseCase(repo)

	assert.ErrorIs(t, uc.Delete("admin-1", "no-existe"), domain.ErrNotFound)
}

func TestValidRole_ConjuntoCerrado(t *testing.T) {
	for _, role := range []string{entity.RoleAdministrador, entity.RoleEmpleado, entity.RoleCajero} {
		assert.True(t, entity.ValidRole(role), role)
	}
	for _, role := range []string{"", "gerente", "Administrador", "ADMIN"} {
		assert.False(t, entity.ValidRole(role), role)
	}
}
