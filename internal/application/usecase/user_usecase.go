package usecase

import (
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/auth"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo administrador).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List lista usuarios ordenados (jerarquia, nombre o id).
func (uc *UserUseCase) List(order string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(order)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// ChangeRole asigna newRole al usuario targetID. El rol debe pertenecer al
// conjunto cerrado y el actor nunca puede cambiarse el rol a sí mismo: un
// administrador no debe poder dejarse sin privilegios por accidente.
func (uc *UserUseCase) ChangeRole(actorID, targetID, newRole string) error {
	if !entity.ValidRole(newRole) {
		return domain.ErrInvalidRole
	}
	if actorID == targetID {
		return domain.ErrSelfAction
	}
	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.UpdateRole(targetID, newRole)
}

// Delete elimina el usuario targetID. El actor nunca puede eliminarse a sí
// mismo. El histórico de movimientos del usuario se conserva con actor nulo
// (FK ON DELETE SET NULL).
func (uc *UserUseCase) Delete(actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfAction
	}
	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(targetID)
}
