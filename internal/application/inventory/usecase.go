package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/application/dto"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/repository"
)

// MovementUseCase registra entradas y salidas de stock de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// El invariante del ledger: entre ediciones directas de stock por un
// administrador, stock == sum(ENTRADA) - sum(SALIDA) para cada producto, y
// nunca negativo. La verificación stock >= cantidad de una salida ocurre con
// la fila bloqueada, por lo que dos salidas concurrentes no pueden leer el
// mismo valor previo.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RegisterEntry suma quantity al stock del producto y anota la ENTRADA en el
// ledger; ambos efectos en la misma transacción.
func (uc *MovementUseCase) RegisterEntry(ctx context.Context, productID string, quantity int, userID string) error {
	return uc.register(ctx, entity.MovementEntrada, productID, quantity, userID)
}

// RegisterExit resta quantity del stock del producto y anota la SALIDA.
// Falla con domain.ErrInsufficientStock si quantity supera las existencias;
// en ese caso ni el stock ni el ledger cambian.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, productID string, quantity int, userID string) error {
	return uc.register(ctx, entity.MovementSalida, productID, quantity, userID)
}

func (uc *MovementUseCase) register(ctx context.Context, movType, productID string, quantity int, userID string) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto para que la verificación y el nuevo
		// stock se observen como una sola operación
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock
		switch movType {
		case entity.MovementEntrada:
			newStock += quantity
		case entity.MovementSalida:
			if quantity > product.Stock {
				return domain.ErrInsufficientStock
			}
			newStock -= quantity
		default:
			return domain.ErrInvalidInput
		}

		if err := productRepo.UpdateStock(productID, newStock); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      movType,
			Quantity:  quantity,
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		return movementRepo.Create(mov)
	})
}

// History devuelve los movimientos de un producto, el más reciente primero.
// Si productID es vacío devuelve el ledger completo paginado.
func (uc *MovementUseCase) History(productID string, limit, offset int) ([]dto.MovementResponse, error) {
	var (
		movements []*entity.StockMovement
		err       error
	)
	if productID != "" {
		movements, err = uc.movementRepo.ListByProduct(productID)
	} else {
		if limit <= 0 || limit > 100 {
			limit = 50
		}
		if offset < 0 {
			offset = 0
		}
		movements, err = uc.movementRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			UserID:    m.UserID,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
