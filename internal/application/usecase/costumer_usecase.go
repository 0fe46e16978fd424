package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// CostumerUseCase registro y consulta de clientes.
type CostumerUseCase struct {
	costumerRepo repository.CostumerRepository
}

// NewCostumerUseCase construye el caso de uso.
func NewCostumerUseCase(costumerRepo repository.CostumerRepository) *CostumerUseCase {
	return &CostumerUseCase{costumerRepo: costumerRepo}
}

// Create registra un cliente. Teléfono y email son únicos: si alguno ya existe
// retorna ErrDuplicate.
func (uc *CostumerUseCase) Create(ctx context.Context, userID string, in dto.CreateCostumerRequest) (*dto.CostumerResponse, error) {
	if in.Firstname == "" || in.Lastname == "" || in.Phone == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.costumerRepo.GetByPhoneOrEmail(in.Phone, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	costumer := &entity.Costumer{
		ID:        uuid.New().String(),
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: time.Now(),
		UserID:    userID,
	}
	if err := uc.costumerRepo.Create(costumer); err != nil {
		return nil, err
	}
	return toCostumerResponse(costumer), nil
}

// GetByID consulta un cliente.
func (uc *CostumerUseCase) GetByID(ctx context.Context, id string) (*dto.CostumerResponse, error) {
	costumer, err := uc.costumerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if costumer == nil {
		return nil, domain.ErrNotFound
	}
	return toCostumerResponse(costumer), nil
}

// List consulta los clientes paginados.
func (uc *CostumerUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CostumerResponse, error) {
	page.DefaultPage()
	costumers, err := uc.costumerRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CostumerResponse, 0, len(costumers))
	for _, c := range costumers {
		out = append(out, *toCostumerResponse(c))
	}
	return out, nil
}

func toCostumerResponse(c *entity.Costumer) *dto.CostumerResponse {
	return &dto.CostumerResponse{
		ID:        c.ID,
		Firstname: c.Firstname,
		Lastname:  c.Lastname,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
