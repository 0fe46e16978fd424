package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// CatalogUseCase altas y consultas de los datos de referencia: categorías,
// unidades, materias primas, equipos y recetas.
type CatalogUseCase struct {
	categoryRepo  repository.CategoryRepository
	unitRepo      repository.UnitRepository
	resourceRepo  repository.ResourceRepository
	equipmentRepo repository.EquipmentRepository
	recipeRepo    repository.RecipeRepository
	productRepo   repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	resourceRepo repository.ResourceRepository,
	equipmentRepo repository.EquipmentRepository,
	recipeRepo repository.RecipeRepository,
	productRepo repository.ProductRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:  categoryRepo,
		unitRepo:      unitRepo,
		resourceRepo:  resourceRepo,
		equipmentRepo: equipmentRepo,
		recipeRepo:    recipeRepo,
		productRepo:   productRepo,
	}
}

// CreateCategory registra una nueva categoría.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

// ListCategories consulta todas las categorías.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

// CreateUnit registra una unidad de medida; el código es único.
func (uc *CatalogUseCase) CreateUnit(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := &entity.Unit{
		ID:   uuid.New().String(),
		Code: in.Code,
		Name: in.Name,
	}
	if err := uc.unitRepo.Create(unit); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: unit.ID, Code: unit.Code, Name: unit.Name}, nil
}

// ListUnits consulta todas las unidades de medida.
func (uc *CatalogUseCase) ListUnits(ctx context.Context) ([]dto.UnitResponse, error) {
	units, err := uc.unitRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, dto.UnitResponse{ID: u.ID, Code: u.Code, Name: u.Name})
	}
	return out, nil
}

// CreateResource registra una materia prima validando su unidad de medida.
func (uc *CatalogUseCase) CreateResource(ctx context.Context, in dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrReferenceNotFound
	}
	resource := &entity.Resource{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		UnitID:      in.UnitID,
	}
	if err := uc.resourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return toResourceResponse(resource), nil
}

// ListResources consulta todas las materias primas.
func (uc *CatalogUseCase) ListResources(ctx context.Context) ([]dto.ResourceResponse, error) {
	resources, err := uc.resourceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, *toResourceResponse(r))
	}
	return out, nil
}

// CreateEquipment registra un equipo de fabricación.
func (uc *CatalogUseCase) CreateEquipment(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	equipment := &entity.Equipment{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.equipmentRepo.Create(equipment); err != nil {
		return nil, err
	}
	return &dto.EquipmentResponse{ID: equipment.ID, Name: equipment.Name, Description: equipment.Description}, nil
}

// ListEquipment consulta todos los equipos.
func (uc *CatalogUseCase) ListEquipment(ctx context.Context) ([]dto.EquipmentResponse, error) {
	items, err := uc.equipmentRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, dto.EquipmentResponse{ID: e.ID, Name: e.Name, Description: e.Description})
	}
	return out, nil
}

// CreateRecipe registra la lista de materiales completa de un producto.
// Valida producto, cada recurso y que toda cantidad sea positiva antes de insertar.
func (uc *CatalogUseCase) CreateRecipe(ctx context.Context, in dto.CreateRecipeRequest) ([]dto.RecipeLineResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrReferenceNotFound
	}

	recipes := make([]*entity.Recipe, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		resource, err := uc.resourceRepo.GetByID(line.ResourceID)
		if err != nil {
			return nil, err
		}
		if resource == nil {
			return nil, domain.ErrReferenceNotFound
		}
		recipes = append(recipes, &entity.Recipe{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			ResourceID: line.ResourceID,
			Amount:     line.Amount,
		})
	}

	if err := uc.recipeRepo.CreateBatch(recipes); err != nil {
		return nil, err
	}

	out := make([]dto.RecipeLineResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, dto.RecipeLineResponse{
			ID:         r.ID,
			ProductID:  r.ProductID,
			ResourceID: r.ResourceID,
			Amount:     r.Amount,
		})
	}
	return out, nil
}

// ListRecipe consulta la lista de materiales de un producto.
func (uc *CatalogUseCase) ListRecipe(ctx context.Context, productID string) ([]dto.RecipeLineResponse, error) {
	recipes, err := uc.recipeRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeLineResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, dto.RecipeLineResponse{
			ID:         r.ID,
			ProductID:  r.ProductID,
			ResourceID: r.ResourceID,
			Amount:     r.Amount,
		})
	}
	return out, nil
}

func toResourceResponse(r *entity.Resource) *dto.ResourceResponse {
	return &dto.ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		UnitID:      r.UnitID,
	}
}
