package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}

// UnitRepository puerto de persistencia para unidades de medida.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
}

// ResourceRepository puerto de persistencia para materias primas.
type ResourceRepository interface {
	Create(resource *entity.Resource) error
	GetByID(id string) (*entity.Resource, error)
	List() ([]*entity.Resource, error)
}

// EquipmentRepository puerto de persistencia para equipos de fabricación.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	List() ([]*entity.Equipment, error)
}

// RecipeRepository puerto para la lista de materiales (producto N–M recurso).
type RecipeRepository interface {
	// CreateBatch inserta todas las líneas de la receta; el caller garantiza la transacción.
	CreateBatch(recipes []*entity.Recipe) error
	ListByProduct(productID string) ([]*entity.Recipe, error)
}
