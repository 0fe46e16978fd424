package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// CreateBatch inserta todas las líneas de la receta en una sola sentencia multi-values.
func (r *RecipeRepo) CreateBatch(recipes []*entity.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	query := `INSERT INTO recipes (id, product_id, resource_id, amount) VALUES `
	args := make([]any, 0, len(recipes)*4)
	for i, rec := range recipes {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, rec.ID, rec.ProductID, rec.ResourceID, rec.Amount)
	}
	_, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert recipes: %w", err)
	}
	return nil
}

// ListByProduct lista la receta (lista de materiales) de un producto.
func (r *RecipeRepo) ListByProduct(productID string) ([]*entity.Recipe, error) {
	query := `SELECT id, product_id, resource_id, amount FROM recipes WHERE product_id = $1 ORDER BY resource_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.ResourceID, &rec.Amount); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
