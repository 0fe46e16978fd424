package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Composite proceso de fabricación: consume un recurso y (al finalizar) declara
// el producto obtenido. EndAt == nil mientras el proceso está en curso; se fija
// exactamente una vez al finalizar.
type Composite struct {
	ID             string
	EmployeeID     string
	EquipmentID    string
	ResourceID     string
	ResourceAmount decimal.Decimal // reservado al iniciar, descontado de ResourceLocation
	ProductID      *string         // nil hasta finalizar
	ProductAmount  *int64          // nil hasta finalizar
	StartAt        time.Time
	EndAt          *time.Time
}

// Ended indica si el proceso ya finalizó.
func (c *Composite) Ended() bool { return c.EndAt != nil }
