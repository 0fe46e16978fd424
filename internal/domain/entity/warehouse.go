package entity

// Warehouse bodega física donde se almacena producto terminado y materia prima.
type Warehouse struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}
