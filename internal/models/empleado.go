package models

// Empleado represents a pizzeria employee. Sueldo is a pointer so presence
// in the request body, not zero-ness, decides validation and merging.
type Empleado struct {
	ID     int64    `json:"id"`
	Nombre string   `json:"nombre" validate:"required"`
	Puesto string   `json:"puesto"`
	Sueldo *float64 `json:"sueldo" validate:"required"`
}
