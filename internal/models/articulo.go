package models

// Articulo represents a stocked inventory item. Precio and Existencia are
// pointers so an explicit 0 in the request body is distinguishable from an
// absent field: zero is a legal price and a legal stock level.
type Articulo struct {
	ID          int64    `json:"id"`
	Descripcion string   `json:"descripcion" validate:"required"`
	Precio      *float64 `json:"precio" validate:"required"`
	Existencia  *int64   `json:"existencia" validate:"required"`
}
