package models

// Proveedor represents an ingredient or goods supplier.
type Proveedor struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
