package models

// Cliente represents a pizzeria customer.
type Cliente struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre" validate:"required"`
	Correo    string `json:"correo" validate:"required"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
