package services

import (
	"database/sql"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/models"
)

// ClienteService provides CRUD over pizzeria customers.
type ClienteService struct {
	db *sql.DB
}

// NewClienteService creates a new ClienteService.
func NewClienteService(db *sql.DB) *ClienteService {
	return &ClienteService{db: db}
}

// scanCliente is a helper to scan a customer from a row or rows object.
func scanCliente(scanner interface{ Scan(...interface{}) error }) (models.Cliente, error) {
	var c models.Cliente
	var telefono, direccion sql.NullString
	if err := scanner.Scan(&c.ID, &c.Nombre, &c.Correo, &telefono, &direccion); err != nil {
		return c, err
	}
	c.Telefono = telefono.String
	c.Direccion = direccion.String
	return c, nil
}

// GetAll retrieves all customers.
func (s *ClienteService) GetAll() ([]models.Cliente, error) {
	rows, err := s.db.Query("SELECT id, nombre, correo, telefono, direccion FROM clientes")
	if err != nil {
		return nil, apperror.NewDatabase("Error interno del servidor al obtener clientes.", err)
	}
	defer rows.Close()

	clientes := []models.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, apperror.NewDatabase("Error interno del servidor al obtener clientes.", err)
		}
		clientes = append(clientes, c)
	}
	return clientes, rows.Err()
}

// GetByID retrieves a single customer.
func (s *ClienteService) GetByID(id int64) (models.Cliente, error) {
	row := s.db.QueryRow("SELECT id, nombre, correo, telefono, direccion FROM clientes WHERE id = ?", id)
	c, err := scanCliente(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Cliente{}, apperror.NewNotFound("Cliente no encontrado.")
		}
		return models.Cliente{}, apperror.NewDatabase("Error interno del servidor al obtener cliente.", err)
	}
	return c, nil
}

// Create inserts a new customer and returns it with its assigned id.
func (s *ClienteService) Create(c models.Cliente) (models.Cliente, error) {
	res, err := s.db.Exec(
		"INSERT INTO clientes(nombre, correo, telefono, direccion) VALUES(?, ?, ?, ?)",
		c.Nombre, c.Correo, c.Telefono, c.Direccion,
	)
	if err != nil {
		return models.Cliente{}, apperror.NewDatabase("Error interno del servidor al crear cliente.", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return models.Cliente{}, apperror.NewDatabase("Error interno del servidor al crear cliente.", err)
	}
	return c, nil
}

// Update overlays the set fields of patch onto the stored customer, writes,
// and returns the re-read record.
func (s *ClienteService) Update(id int64, patch models.Cliente) (models.Cliente, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Cliente{}, err
	}

	if patch.Nombre != "" {
		existing.Nombre = patch.Nombre
	}
	if patch.Correo != "" {
		existing.Correo = patch.Correo
	}
	if patch.Telefono != "" {
		existing.Telefono = patch.Telefono
	}
	if patch.Direccion != "" {
		existing.Direccion = patch.Direccion
	}

	_, err = s.db.Exec(
		"UPDATE clientes SET nombre = ?, correo = ?, telefono = ?, direccion = ? WHERE id = ?",
		existing.Nombre, existing.Correo, existing.Telefono, existing.Direccion, id,
	)
	if err != nil {
		return models.Cliente{}, apperror.NewDatabase("Error interno del servidor al actualizar cliente.", err)
	}
	return s.GetByID(id)
}

// Delete removes a customer; deleting an unknown id is a not-found.
func (s *ClienteService) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM clientes WHERE id = ?", id)
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar cliente.", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar cliente.", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("Cliente no encontrado.")
	}
	return nil
}
