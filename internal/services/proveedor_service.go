package services

import (
	"database/sql"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/models"
)

// ProveedorService provides CRUD over suppliers.
type ProveedorService struct {
	db *sql.DB
}

// NewProveedorService creates a new ProveedorService.
func NewProveedorService(db *sql.DB) *ProveedorService {
	return &ProveedorService{db: db}
}

func scanProveedor(scanner interface{ Scan(...interface{}) error }) (models.Proveedor, error) {
	var p models.Proveedor
	var telefono, direccion sql.NullString
	if err := scanner.Scan(&p.ID, &p.Nombre, &telefono, &direccion); err != nil {
		return p, err
	}
	p.Telefono = telefono.String
	p.Direccion = direccion.String
	return p, nil
}

// GetAll retrieves all suppliers.
func (s *ProveedorService) GetAll() ([]models.Proveedor, error) {
	rows, err := s.db.Query("SELECT id, nombre, telefono, direccion FROM proveedores")
	if err != nil {
		return nil, apperror.NewDatabase("Error interno del servidor al obtener proveedores.", err)
	}
	defer rows.Close()

	proveedores := []models.Proveedor{}
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, apperror.NewDatabase("Error interno del servidor al obtener proveedores.", err)
		}
		proveedores = append(proveedores, p)
	}
	return proveedores, rows.Err()
}

// GetByID retrieves a single supplier.
func (s *ProveedorService) GetByID(id int64) (models.Proveedor, error) {
	row := s.db.QueryRow("SELECT id, nombre, telefono, direccion FROM proveedores WHERE id = ?", id)
	p, err := scanProveedor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Proveedor{}, apperror.NewNotFound("Proveedor no encontrado.")
		}
		return models.Proveedor{}, apperror.NewDatabase("Error interno del servidor al obtener proveedor.", err)
	}
	return p, nil
}

// Create inserts a new supplier and returns it with its assigned id.
func (s *ProveedorService) Create(p models.Proveedor) (models.Proveedor, error) {
	res, err := s.db.Exec(
		"INSERT INTO proveedores(nombre, telefono, direccion) VALUES(?, ?, ?)",
		p.Nombre, p.Telefono, p.Direccion,
	)
	if err != nil {
		return models.Proveedor{}, apperror.NewDatabase("Error interno del servidor al crear proveedor.", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return models.Proveedor{}, apperror.NewDatabase("Error interno del servidor al crear proveedor.", err)
	}
	return p, nil
}

// Update overlays the set fields of patch, writes, and re-reads.
func (s *ProveedorService) Update(id int64, patch models.Proveedor) (models.Proveedor, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Proveedor{}, err
	}

	if patch.Nombre != "" {
		existing.Nombre = patch.Nombre
	}
	if patch.Telefono != "" {
		existing.Telefono = patch.Telefono
	}
	if patch.Direccion != "" {
		existing.Direccion = patch.Direccion
	}

	_, err = s.db.Exec(
		"UPDATE proveedores SET nombre = ?, telefono = ?, direccion = ? WHERE id = ?",
		existing.Nombre, existing.Telefono, existing.Direccion, id,
	)
	if err != nil {
		return models.Proveedor{}, apperror.NewDatabase("Error interno del servidor al actualizar proveedor.", err)
	}
	return s.GetByID(id)
}

// Delete removes a supplier; deleting an unknown id is a not-found.
func (s *ProveedorService) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM proveedores WHERE id = ?", id)
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar proveedor.", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar proveedor.", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("Proveedor no encontrado.")
	}
	return nil
}
