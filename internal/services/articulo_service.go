package services

import (
	"database/sql"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/models"
)

// ArticuloService provides CRUD over inventory items.
type ArticuloService struct {
	db *sql.DB
}

// NewArticuloService creates a new ArticuloService.
func NewArticuloService(db *sql.DB) *ArticuloService {
	return &ArticuloService{db: db}
}

func scanArticulo(scanner interface{ Scan(...interface{}) error }) (models.Articulo, error) {
	var a models.Articulo
	var precio float64
	var existencia int64
	if err := scanner.Scan(&a.ID, &a.Descripcion, &precio, &existencia); err != nil {
		return a, err
	}
	a.Precio = &precio
	a.Existencia = &existencia
	return a, nil
}

// GetAll retrieves all inventory items.
func (s *ArticuloService) GetAll() ([]models.Articulo, error) {
	rows, err := s.db.Query("SELECT id, descripcion, precio, existencia FROM articulos")
	if err != nil {
		return nil, apperror.NewDatabase("Error interno del servidor al obtener artículos.", err)
	}
	defer rows.Close()

	articulos := []models.Articulo{}
	for rows.Next() {
		a, err := scanArticulo(rows)
		if err != nil {
			return nil, apperror.NewDatabase("Error interno del servidor al obtener artículos.", err)
		}
		articulos = append(articulos, a)
	}
	return articulos, rows.Err()
}

// GetByID retrieves a single inventory item.
func (s *ArticuloService) GetByID(id int64) (models.Articulo, error) {
	row := s.db.QueryRow("SELECT id, descripcion, precio, existencia FROM articulos WHERE id = ?", id)
	a, err := scanArticulo(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Articulo{}, apperror.NewNotFound("Artículo no encontrado.")
		}
		return models.Articulo{}, apperror.NewDatabase("Error interno del servidor al obtener artículo.", err)
	}
	return a, nil
}

// Create inserts a new inventory item and returns it with its assigned id.
func (s *ArticuloService) Create(a models.Articulo) (models.Articulo, error) {
	res, err := s.db.Exec(
		"INSERT INTO articulos(descripcion, precio, existencia) VALUES(?, ?, ?)",
		a.Descripcion, a.Precio, a.Existencia,
	)
	if err != nil {
		return models.Articulo{}, apperror.NewDatabase("Error interno del servidor al crear artículo.", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return models.Articulo{}, apperror.NewDatabase("Error interno del servidor al crear artículo.", err)
	}
	return a, nil
}

// Update overlays the set fields of patch, writes, and re-reads. A present
// precio or existencia always wins, including an explicit zero: marking an
// item out of stock is a normal update.
func (s *ArticuloService) Update(id int64, patch models.Articulo) (models.Articulo, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Articulo{}, err
	}

	if patch.Descripcion != "" {
		existing.Descripcion = patch.Descripcion
	}
	if patch.Precio != nil {
		existing.Precio = patch.Precio
	}
	if patch.Existencia != nil {
		existing.Existencia = patch.Existencia
	}

	_, err = s.db.Exec(
		"UPDATE articulos SET descripcion = ?, precio = ?, existencia = ? WHERE id = ?",
		existing.Descripcion, existing.Precio, existing.Existencia, id,
	)
	if err != nil {
		return models.Articulo{}, apperror.NewDatabase("Error interno del servidor al actualizar artículo.", err)
	}
	return s.GetByID(id)
}

// Delete removes an inventory item; deleting an unknown id is a not-found.
func (s *ArticuloService) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM articulos WHERE id = ?", id)
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar artículo.", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar artículo.", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("Artículo no encontrado.")
	}
	return nil
}
