package services

import (
	"database/sql"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/models"
)

// EmpleadoService provides CRUD over employees.
type EmpleadoService struct {
	db *sql.DB
}

// NewEmpleadoService creates a new EmpleadoService.
func NewEmpleadoService(db *sql.DB) *EmpleadoService {
	return &EmpleadoService{db: db}
}

func scanEmpleado(scanner interface{ Scan(...interface{}) error }) (models.Empleado, error) {
	var e models.Empleado
	var puesto sql.NullString
	var sueldo float64
	if err := scanner.Scan(&e.ID, &e.Nombre, &puesto, &sueldo); err != nil {
		return e, err
	}
	e.Puesto = puesto.String
	e.Sueldo = &sueldo
	return e, nil
}

// GetAll retrieves all employees.
func (s *EmpleadoService) GetAll() ([]models.Empleado, error) {
	rows, err := s.db.Query("SELECT id, nombre, puesto, sueldo FROM empleados")
	if err != nil {
		return nil, apperror.NewDatabase("Error interno del servidor al obtener empleados.", err)
	}
	defer rows.Close()

	empleados := []models.Empleado{}
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, apperror.NewDatabase("Error interno del servidor al obtener empleados.", err)
		}
		empleados = append(empleados, e)
	}
	return empleados, rows.Err()
}

// GetByID retrieves a single employee.
func (s *EmpleadoService) GetByID(id int64) (models.Empleado, error) {
	row := s.db.QueryRow("SELECT id, nombre, puesto, sueldo FROM empleados WHERE id = ?", id)
	e, err := scanEmpleado(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Empleado{}, apperror.NewNotFound("Empleado no encontrado.")
		}
		return models.Empleado{}, apperror.NewDatabase("Error interno del servidor al obtener empleado.", err)
	}
	return e, nil
}

// Create inserts a new employee and returns it with its assigned id.
func (s *EmpleadoService) Create(e models.Empleado) (models.Empleado, error) {
	res, err := s.db.Exec(
		"INSERT INTO empleados(nombre, puesto, sueldo) VALUES(?, ?, ?)",
		e.Nombre, e.Puesto, e.Sueldo,
	)
	if err != nil {
		return models.Empleado{}, apperror.NewDatabase("Error interno del servidor al crear empleado.", err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return models.Empleado{}, apperror.NewDatabase("Error interno del servidor al crear empleado.", err)
	}
	return e, nil
}

// Update overlays the set fields of patch, writes, and re-reads.
func (s *EmpleadoService) Update(id int64, patch models.Empleado) (models.Empleado, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.Empleado{}, err
	}

	if patch.Nombre != "" {
		existing.Nombre = patch.Nombre
	}
	if patch.Puesto != "" {
		existing.Puesto = patch.Puesto
	}
	if patch.Sueldo != nil {
		existing.Sueldo = patch.Sueldo
	}

	_, err = s.db.Exec(
		"UPDATE empleados SET nombre = ?, puesto = ?, sueldo = ? WHERE id = ?",
		existing.Nombre, existing.Puesto, existing.Sueldo, id,
	)
	if err != nil {
		return models.Empleado{}, apperror.NewDatabase("Error interno del servidor al actualizar empleado.", err)
	}
	return s.GetByID(id)
}

// Delete removes an employee; deleting an unknown id is a not-found.
func (s *EmpleadoService) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM empleados WHERE id = ?", id)
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar empleado.", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDatabase("Error interno del servidor al eliminar empleado.", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("Empleado no encontrado.")
	}
	return nil
}
