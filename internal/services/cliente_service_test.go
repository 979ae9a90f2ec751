package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/models"
)

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.NotFoundError, appErr.Type)
}

func TestClienteService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(db)

	created, err := svc.Create(models.Cliente{Nombre: "Ana", Correo: "ana@pizzeria.mx", Telefono: "5551234"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestClienteService_GetAllEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(db)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, all, "empty list must serialize as [], not null")
	assert.Empty(t, all)
}

func TestClienteService_GetMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(db)

	_, err := svc.GetByID(99)
	requireNotFound(t, err)
}

func TestClienteService_UpdateMergesPatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(db)

	_, err := svc.Create(models.Cliente{Nombre: "Ana", Correo: "ana@pizzeria.mx"})
	require.NoError(t, err)

	// Only the phone is set; name and mail must survive.
	updated, err := svc.Update(1, models.Cliente{Telefono: "5559999"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Nombre)
	assert.Equal(t, "ana@pizzeria.mx", updated.Correo)
	assert.Equal(t, "5559999", updated.Telefono)
}

func TestClienteService_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(db)

	_, err := svc.Update(42, models.Cliente{Nombre: "Nadie"})
	requireNotFound(t, err)
}

func TestClienteService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := NewClienteService(db)

	_, err := svc.Create(models.Cliente{Nombre: "Ana", Correo: "ana@pizzeria.mx"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1))

	_, err = svc.GetByID(1)
	requireNotFound(t, err)

	// Deleting again reports not found instead of silently succeeding.
	requireNotFound(t, svc.Delete(1))
}

func TestArticuloService_UpdateOmittedFieldsKeepValues(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticuloService(db)

	_, err := svc.Create(models.Articulo{Descripcion: "Harina", Precio: ptr(120.5), Existencia: ptr(int64(10))})
	require.NoError(t, err)

	updated, err := svc.Update(1, models.Articulo{Existencia: ptr(int64(25))})
	require.NoError(t, err)
	assert.Equal(t, "Harina", updated.Descripcion)
	assert.Equal(t, 120.5, *updated.Precio)
	assert.Equal(t, int64(25), *updated.Existencia)
}

func TestArticuloService_UpdateToZeroStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticuloService(db)

	_, err := svc.Create(models.Articulo{Descripcion: "Harina", Precio: ptr(120.5), Existencia: ptr(int64(10))})
	require.NoError(t, err)

	// An explicit zero marks the item out of stock; it must not be mistaken
	// for an absent field and dropped.
	updated, err := svc.Update(1, models.Articulo{Existencia: ptr(int64(0))})
	require.NoError(t, err)
	assert.Equal(t, int64(0), *updated.Existencia)

	got, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), *got.Existencia)
}

func TestEmpleadoService_Crud(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmpleadoService(db)

	created, err := svc.Create(models.Empleado{Nombre: "Luis", Puesto: "repartidor", Sueldo: ptr(8500.0)})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, models.Empleado{Sueldo: ptr(9000.0)})
	require.NoError(t, err)
	assert.Equal(t, "Luis", updated.Nombre)
	assert.Equal(t, float64(9000), *updated.Sueldo)

	require.NoError(t, svc.Delete(created.ID))
}

func TestProveedorService_Crud(t *testing.T) {
	db := newTestDB(t)
	svc := NewProveedorService(db)

	created, err := svc.Create(models.Proveedor{Nombre: "Molinos del Norte"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Molinos del Norte", all[0].Nombre)
}
