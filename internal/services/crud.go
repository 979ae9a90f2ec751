package services

// CrudProvider is the contract every entity service implements. Update takes
// a partial entity and overlays only its set fields onto the stored record,
// then returns the re-read result.
type CrudProvider[T any] interface {
	GetAll() ([]T, error)
	GetByID(id int64) (T, error)
	Create(entity T) (T, error)
	Update(id int64, patch T) (T, error)
	Delete(id int64) error
}
