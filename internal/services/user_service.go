package services

import (
	"database/sql"

	"github.com/avaldezp/pizzeria-be/internal/apperror"
	"github.com/avaldezp/pizzeria-be/internal/auth"
	"github.com/avaldezp/pizzeria-be/internal/database"
	"github.com/avaldezp/pizzeria-be/internal/models"
)

// UserServiceProvider defines the interface for account services.
type UserServiceProvider interface {
	Register(username, password string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserService provides registration and credential verification.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register hashes the password and creates the account. A duplicate username
// is a conflict; the users.username UNIQUE constraint is the final authority,
// so two concurrent registrations cannot both succeed.
func (s *UserService) Register(username, password string) (models.User, error) {
	var exists int
	row := s.db.QueryRow("SELECT COUNT(1) FROM users WHERE username = ?", username)
	if err := row.Scan(&exists); err != nil {
		return models.User{}, apperror.NewDatabase("Error interno del servidor al registrar usuario.", err)
	}
	if exists > 0 {
		return models.User{}, apperror.NewConflict("El nombre de usuario ya existe.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, apperror.NewDatabase("Error interno del servidor al registrar usuario.", err)
	}

	res, err := s.db.Exec("INSERT INTO users(username, password_hash) VALUES(?, ?)", username, hash)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.User{}, apperror.NewConflict("El nombre de usuario ya existe.")
		}
		return models.User{}, apperror.NewDatabase("Error interno del servidor al registrar usuario.", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, apperror.NewDatabase("Error interno del servidor al registrar usuario.", err)
	}

	return models.User{ID: id, Username: username}, nil
}

// Authenticate verifies a user's credentials. An unknown username and a wrong
// password yield the identical error, so responses never reveal which
// usernames exist.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, apperror.NewAuth("Credenciales inválidas.")
		}
		return models.User{}, apperror.NewDatabase("Error interno del servidor al iniciar sesión.", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, apperror.NewAuth("Credenciales inválidas.")
	}

	// Don't hand the hash onward
	user.PasswordHash = ""
	return user, nil
}
