package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/avaldezp/pizzeria-be/internal/api/handlers"
	"github.com/avaldezp/pizzeria-be/internal/auth"
	"github.com/avaldezp/pizzeria-be/internal/models"
	"github.com/avaldezp/pizzeria-be/internal/services"
)

// NewRouter creates and configures a new Chi router. The clientes routes sit
// behind the token gate; the remaining inventory routes are public.
func NewRouter(
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	clienteService *services.ClienteService,
	proveedorService *services.ProveedorService,
	articuloService *services.ArticuloService,
	empleadoService *services.EmpleadoService,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	validate := newValidator()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	clienteHandler := handlers.NewCrudHandler[models.Cliente](clienteService, validate)
	proveedorHandler := handlers.NewCrudHandler[models.Proveedor](proveedorService, validate)
	articuloHandler := handlers.NewCrudHandler[models.Articulo](articuloService, validate)
	empleadoHandler := handlers.NewCrudHandler[models.Empleado](empleadoService, validate)

	r.Post("/registro", authHandler.Register)
	r.Post("/login", authHandler.Login)

	mountCrud(r, "/clientes", clienteHandler, auth.Middleware(tokens))
	mountCrud(r, "/proveedores", proveedorHandler)
	mountCrud(r, "/articulos", articuloHandler)
	mountCrud(r, "/empleados", empleadoHandler)

	return r
}

// mountCrud wires the uniform verb set for one entity, optionally behind
// request guards such as the token gate.
func mountCrud[T any](r chi.Router, path string, h *handlers.CrudHandler[T], guards ...func(http.Handler) http.Handler) {
	r.Route(path, func(r chi.Router) {
		for _, guard := range guards {
			r.Use(guard)
		}
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
		})
	})
}

// newValidator builds the shared validator, reporting fields by their JSON
// names so error messages match the request body.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
