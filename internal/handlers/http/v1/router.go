package v1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultRequestTimeout bounds a request's context when RouterConfig leaves it unset
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig configures the HTTP router
type RouterConfig struct {
	Handler *Handler
	// CORSOrigins lists allowed origins. Empty allows any origin.
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// NewRouter wires the middleware stack and every route
func NewRouter(cfg *RouterConfig) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	h := cfg.Handler
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	r.Use(chimiddleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, req, http.StatusNotFound, ErrorResponse{Detail: "Not Found", Code: "NOT_FOUND"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, req, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed", Code: "METHOD_NOT_ALLOWED"})
	})

	r.Get("/health", h.HealthCheck)

	r.Route("/trainers", func(r chi.Router) {
		r.Post("/", h.CreateTrainer)
		r.Get("/", h.ListTrainers)
		r.Get("/{trainerID}", h.GetTrainer)
		r.Post("/{trainerID}/item", h.AddItem)
		r.Post("/{trainerID}/pokemon", h.AddPokemon)
	})

	r.Get("/items", h.ListItems)

	r.Route("/pokemons", func(r chi.Router) {
		r.Get("/", h.ListPokemons)
		r.Get("/battle/{first}/{second}", h.Battle)
		r.Get("/{pokemonID}", h.GetPokemon)
	})

	return r
}
