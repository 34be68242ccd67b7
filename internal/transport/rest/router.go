// Package rest provides the HTTP handlers and routing for the public API.
package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Tags     *TagHandler
	Todos    *TodoHandler
	Blocks   *BlockHandler
	Streak   *StreakHandler
	Stats    *StatsHandler
	Settings *SettingsHandler
	Health   *HealthHandler
}

// NewRouter builds the route table. Authentication is enforced by middleware
// wrapped around the returned mux, not here; handlers rely on the user ID
// placed in the request context.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("GET /tags", h.Tags.List)
	mux.HandleFunc("POST /tags", h.Tags.Create)
	mux.HandleFunc("GET /tags/{id}", h.Tags.Get)
	mux.HandleFunc("PUT /tags/{id}", h.Tags.Update)
	mux.HandleFunc("DELETE /tags/{id}", h.Tags.Delete)

	mux.HandleFunc("GET /todos", h.Todos.List)
	mux.HandleFunc("POST /todos", h.Todos.Create)
	mux.HandleFunc("GET /todos/counts", h.Todos.Counts)
	mux.HandleFunc("GET /todos/{id}", h.Todos.Get)
	mux.HandleFunc("PATCH /todos/{id}", h.Todos.Update)
	mux.HandleFunc("POST /todos/{id}/toggle", h.Todos.Toggle)
	mux.HandleFunc("DELETE /todos/{id}", h.Todos.Delete)

	mux.HandleFunc("POST /blocks", h.Blocks.Start)
	mux.HandleFunc("GET /blocks", h.Blocks.List)
	mux.HandleFunc("GET /blocks/active", h.Blocks.Active)
	mux.HandleFunc("GET /blocks/{id}", h.Blocks.Get)
	mux.HandleFunc("POST /blocks/{id}/end", h.Blocks.End)
	mux.HandleFunc("DELETE /blocks/{id}", h.Blocks.Delete)

	mux.HandleFunc("GET /streak", h.Streak.Get)
	mux.HandleFunc("POST /streak/reset", h.Streak.Reset)

	mux.HandleFunc("GET /stats/daily", h.Stats.Daily)
	mux.HandleFunc("GET /stats/period", h.Stats.Period)
	mux.HandleFunc("GET /stats/lifetime", h.Stats.Lifetime)
	mux.HandleFunc("GET /stats/tags", h.Stats.Tags)

	mux.HandleFunc("GET /settings", h.Settings.Get)
	mux.HandleFunc("PATCH /settings", h.Settings.Update)

	return mux
}
