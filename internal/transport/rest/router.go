package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Tools   *ToolHandler
	History *HistoryHandler
	Users   *UserHandler
	Health  *HealthHandler
}

// NewRouter builds the HTTP route table. Authorization happens in the
// service layer, so every route is mounted unconditionally here.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", h.Auth.Register)
	mux.HandleFunc("POST /login", h.Auth.Login)

	mux.HandleFunc("GET /tools", h.Tools.List)
	mux.HandleFunc("POST /tools", h.Tools.Create)
	mux.HandleFunc("GET /tools/{id}", h.Tools.Get)
	mux.HandleFunc("PUT /tools/{id}", h.Tools.Update)
	mux.HandleFunc("DELETE /tools/{id}", h.Tools.Delete)
	mux.HandleFunc("POST /tools/{id}/checkout", h.Tools.Checkout)
	mux.HandleFunc("POST /tools/{id}/return", h.Tools.Return)

	mux.HandleFunc("GET /history", h.History.List)

	mux.HandleFunc("GET /users", h.Users.List)
	mux.HandleFunc("POST /users", h.Users.Create)
	mux.HandleFunc("GET /users/{id}", h.Users.Get)
	mux.HandleFunc("PUT /users/{id}", h.Users.Update)
	mux.HandleFunc("DELETE /users/{id}", h.Users.Delete)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	return mux
}
