package rest

import (
	"log/slog"
	"net/http"

	"github.com/JanRezzonico/API-Dipendenze/internal/config"
	"github.com/JanRezzonico/API-Dipendenze/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Users    *UserHandler
	Counters *CounterHandler
	Diary    *RecordHandler
	Resets   *RecordHandler
	Health   *HealthHandler
	Auth     middleware.Middleware
	Logger   *slog.Logger
	CORS     config.CORSConfig
	MaxBody  int64
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	open := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, h)
	}
	authed := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Protected(d.Auth)(h))
	}
	authedID := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Protected(d.Auth, "id")(h))
	}

	open("GET /live", d.Health.Live)
	open("GET /ready", d.Health.Ready)
	open("GET /health", d.Health.Health)

	open("GET /api/check", Check)
	open("GET /api/check-username-availability", d.Users.CheckUsername)

	open("POST /api/user/signup", d.Users.Signup)
	open("POST /api/user/login", d.Users.Login)
	authed("POST /api/user/logout", d.Users.Logout)
	authed("DELETE /api/user/delete", d.Users.Delete)
	authed("PATCH /api/user/update", d.Users.Update)

	authed("POST /api/counter/create", d.Counters.Create)
	authed("GET /api/counter/get", d.Counters.List)
	authedID("GET /api/counter/getById/{id}", d.Counters.Get)
	authedID("PATCH /api/counter/update/{id}", d.Counters.Update)
	authedID("DELETE /api/counter/delete/{id}", d.Counters.Delete)

	for prefix, h := range map[string]*RecordHandler{
		"/api/diary-record": d.Diary,
		"/api/relapse":      d.Resets,
	} {
		authed("POST "+prefix+"/create", h.Create)
		authedID("DELETE "+prefix+"/delete/{id}", h.Delete)
		authedID("PATCH "+prefix+"/update/{id}", h.Update)
	}

	var handler http.Handler = mux
	if d.MaxBody > 0 {
		handler = http.MaxBytesHandler(handler, d.MaxBody)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(handler)
}
