package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Handler assembles the full middleware chain: request logging outermost,
// then panic recovery, then one CORS policy shared by every endpoint, then
// the route table. Passing "*" as an origin opens the surface to everyone;
// anything else is treated as an exact allow-list.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodPost, "/api/login", s.login)
	router.HandlerFunc(http.MethodPost, "/api/register", s.register)
	router.HandlerFunc(http.MethodPost, "/api/logout", s.logout)
	router.HandlerFunc(http.MethodGet, "/api/user", s.currentUser)
	router.HandlerFunc(http.MethodGet, "/api/venues", s.listVenues)
	router.HandlerFunc(http.MethodGet, "/api/venues/:id", s.venueByID)
	router.HandlerFunc(http.MethodGet, "/healthz", s.healthz)

	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	// non-preflight OPTIONS still gets an empty 200
	router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	policy := cors.New(cors.Options{
		AllowedOrigins:       allowedOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Authorization"},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusOK,
	})
	return requestLogger(recoverPanics(policy.Handler(router)))
}
