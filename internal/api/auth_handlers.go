package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vowvenues/vowvenues/internal/auth"
	"github.com/vowvenues/vowvenues/internal/store"
)

var bearerTokenRE = regexp.MustCompile(`^Bearer ([^\s]+)$`)

type (
	credentialsRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Email    string `json:"email"`
	}

	sessionResponse struct {
		User  *store.User `json:"user"`
		Token string      `json:"token"`
	}
)

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	user, err := s.users.FindByUsername(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	} else if err != nil {
		s.serverError(w, r, err)
		return
	}
	if !auth.VerifyPassword(req.Password, user.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := s.tokens.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: user, Token: token})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	_, err := s.users.FindByUsername(r.Context(), req.Username)
	if err == nil {
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		s.serverError(w, r, err)
		return
	}
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	user, err := s.users.Insert(r.Context(), &store.User{
		Username: req.Username,
		Password: hashed,
		Name:     req.Name,
		Email:    req.Email,
	})
	if errors.Is(err, store.ErrDuplicateUsername) {
		// lost the race against a concurrent registration
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	} else if err != nil {
		s.serverError(w, r, err)
		return
	}
	token, err := s.tokens.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{User: user, Token: token})
}

// logout exists so clients have something to call; the token is stateless
// and simply gets discarded on their side.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageBody{Message: "Logged out successfully"})
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) {
	groups := bearerTokenRE.FindStringSubmatch(r.Header.Get("Authorization"))
	if len(groups) == 0 {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}
	claims, ok := s.tokens.Verify(groups[1])
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	user, err := s.users.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
