package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vowvenues/vowvenues/internal/store"
)

func (s *Server) listVenues(w http.ResponseWriter, r *http.Request) {
	payload, ok := s.listing.get()
	if !ok {
		venues, err := s.venues.All(r.Context())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		if venues == nil {
			venues = []store.Venue{}
		}
		payload, err = json.Marshal(venues)
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		s.listing.put(payload)
	}
	etag := etagFor(payload)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (s *Server) venueByID(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid venue ID format")
		return
	}
	venue, err := s.venues.FindByID(r.Context(), oid)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Venue not found")
		return
	} else if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			s.serverError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "ok"})
}
