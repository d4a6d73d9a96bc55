package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/destinique/backend/internal/db"
	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/types"
)

// parseProfileID extracts and parses the {id} path value. Writes the error
// response itself and returns false when the ID is malformed.
func parseProfileID(w http.ResponseWriter, r *http.Request, pathValue string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(pathValue))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid profile ID format")
		return uuid.Nil, false
	}
	return id, true
}

// handleCreateProfile creates a dating profile.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// Omitted physical attributes fall back to the engine defaults so the
	// physical dimension always has inputs.
	if req.BioAge == 0 {
		req.BioAge = engine.DefaultBioAge
	}
	if req.Stamina == 0 {
		req.Stamina = engine.DefaultStamina
	}

	birthDate, err := time.Parse(engine.DateLayout, req.BirthDate)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid birth_date format, expected YYYY-MM-DD")
		return
	}

	profile := &db.Profile{
		Name:       req.Name,
		BirthDate:  db.NewDate(birthDate),
		BioAge:     req.BioAge,
		Stamina:    req.Stamina,
		Location:   req.Location,
		Profession: req.Profession,
		ImageURL:   req.ImageURL,
		Interests:  req.Interests,
	}

	id, err := s.store.CreateProfile(r.Context(), profile)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	created, err := s.store.GetProfile(r.Context(), id)
	if err != nil || created == nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to load created profile")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleListProfiles returns all profiles, newest first.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.store.ListProfiles(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profiles == nil {
		profiles = []db.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

// handleGetProfile returns a single profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProfileID(w, r, "id")
	if !ok {
		return
	}

	profile, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		errorJSON(w, http.StatusNotFound, (&ErrProfileNotFound{ProfileID: id}).Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// handleUpdateProfile applies a partial update to a profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProfileID(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		errorJSON(w, http.StatusNotFound, (&ErrProfileNotFound{ProfileID: id}).Error())
		return
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(engine.DateLayout, req.BirthDate)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, "Invalid birth_date format, expected YYYY-MM-DD")
			return
		}
		profile.BirthDate = db.NewDate(birthDate)
	}
	if req.BioAge != 0 {
		profile.BioAge = req.BioAge
	}
	if req.Stamina != 0 {
		profile.Stamina = req.Stamina
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Profession != "" {
		profile.Profession = req.Profession
	}
	if req.ImageURL != "" {
		profile.ImageURL = req.ImageURL
	}
	if req.Interests != nil {
		profile.Interests = req.Interests
	}

	if err := s.store.UpdateProfile(r.Context(), profile); err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// handleDeleteProfile removes a profile and its cached match scores.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseProfileID(w, r, "id")
	if !ok {
		return
	}

	profile, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		errorJSON(w, http.StatusNotFound, (&ErrProfileNotFound{ProfileID: id}).Error())
		return
	}

	if err := s.store.DeleteProfile(r.Context(), id); err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
