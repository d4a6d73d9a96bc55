package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/destinique/backend/internal/db"
	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/types"
)

// matchConcurrency bounds the fan-out when scoring a profile against the
// whole candidate pool.
const matchConcurrency = 8

// MatchEntry pairs a candidate profile with its overall compatibility.
type MatchEntry struct {
	Profile   db.Profile `json:"profile"`
	Overall   int        `json:"overall"`
	Narrative string     `json:"narrative"`
}

// profileAssessments derives the full assessment bundle for a stored
// profile. Profiles without a birth date or name cannot be scored.
func (s *Server) profileAssessments(p *db.Profile) (*types.AssessmentSet, error) {
	if p.BirthDate == nil || p.BirthDate.IsZero() || strings.TrimSpace(p.Name) == "" {
		return nil, &ErrProfileIncomplete{ProfileID: p.ID}
	}

	set, err := s.engine.GenerateAssessments(p.BirthDate.Format(engine.DateLayout), p.Name)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, &ErrProfileIncomplete{ProfileID: p.ID}
	}

	set.BioAge = p.BioAge
	set.Stamina = p.Stamina
	return set, nil
}

// handleGetAssessments returns the derived assessments for a profile.
func (s *Server) handleGetAssessments(w http.ResponseWriter, r *http.Request) {
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

	set, err := s.profileAssessments(profile)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// handleGetCosmic returns the cosmic blueprint scores for a profile.
func (s *Server) handleGetCosmic(w http.ResponseWriter, r *http.Request) {
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
	if profile.BirthDate == nil || profile.BirthDate.IsZero() {
		errorJSON(w, http.StatusUnprocessableEntity, (&ErrProfileIncomplete{ProfileID: id}).Error())
		return
	}

	score, err := s.engine.CalculateCosmicScore(profile.BirthDate.Format(engine.DateLayout), profile.Name)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, score)
}

// handlePairCompatibility scores a stored profile against a stored candidate.
func (s *Server) handlePairCompatibility(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, "id")
	if !ok {
		return
	}
	candidateID, ok := parseProfileID(w, r, "candidate_id")
	if !ok {
		return
	}

	var subject, candidate *db.Profile
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		subject, err = s.store.GetProfile(ctx, profileID)
		return err
	})
	g.Go(func() error {
		var err error
		candidate, err = s.store.GetProfile(ctx, candidateID)
		return err
	})
	if err := g.Wait(); err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if subject == nil {
		errorJSON(w, http.StatusNotFound, (&ErrProfileNotFound{ProfileID: profileID}).Error())
		return
	}
	if candidate == nil {
		errorJSON(w, http.StatusNotFound, (&ErrProfileNotFound{ProfileID: candidateID}).Error())
		return
	}

	subjectSet, err := s.profileAssessments(subject)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	candidateSet, err := s.profileAssessments(candidate)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.engine.CalculateCompatibility(subjectSet, candidateSet)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	// Cache the overall score; scoring still succeeds if the write fails.
	if err := s.store.UpsertMatchScore(r.Context(), profileID, candidateID, report.Overall); err != nil {
		log.Printf("Failed to cache match score %s/%s: %v", profileID, candidateID, err)
	}

	writeJSON(w, http.StatusOK, report)
}

// handleListMatches scores a profile against every other stored profile and
// returns candidates ordered by overall compatibility.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	profileID, ok := parseProfileID(w, r, "id")
	if !ok {
		return
	}

	subject, err := s.store.GetProfile(r.Context(), profileID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if subject == nil {
		errorJSON(w, http.StatusNotFound, (&ErrProfileNotFound{ProfileID: profileID}).Error())
		return
	}

	subjectSet, err := s.profileAssessments(subject)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	profiles, err := s.store.ListProfiles(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	var candidates []db.Profile
	for _, p := range profiles {
		if p.ID != profileID {
			candidates = append(candidates, p)
		}
	}

	entries := make([]*MatchEntry, len(candidates))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(matchConcurrency)
	for i := range candidates {
		g.Go(func() error {
			candidate := candidates[i]
			candidateSet, err := s.profileAssessments(&candidate)
			if err != nil {
				// Unscorable candidates are skipped, not fatal.
				if _, ok := err.(*ErrProfileIncomplete); ok {
					return nil
				}
				return err
			}

			report, err := s.engine.CalculateCompatibility(subjectSet, candidateSet)
			if err != nil {
				return err
			}

			if err := s.store.UpsertMatchScore(ctx, profileID, candidate.ID, report.Overall); err != nil {
				log.Printf("Failed to cache match score %s/%s: %v", profileID, candidate.ID, err)
			}

			entries[i] = &MatchEntry{
				Profile:   candidate,
				Overall:   report.Overall,
				Narrative: report.Narrative,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	matches := make([]MatchEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			matches = append(matches, *e)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Overall > matches[j].Overall
	})

	writeJSON(w, http.StatusOK, matches)
}

// handleCompatibility scores two caller-supplied assessment bundles.
func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	var req types.CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	report, err := s.engine.CalculateCompatibility(req.Subject, req.Candidate)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// handleCosmic computes a cosmic blueprint from a caller-supplied birth date.
func (s *Server) handleCosmic(w http.ResponseWriter, r *http.Request) {
	var req types.CosmicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	score, err := s.engine.CalculateCosmicScore(req.BirthDate, req.Name)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, score)
}
