package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinique/backend/internal/db"
	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/types"
)

// stubStore is an in-memory Store for handler tests.
type stubStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*db.Profile
	users    map[uuid.UUID]*db.User
	scores   map[string]*db.MatchScore
	order    []uuid.UUID
}

func newStubStore() *stubStore {
	return &stubStore{
		profiles: make(map[uuid.UUID]*db.Profile),
		users:    make(map[uuid.UUID]*db.User),
		scores:   make(map[string]*db.MatchScore),
	}
}

func pairKey(profileID, candidateID uuid.UUID) string {
	return fmt.Sprintf("%s/%s", profileID, candidateID)
}

func (s *stubStore) CreateProfile(_ context.Context, p *db.Profile) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	stored := *p
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.profiles[id] = &stored
	s.order = append(s.order, id)
	return id, nil
}

func (s *stubStore) GetProfile(_ context.Context, profileID uuid.UUID) (*db.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[profileID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *stubStore) ListProfiles(_ context.Context) ([]db.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.Profile
	for _, id := range s.order {
		if p, ok := s.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubStore) UpdateProfile(_ context.Context, p *db.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID]; !ok {
		return fmt.Errorf("profile not found: %s", p.ID)
	}
	stored := *p
	stored.UpdatedAt = time.Now()
	s.profiles[p.ID] = &stored
	return nil
}

func (s *stubStore) DeleteProfile(_ context.Context, profileID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profileID]; !ok {
		return fmt.Errorf("profile not found: %s", profileID)
	}
	delete(s.profiles, profileID)
	return nil
}

func (s *stubStore) UpsertMatchScore(_ context.Context, profileID, candidateID uuid.UUID, overall int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[pairKey(profileID, candidateID)] = &db.MatchScore{
		ProfileID:   profileID,
		CandidateID: candidateID,
		Overall:     overall,
		CreatedAt:   time.Now(),
	}
	return nil
}

func (s *stubStore) GetMatchScore(_ context.Context, profileID, candidateID uuid.UUID) (*db.MatchScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.scores[pairKey(profileID, candidateID)]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (s *stubStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	now := time.Now()
	s.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (s *stubStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *stubStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := s.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (s *stubStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

func newTestServer(t *testing.T) (*Server, *stubStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("BCRYPT_COST", "10")

	store := newStubStore()
	s, err := newWithStore(Config{Port: 8080}, store)
	require.NoError(t, err)
	return s, store
}

// doRequest runs a request through the full handler chain.
func doRequest(s *Server, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func seedProfile(t *testing.T, store *stubStore, name, birthDate string, bioAge, stamina int) uuid.UUID {
	t.Helper()
	p := &db.Profile{Name: name, BioAge: bioAge, Stamina: stamina}
	if birthDate != "" {
		parsed, err := time.Parse(engine.DateLayout, birthDate)
		require.NoError(t, err)
		p.BirthDate = db.NewDate(parsed)
	}
	id, err := store.CreateProfile(context.Background(), p)
	require.NoError(t, err)
	return id
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodOptions, "/profiles", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterAndLogin(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/auth/register", types.RegisterRequest{
		Name:     "Alice Wong",
		Email:    "alice@example.com",
		Password: "correct horse",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Token)
	require.NotNil(t, registered.User)
	assert.Equal(t, "alice@example.com", registered.User.Email)

	// Duplicate email
	rec = doRequest(s, http.MethodPost, "/auth/register", types.RegisterRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "correct horse",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Valid login
	rec = doRequest(s, http.MethodPost, "/auth/login", types.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Wrong password
	rec = doRequest(s, http.MethodPost, "/auth/login", types.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/auth/register", types.RegisterRequest{
		Name:     "Short",
		Email:    "short@example.com",
		Password: "short",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password")
}

func TestUpdatePassword(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/auth/register", types.RegisterRequest{
		Name:     "Bob Stone",
		Email:    "bob@example.com",
		Password: "original pass",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	// No token
	rec = doRequest(s, http.MethodPut, "/auth/password", types.UpdatePasswordRequest{
		CurrentPassword: "original pass",
		NewPassword:     "replacement pass",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auth := map[string]string{"Authorization": "Bearer " + registered.Token}

	// Wrong current password
	rec = doRequest(s, http.MethodPut, "/auth/password", types.UpdatePasswordRequest{
		CurrentPassword: "not the password",
		NewPassword:     "replacement pass",
	}, auth)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, http.MethodPut, "/auth/password", types.UpdatePasswordRequest{
		CurrentPassword: "original pass",
		NewPassword:     "replacement pass",
	}, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodPost, "/auth/login", types.LoginRequest{
		Email:    "bob@example.com",
		Password: "replacement pass",
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTRoundtrip(t *testing.T) {
	s, _ := newTestServer(t)

	userID := uuid.New()
	token, err := s.jwtService.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := s.jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())

	_, err = s.jwtService.ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = s.jwtService.ValidateToken("")
	assert.Error(t, err)
}
