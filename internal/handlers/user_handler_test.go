package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monirul480/Language-club-serversite/internal/auth"
	"github.com/Monirul480/Language-club-serversite/internal/middleware"
	"github.com/Monirul480/Language-club-serversite/internal/models"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUserStore) All(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserStore) Instructors(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []models.User{}
	for _, u := range f.users {
		if u.Role == models.RoleInstructor {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserStore) SetRole(ctx context.Context, id string, role models.UserRole) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, u := range f.users {
		if u.ID == objID {
			u.Role = role
			f.users[email] = u
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, u := range f.users {
		if u.ID == objID {
			delete(f.users, email)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func TestCreateUserIdempotent(t *testing.T) {
	store := newFakeUserStore()
	handler := NewUserHandler(store, nil)

	body := `{"email":"a@x.com"}`
	first := httptest.NewRecorder()
	handler.CreateUser(first, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	if first.Code != http.StatusOK {
		t.Fatalf("first create: expected 200, got %d", first.Code)
	}
	if strings.Contains(first.Body.String(), "already exists") {
		t.Fatalf("first create must insert, got %s", first.Body.String())
	}

	second := httptest.NewRecorder()
	handler.CreateUser(second, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	if second.Code != http.StatusOK {
		t.Fatalf("second create: expected 200, got %d", second.Code)
	}

	var reply map[string]string
	if err := json.NewDecoder(second.Body).Decode(&reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply["message"] != "user already exists" {
		t.Fatalf("expected existence message, got %+v", reply)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected exactly one record per email, got %d", len(store.users))
	}
}

func TestUserListsEmptyAsArray(t *testing.T) {
	handler := NewUserHandler(newFakeUserStore(), nil)

	rec := httptest.NewRecorder()
	handler.GetUsers(rec, httptest.NewRequest("GET", "/users", nil))
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("an empty user list must serialize as [], got %q", body)
	}

	rec = httptest.NewRecorder()
	handler.GetInstructors(rec, httptest.NewRequest("GET", "/allInstructor", nil))
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("an empty instructor list must serialize as [], got %q", body)
	}
}

func TestCreateUserRequiresEmail(t *testing.T) {
	handler := NewUserHandler(newFakeUserStore(), nil)

	rec := httptest.NewRecorder()
	handler.CreateUser(rec, httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"Ava"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a body without email, got %d", rec.Code)
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	handler := NewUserHandler(newFakeUserStore(), tokens)

	rec := httptest.NewRecorder()
	handler.IssueToken(rec, httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com","name":"Ava"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var reply map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	claims, err := tokens.Verify(reply["token"])
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("expected claims for a@x.com, got %s", claims.Email)
	}
}

// checkRoleRouter wires CheckRole behind RequireAuth the same way the real
// router does, so path vars and context claims are both in play.
func checkRoleRouter(handler *UserHandler, tokens *auth.TokenService) *mux.Router {
	router := mux.NewRouter()
	router.Handle("/users/admin/{email}", middleware.RequireAuth(tokens)(http.HandlerFunc(handler.CheckRole))).Methods("GET")
	return router
}

func TestCheckRoleEmailMismatch(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	handler := NewUserHandler(newFakeUserStore(), tokens)
	router := checkRoleRouter(handler, tokens)

	token, err := tokens.Issue("someoneelse@x.com", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/users/admin/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var reply map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	if reply["admin"] {
		t.Fatalf("expected admin:false for a mismatched email")
	}
}

func TestCheckRoleUnsetRoleIsEmpty(t *testing.T) {
	store := newFakeUserStore()
	store.users["a@x.com"] = models.User{ID: primitive.NewObjectID(), Email: "a@x.com", Name: "Ava"}
	tokens := auth.NewTokenService("test-secret")
	router := checkRoleRouter(NewUserHandler(store, tokens), tokens)

	token, err := tokens.Issue("a@x.com", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/users/admin/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "" {
		t.Fatalf("a user without a role must get an empty body, got %q", body)
	}
}

func TestCheckRoleReturnsStoredRole(t *testing.T) {
	store := newFakeUserStore()
	store.users["a@x.com"] = models.User{ID: primitive.NewObjectID(), Email: "a@x.com", Name: "Ava", Role: models.RoleInstructor}
	tokens := auth.NewTokenService("test-secret")
	router := checkRoleRouter(NewUserHandler(store, tokens), tokens)

	token, err := tokens.Issue("a@x.com", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/users/admin/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if body := rec.Body.String(); body != "instructor" {
		t.Fatalf("expected the bare role text back, got %q", body)
	}
}

func TestSetRoleByID(t *testing.T) {
	store := newFakeUserStore()
	id := primitive.NewObjectID()
	store.users["a@x.com"] = models.User{ID: id, Email: "a@x.com", Name: "Ava"}
	handler := NewUserHandler(store, nil)

	req := mux.SetURLVars(httptest.NewRequest("PATCH", "/users/admin/"+id.Hex(), nil), map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()
	handler.MakeAdmin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.users["a@x.com"].Role != models.RoleAdmin {
		t.Fatalf("expected role admin, got %q", store.users["a@x.com"].Role)
	}
}

func TestSetRoleRejectsBadID(t *testing.T) {
	handler := NewUserHandler(newFakeUserStore(), nil)

	// wrong length, and right length but not hex
	for _, id := range []string{"nothex", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		req := mux.SetURLVars(httptest.NewRequest("PATCH", "/users/admin/"+id, nil), map[string]string{"id": id})
		rec := httptest.NewRecorder()
		handler.MakeAdmin(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400 for a malformed id, got %d", id, rec.Code)
		}
	}
}
