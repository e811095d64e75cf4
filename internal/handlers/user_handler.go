package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monirul480/Language-club-serversite/internal/auth"
	"github.com/Monirul480/Language-club-serversite/internal/middleware"
	"github.com/Monirul480/Language-club-serversite/internal/models"
	"github.com/Monirul480/Language-club-serversite/internal/utils"
)

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]models.User, error)
	Instructors(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id string, role models.UserRole) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type UserHandler struct {
	store  userStore
	tokens *auth.TokenService
}

func NewUserHandler(store userStore, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{store: store, tokens: tokens}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs a bearer token for whatever identity the client claims.
// The token only proves the email; privilege is checked against the store
// on each request.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "A valid email is required", http.StatusBadRequest)
		return
	}

	token, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// CreateUser registers a user on first login. Registration is idempotent: a
// second call with the same email reports existence instead of erroring.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(newUser); err != nil {
		http.Error(w, "A valid email is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	existing, err := h.store.FindByEmail(ctx, newUser.Email)
	if err != nil {
		slog.Error("failed to check existing user", "email", newUser.Email, "error", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
		return
	}

	result, err := h.store.Insert(ctx, newUser)
	if err != nil {
		slog.Error("failed to insert user", "email", newUser.Email, "error", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	users, err := h.store.All(ctx)
	if err != nil {
		slog.Error("failed to fetch users", "error", err)
		http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	users, err := h.store.Instructors(ctx)
	if err != nil {
		slog.Error("failed to fetch instructors", "error", err)
		http.Error(w, "Failed to fetch instructors", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

// CheckRole answers the stored role for the caller's own email. A mismatch
// between the token email and the path email is answered with {admin:false}
// rather than an error; an account with no role yet gets an empty body.
func (h *UserHandler) CheckRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.Email != email {
		utils.WriteJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.store.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to resolve role", "email", email, "error", err)
		http.Error(w, "Failed to resolve role", http.StatusInternalServerError)
		return
	}

	if user == nil || user.Role == models.RoleUnset {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Bare text, not a JSON string: the frontend compares the raw body
	// against "admin"/"instructor"/"student".
	w.Write([]byte(user.Role))
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, models.RoleAdmin)
}

func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, models.RoleInstructor)
}

func (h *UserHandler) setRole(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.SetRole(ctx, id, role)
	if err != nil {
		slog.Error("failed to update role", "id", id, "role", role, "error", err)
		writeStoreError(w, err, "Failed to update role")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.Delete(ctx, id)
	if err != nil {
		slog.Error("failed to delete user", "id", id, "error", err)
		writeStoreError(w, err, "Failed to delete user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
