package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Monirul480/Language-club-serversite/internal/models"
	"github.com/Monirul480/Language-club-serversite/internal/utils"
)

type classStore interface {
	Insert(ctx context.Context, class models.Class) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]models.Class, error)
	Active(ctx context.Context) ([]models.Class, error)
	ByInstructor(ctx context.Context, email string) ([]models.Class, error)
	DecrementSeat(ctx context.Context, id string) (*mongo.UpdateResult, error)
	SetStatus(ctx context.Context, id string, status models.ClassStatus) (*mongo.UpdateResult, error)
	SetFeedback(ctx context.Context, id string, text string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type ClassHandler struct {
	store classStore
}

func NewClassHandler(store classStore) *ClassHandler {
	return &ClassHandler{store: store}
}

func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var newClass models.Class
	if err := json.NewDecoder(r.Body).Decode(&newClass); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(newClass); err != nil {
		http.Error(w, "Class name and instructor email are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.Insert(ctx, newClass)
	if err != nil {
		slog.Error("failed to insert class", "name", newClass.Name, "error", err)
		http.Error(w, "Failed to create class", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *ClassHandler) GetAllClasses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	classes, err := h.store.All(ctx)
	if err != nil {
		slog.Error("failed to fetch classes", "error", err)
		http.Error(w, "Failed to fetch classes", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, classes)
}

func (h *ClassHandler) GetActiveClasses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	classes, err := h.store.Active(ctx)
	if err != nil {
		slog.Error("failed to fetch active classes", "error", err)
		http.Error(w, "Failed to fetch classes", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, classes)
}

func (h *ClassHandler) GetInstructorClasses(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	classes, err := h.store.ByInstructor(ctx, email)
	if err != nil {
		slog.Error("failed to fetch instructor classes", "email", email, "error", err)
		http.Error(w, "Failed to fetch classes", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, classes)
}

// DecrementSeat takes one seat off a class when a student enrolls. The
// store applies the delta atomically per document; nothing here guards
// against the counter going negative.
func (h *ClassHandler) DecrementSeat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.DecrementSeat(ctx, id)
	if err != nil {
		slog.Error("failed to decrement seats", "id", id, "error", err)
		writeStoreError(w, err, "Failed to update seats")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *ClassHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ClassActive)
}

func (h *ClassHandler) SetPending(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.ClassPending)
}

func (h *ClassHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.ClassStatus) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.SetStatus(ctx, id, status)
	if err != nil {
		slog.Error("failed to update class status", "id", id, "status", status, "error", err)
		writeStoreError(w, err, "Failed to update status")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

type feedbackRequest struct {
	Text string `json:"text"`
}

func (h *ClassHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.SetFeedback(ctx, id, req.Text)
	if err != nil {
		slog.Error("failed to update feedback", "id", id, "error", err)
		writeStoreError(w, err, "Failed to update feedback")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.Delete(ctx, id)
	if err != nil {
		slog.Error("failed to delete class", "id", id, "error", err)
		writeStoreError(w, err, "Failed to delete class")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
