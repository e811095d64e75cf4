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

type orderStore interface {
	Insert(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error)
	ByEmailAndPayment(ctx context.Context, email string, money models.PaymentStatus) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	MarkPaid(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// ReceiptSender mails a confirmation for a paid order. Sending is
// best-effort; failures are logged and never fail the request.
type ReceiptSender interface {
	SendReceipt(order models.Order) error
}

type OrderHandler struct {
	store    orderStore
	receipts ReceiptSender
}

// NewOrderHandler wires an order store and an optional receipt sender; pass
// nil to disable receipts.
func NewOrderHandler(store orderStore, receipts ReceiptSender) *OrderHandler {
	return &OrderHandler{store: store, receipts: receipts}
}

// CreateOrder inserts the order as the caller sent it. The payment marker
// comes from the payload; the frontend sends unPaid on selection.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var newOrder models.Order
	if err := json.NewDecoder(r.Body).Decode(&newOrder); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(newOrder); err != nil {
		http.Error(w, "Email and class are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.Insert(ctx, newOrder)
	if err != nil {
		slog.Error("failed to insert order", "email", newOrder.Email, "error", err)
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *OrderHandler) GetUnpaidOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, models.PaymentUnpaid)
}

func (h *OrderHandler) GetPaidOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, models.PaymentPaid)
}

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request, money models.PaymentStatus) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	orders, err := h.store.ByEmailAndPayment(ctx, email, money)
	if err != nil {
		slog.Error("failed to fetch orders", "email", email, "money", money, "error", err)
		http.Error(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}

// MarkPaid sets the payment marker to paid. Repeating the call leaves the
// order in the same terminal state.
func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.MarkPaid(ctx, id)
	if err != nil {
		slog.Error("failed to mark order paid", "id", id, "error", err)
		writeStoreError(w, err, "Failed to update order")
		return
	}

	// ModifiedCount, not MatchedCount: re-marking an already-paid order is
	// a no-op and must not resend the receipt.
	if h.receipts != nil && result.ModifiedCount > 0 {
		if order, ferr := h.store.FindByID(ctx, id); ferr == nil && order != nil {
			paid := *order
			go func() {
				if err := h.receipts.SendReceipt(paid); err != nil {
					slog.Error("failed to send payment receipt", "id", paid.ID.Hex(), "error", err)
				}
			}()
		}
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	result, err := h.store.Delete(ctx, id)
	if err != nil {
		slog.Error("failed to delete order", "id", id, "error", err)
		writeStoreError(w, err, "Failed to delete order")
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}
