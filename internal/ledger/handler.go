package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"financial-backend/internal/models"
	"financial-backend/internal/store"
)

// Store defines the interface for ledger persistence.
type Store interface {
	UserExists(ctx context.Context, id int64) (bool, error)
	InsertTransaction(ctx context.Context, t *models.Transaction) (int64, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, upd *models.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id int64) error
}

// Handler holds transaction CRUD handlers.
type Handler struct {
	store Store
}

func NewHandler(s Store) *Handler {
	return &Handler{store: s}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Create inserts a new transaction after checking the referenced user
// exists. A body without user_id books the row against the default
// account. transaction_type is not validated here, only on update,
// matching the existing API behavior.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	userID := models.DefaultUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	exists, err := h.store.UserExists(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !exists {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}

	id, err := h.store.InsertTransaction(r.Context(), &models.Transaction{
		UserID:          userID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":        "Transaction added",
		"transaction_id": id,
	})
}

// List returns every transaction in the ledger.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.store.ListTransactions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

// Update overwrites all five mutable fields of a transaction.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}

	var req models.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if !models.ValidTransactionType(req.TransactionType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid transaction type. It must be either 'income' or 'expense'.",
		})
		return
	}

	err = h.store.UpdateTransaction(r.Context(), id, &req)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Transaction not found or unchanged"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction updated"})
}

// Delete removes a transaction.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}

	err = h.store.DeleteTransaction(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Transaction not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}
