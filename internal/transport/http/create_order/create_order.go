package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/geekshirt/order-service/internal/apperrors"
	"github.com/geekshirt/order-service/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, req order.Request) (order.Order, error)
}

// CreateOrder handles the order-creation request and maps each workflow
// error kind to its response code.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req order.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), req)
	if err != nil {
		status := statusForError(err)
		http.Error(w, err.Error(), status)
		if status == http.StatusInternalServerError {
			slog.Error("Error creating order", "error", err)
		} else {
			slog.Info("Order request rejected", "account_id", req.AccountID, "reason", err.Error())
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error writing response for create order", "error", err)
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrIncorrectRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrPaymentNotAccepted):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
