// Package handlers implements the HTTP surface. Handlers depend on small
// store interfaces so the Mongo layer can be swapped for in-memory fakes in
// tests; the real implementations live in internal/store.
package handlers

import (
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const storeTimeout = 5 * time.Second

var validate = validator.New()

func writeStoreError(w http.ResponseWriter, err error, message string) {
	// ObjectIDFromHex reports a wrong-length id as ErrInvalidHex but a
	// right-length non-hex id as a hex decode error; both are caller faults.
	var hexErr hex.InvalidByteError
	if errors.Is(err, primitive.ErrInvalidHex) || errors.As(err, &hexErr) {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	http.Error(w, message, http.StatusInternalServerError)
}
