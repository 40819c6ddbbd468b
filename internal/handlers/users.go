package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/brandwave/social-backend/internal/models"
)

// CreateUser creates a user through the authenticated CRUD surface (as
// opposed to Register). The password is hashed before it reaches the store.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		user.Password = string(hash)
	}

	stored, err := h.users.Create(r.Context(), &user)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), pathVar(r, "id"))
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUser merges the request body into the stored user. A password in
// the patch is re-hashed so the plaintext is never persisted.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	patch := make(map[string]any)
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if pw, ok := patch["password"].(string); ok && pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		patch["password"] = string(hash)
	}

	user, err := h.users.UpdateByID(r.Context(), pathVar(r, "id"), patch)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser hard-deletes the user. Documents owned by the user are left in
// place; references are by identifier only and never cascaded.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteByID(r.Context(), pathVar(r, "id")); err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
