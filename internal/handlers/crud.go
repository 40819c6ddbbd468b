package handlers

import (
	"net/http"

	"github.com/brandwave/social-backend/internal/store"
)

// entityMessages carries the per-entity response strings; everything else
// about the CRUD contract is identical across the thirteen collections.
type entityMessages struct {
	notFound   string // e.g. "Scheduled post not found"
	emptyOwner string // e.g. "No scheduled posts found for this user"
	deleted    string // e.g. "Scheduled post deleted successfully"
}

// createDoc handles POST /api/<entity>: validate, insert, echo with id.
func createDoc[T store.Document](col *store.Collection[T], msg entityMessages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := col.NewDoc()
		if err := decodeJSON(r, doc); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		stored, err := col.Insert(r.Context(), doc)
		if err != nil {
			writeStoreError(w, err, msg.notFound)
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	}
}

// listDocs handles GET /api/<entity>: every record, unfiltered.
func listDocs[T store.Document](col *store.Collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := col.FindAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

// listDocsByOwner handles GET /api/<entity>/user/{userId}. An owner with
// zero records gets a 404, indistinguishable from an unknown owner.
func listDocsByOwner[T store.Document](col *store.Collection[T], msg entityMessages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := col.FindByOwner(r.Context(), pathVar(r, "userId"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(docs) == 0 {
			writeError(w, http.StatusNotFound, msg.emptyOwner)
			return
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func getDoc[T store.Document](col *store.Collection[T], msg entityMessages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := col.FindByID(r.Context(), pathVar(r, "id"))
		if err != nil {
			writeStoreError(w, err, msg.notFound)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

// updateDoc handles PUT /api/<entity>/{id}: shallow field merge, identifier
// immutable, merged result re-validated.
func updateDoc[T store.Document](col *store.Collection[T], msg entityMessages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch := make(map[string]any)
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		doc, err := col.UpdateByID(r.Context(), pathVar(r, "id"), patch)
		if err != nil {
			writeStoreError(w, err, msg.notFound)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func deleteDoc[T store.Document](col *store.Collection[T], msg entityMessages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := col.DeleteByID(r.Context(), pathVar(r, "id")); err != nil {
			writeStoreError(w, err, msg.notFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": msg.deleted})
	}
}
