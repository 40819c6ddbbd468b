package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brandwave/social-backend/internal/models"
)

// Document is the contract every stored entity satisfies. Identifiers are
// assigned by the store on insert and immutable afterwards.
type Document interface {
	DocID() string
	SetDocID(id string)
	// Owner returns the owning user id, or "" for unowned entities.
	Owner() string
	// SetDefaults fills schema defaults (timestamps, initial status) on insert.
	SetDefaults(now time.Time)
	Validate() error
}

// Collection is the generic CRUD contract applied to each entity table.
// Rows are stored as (id, user_id, doc jsonb, created_at); the jsonb document
// is authoritative, the id/user_id columns exist for lookups.
type Collection[T Document] struct {
	db     *sql.DB
	table  string
	newDoc func() T
}

func NewCollection[T Document](db *sql.DB, table string, newDoc func() T) *Collection[T] {
	return &Collection[T]{db: db, table: table, newDoc: newDoc}
}

// NewDoc returns a fresh zero document for decoding request payloads into.
func (c *Collection[T]) NewDoc() T { return c.newDoc() }

// ownerArg maps an empty owner to SQL NULL so unowned documents never match
// an owner query.
func ownerArg(owner string) any {
	if owner == "" {
		return nil
	}
	return owner
}

// Insert assigns an identifier, applies defaults, validates and stores doc.
func (c *Collection[T]) Insert(ctx context.Context, doc T) (T, error) {
	var zero T

	doc.SetDocID(uuid.NewString())
	doc.SetDefaults(time.Now().UTC())
	if err := doc.Validate(); err != nil {
		return zero, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return zero, err
	}

	query := fmt.Sprintf(`INSERT INTO public.%s (id, user_id, doc) VALUES ($1, $2, $3)`, c.table)
	if _, err := c.db.ExecContext(ctx, query, doc.DocID(), ownerArg(doc.Owner()), raw); err != nil {
		return zero, err
	}
	return doc, nil
}

// FindAll returns every document in the collection, unfiltered and unpaginated.
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT doc FROM public.%s ORDER BY created_at`, c.table)
	return c.queryDocs(ctx, query)
}

// FindByOwner returns every document whose user_id matches. An empty result
// is not an error here; handlers decide how to surface it.
func (c *Collection[T]) FindByOwner(ctx context.Context, userID string) ([]T, error) {
	query := fmt.Sprintf(`SELECT doc FROM public.%s WHERE user_id = $1 ORDER BY created_at`, c.table)
	return c.queryDocs(ctx, query, userID)
}

func (c *Collection[T]) queryDocs(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		doc := c.newDoc()
		if err := json.Unmarshal(raw, doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T

	query := fmt.Sprintf(`SELECT doc FROM public.%s WHERE id = $1`, c.table)
	var raw []byte
	err := c.db.QueryRowContext(ctx, query, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, err
	}

	doc := c.newDoc()
	if err := json.Unmarshal(raw, doc); err != nil {
		return zero, err
	}
	return doc, nil
}

// UpdateByID merges patch into the stored document field-by-field (shallow,
// like a document-store $set), re-validates the merged result and writes it
// back. The identifier cannot be changed. The read-merge-write sequence is
// not atomic; concurrent updates to the same document are last-writer-wins.
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T

	current, err := c.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(current)
	if err != nil {
		return zero, err
	}
	merged := make(map[string]any)
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		merged[k] = v
	}
	merged["id"] = id

	buf, err := json.Marshal(merged)
	if err != nil {
		return zero, err
	}
	doc := c.newDoc()
	if err := json.Unmarshal(buf, doc); err != nil {
		// A type mismatch in the patch (e.g. a string where a number belongs)
		// is a schema violation, not a store fault.
		return zero, &models.ValidationError{Msg: err.Error()}
	}
	if err := doc.Validate(); err != nil {
		return zero, err
	}

	clean, err := json.Marshal(doc)
	if err != nil {
		return zero, err
	}
	query := fmt.Sprintf(`UPDATE public.%s SET user_id = $2, doc = $3 WHERE id = $1`, c.table)
	res, err := c.db.ExecContext(ctx, query, id, ownerArg(doc.Owner()), clean)
	if err != nil {
		return zero, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return zero, ErrNotFound
	}
	return doc, nil
}

// DeleteByID permanently removes the document. There is no soft delete and
// no cascade to documents referencing the deleted one.
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM public.%s WHERE id = $1`, c.table)
	res, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
