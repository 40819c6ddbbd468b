package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// The thirteen collections all ride the same CRUD contract, so scheduled
// posts stand in for the lot; routes_test covers the per-entity strings.

func TestCreateScheduledPost(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectExec(`INSERT INTO public\.scheduled_posts \(id, user_id, doc\)`).
		WithArgs(sqlmock.AnyArg(), "u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"userId":"u1","content":"hello","platform":"Twitter","scheduledTime":"2026-09-01T10:00:00Z"}`
	rec := doRequest(r, "POST", "/api/scheduled-post", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	got := decodeBody(t, rec)
	if got["id"] == "" || got["id"] == nil {
		t.Fatalf("expected assigned id, got %v", got)
	}
	if got["status"] != "Scheduled" {
		t.Fatalf("expected default status Scheduled, got %v", got["status"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestCreateScheduledPost_InvalidPlatformNeverHitsStore(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	body := `{"userId":"u1","content":"hello","platform":"MySpace","scheduledTime":"2026-09-01T10:00:00Z"}`
	rec := doRequest(r, "POST", "/api/scheduled-post", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store must not be touched on validation failure: %v", err)
	}
}

func TestGetScheduledPost_NotFound(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`SELECT doc FROM public\.scheduled_posts WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	rec := doRequest(r, "GET", "/api/scheduled-post/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Scheduled post not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListScheduledPostsByOwner_EmptyIsNotFound(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`SELECT doc FROM public\.scheduled_posts WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	rec := doRequest(r, "GET", "/api/scheduled-post/user/u1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "No scheduled posts found for this user" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListScheduledPostsByOwner(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	doc := `{"id":"p1","userId":"u1","content":"hello","platform":"Twitter","scheduledTime":"2026-09-01T10:00:00Z","status":"Scheduled"}`
	mock.ExpectQuery(`SELECT doc FROM public\.scheduled_posts WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(doc)))

	rec := doRequest(r, "GET", "/api/scheduled-post/user/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateScheduledPost_MergesPatch(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	stored := `{"id":"p1","userId":"u1","content":"hello","platform":"Twitter","scheduledTime":"2026-09-01T10:00:00Z","status":"Scheduled"}`
	mock.ExpectQuery(`SELECT doc FROM public\.scheduled_posts WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(stored)))
	mock.ExpectExec(`UPDATE public\.scheduled_posts SET user_id = \$2, doc = \$3 WHERE id = \$1`).
		WithArgs("p1", "u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(r, "PUT", "/api/scheduled-post/p1", `{"status":"Posted"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got := decodeBody(t, rec)
	if got["status"] != "Posted" {
		t.Fatalf("expected merged status Posted, got %v", got["status"])
	}
	if got["content"] != "hello" {
		t.Fatalf("merge must keep untouched fields, got %v", got["content"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestUpdateScheduledPost_IDIsImmutable(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	stored := `{"id":"p1","userId":"u1","content":"hello","platform":"Twitter","scheduledTime":"2026-09-01T10:00:00Z","status":"Scheduled"}`
	mock.ExpectQuery(`SELECT doc FROM public\.scheduled_posts WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(stored)))
	mock.ExpectExec(`UPDATE public\.scheduled_posts`).
		WithArgs("p1", "u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(r, "PUT", "/api/scheduled-post/p1", `{"id":"evil","status":"Posted"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec); got["id"] != "p1" {
		t.Fatalf("identifier must not change, got %v", got["id"])
	}
}

func TestDeleteScheduledPost(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectExec(`DELETE FROM public\.scheduled_posts WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(r, "DELETE", "/api/scheduled-post/p1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Scheduled post deleted successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestDeleteScheduledPost_NotFound(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectExec(`DELETE FROM public\.scheduled_posts WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rec := doRequest(r, "DELETE", "/api/scheduled-post/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	r, _, _ := newTestAPI(t)

	rec := doRequest(r, "GET", "/api/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCreateGoal_RequiresTargetValue(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	rec := doRequest(r, "POST", "/api/goal", `{"userId":"u1","metric":"followers"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store must not be touched on validation failure: %v", err)
	}
}

var errBoom = errors.New("boom")

func TestListScheduledPosts_StoreFailureIs500(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`SELECT doc FROM public\.scheduled_posts ORDER BY created_at`).
		WillReturnError(errBoom)

	rec := doRequest(r, "GET", "/api/scheduled-post", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
