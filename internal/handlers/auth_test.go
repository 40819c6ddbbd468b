package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandwave/social-backend/internal/auth"
)

// newTestAPI builds a router backed by sqlmock, ready for httptest requests.
func newTestAPI(t *testing.T) (*mux.Router, sqlmock.Sqlmock, *auth.TokenManager) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokenManager("test-secret", 0)
	r := mux.NewRouter()
	RegisterRoutes(r, New(db, tokens))
	return r, mock, tokens
}

func doRequest(r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := make(map[string]any)
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	r, mock, tokens := newTestAPI(t)

	mock.ExpectQuery(`SELECT doc FROM public\.users WHERE email = \$1`).
		WithArgs("new@x.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO public\.users`).
		WithArgs(sqlmock.AnyArg(), "new@x.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(r, "POST", "/api/user/register", `{"email":"new@x.com","password":"hunter2"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected a token in the response, got %v", body)
	}
	if _, err := tokens.Verify(token); err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`SELECT doc FROM public\.users WHERE email = \$1`).
		WithArgs("taken@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).
			AddRow([]byte(`{"id":"u1","email":"taken@x.com","password":"hash","socialProfiles":[]}`)))

	rec := doRequest(r, "POST", "/api/user/register", `{"email":"taken@x.com","password":"hunter2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "User already exists" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	r, _, _ := newTestAPI(t)

	rec := doRequest(r, "POST", "/api/user/register", `{"email":"only@x.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	r, mock, tokens := newTestAPI(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	doc := `{"id":"u1","email":"a@x.com","password":` + mustJSON(t, string(hash)) + `,"socialProfiles":[]}`
	mock.ExpectQuery(`SELECT doc FROM public\.users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(doc)))

	rec := doRequest(r, "POST", "/api/user/login", `{"email":"a@x.com","password":"hunter2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	token, _ := decodeBody(t, rec)["token"].(string)
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("token subject = %q, want u1", userID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	doc := `{"id":"u1","email":"a@x.com","password":` + mustJSON(t, string(hash)) + `,"socialProfiles":[]}`
	mock.ExpectQuery(`SELECT doc FROM public\.users WHERE email = \$1`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(doc)))

	rec := doRequest(r, "POST", "/api/user/login", `{"email":"a@x.com","password":"wrong"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid email or password" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_UnknownEmail_SameResponseAsWrongPassword(t *testing.T) {
	r, mock, _ := newTestAPI(t)

	mock.ExpectQuery(`SELECT doc FROM public\.users WHERE email = \$1`).
		WithArgs("ghost@x.com").
		WillReturnError(sql.ErrNoRows)

	rec := doRequest(r, "POST", "/api/user/login", `{"email":"ghost@x.com","password":"hunter2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid email or password" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestLogin_MalformedJSON(t *testing.T) {
	r, _, _ := newTestAPI(t)

	rec := doRequest(r, "POST", "/api/user/login", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}
