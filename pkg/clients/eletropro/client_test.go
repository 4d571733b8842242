package eletropro

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eletropro/app-core/internal/domain/models"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token(context.Context) (string, error) { return f.token, nil }
func (f *fakeTokens) Clear(context.Context) error           { f.cleared = true; return nil }

func newTestClient(t *testing.T, tokens *fakeTokens, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, tokens, nil)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	tokens := &fakeTokens{token: "tok-123"}
	client := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected auth header %q", got)
		}
		if r.URL.Path != "/budgets" || r.URL.Query().Get("status") != "PENDING" {
			t.Fatalf("unexpected request %s %s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Budget{{ID: "b-1", Name: "Rewiring"}})
	})

	budgets, err := client.ListBudgets(context.Background(), models.ListFilters{Status: models.StatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets) != 1 || budgets[0].ID != "b-1" {
		t.Fatalf("unexpected budgets %+v", budgets)
	}
}

func TestDo_NoTokenShortCircuits(t *testing.T) {
	called := false
	client := newTestClient(t, &fakeTokens{}, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.GetBudget(context.Background(), "b-1")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if called {
		t.Fatal("no request must be sent without a token")
	}
}

func TestDo_UnauthorizedPurgesSession(t *testing.T) {
	tokens := &fakeTokens{token: "tok-stale"}
	client := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListBudgets(context.Background(), models.ListFilters{})
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if !tokens.cleared {
		t.Fatal("expected the session to be purged after a 401")
	}
}

func TestDo_NotFound(t *testing.T) {
	client := newTestClient(t, &fakeTokens{token: "tok-123"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetBudget(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDo_RemoteErrorCarriesBackendMessage(t *testing.T) {
	client := newTestClient(t, &fakeTokens{token: "tok-123"}, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "quantity must be positive"})
	})

	_, err := client.CreateBudget(context.Background(), BudgetInput{Name: "x", ClientID: "c-1"})
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.StatusCode != http.StatusUnprocessableEntity || re.Message != "quantity must be positive" {
		t.Fatalf("unexpected RemoteError %+v", re)
	}
	if re.Op != "create budget" {
		t.Fatalf("unexpected op %q", re.Op)
	}
}

func TestDo_TransportFailure(t *testing.T) {
	tokens := &fakeTokens{token: "tok-123"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(Config{BaseURL: srv.URL}, tokens, nil)

	_, err := client.ListBudgets(context.Background(), models.ListFilters{})
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.StatusCode != 0 {
		t.Fatalf("transport failures carry no status, got %d", re.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	t.Run("success decodes the session without a token", func(t *testing.T) {
		client := newTestClient(t, &fakeTokens{}, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "" {
				t.Fatalf("login must not send a bearer token, got %q", got)
			}
			var req LoginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.Email != "ana@example.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.Session{
				Token: "tok-fresh",
				User:  models.UserProfile{ID: "u-1", Email: req.Email},
			})
		})

		session, err := client.Login(context.Background(), "ana@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Token != "tok-fresh" || session.User.ID != "u-1" {
			t.Fatalf("unexpected session %+v", session)
		}
	})

	t.Run("bad credentials do not purge the local session", func(t *testing.T) {
		tokens := &fakeTokens{token: "tok-kept"}
		client := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Login(context.Background(), "ana@example.com", "wrong")
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
		if tokens.cleared {
			t.Fatal("a login rejection must not purge the stored session")
		}
	})
}
