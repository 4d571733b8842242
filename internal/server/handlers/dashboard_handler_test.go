package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eletropro/app-core/internal/domain/models"
	"github.com/eletropro/app-core/internal/service/auth"
	"github.com/eletropro/app-core/pkg/clients/eletropro"
)

type fakeBudgets struct {
	list func(f models.ListFilters) ([]models.Budget, error)
	get  func(id string) (models.Budget, error)
}

func (f *fakeBudgets) List(_ context.Context, filters models.ListFilters) ([]models.Budget, error) {
	return f.list(filters)
}
func (f *fakeBudgets) Get(_ context.Context, id string) (models.Budget, error) { return f.get(id) }
func (f *fakeBudgets) Summary(b models.Budget) models.Summary {
	return models.Summary{TotalItems: len(b.Items), TotalValue: b.TotalValue}
}

type fakeLists struct {
	list func(f models.ListFilters) ([]models.MaterialList, error)
	get  func(id string) (models.MaterialList, error)
}

func (f *fakeLists) List(_ context.Context, filters models.ListFilters) ([]models.MaterialList, error) {
	return f.list(filters)
}
func (f *fakeLists) Get(_ context.Context, id string) (models.MaterialList, error) {
	return f.get(id)
}
func (f *fakeLists) Summary(l models.MaterialList) models.Summary {
	return models.Summary{TotalItems: len(l.Items), TotalValue: l.TotalValue}
}

type fakeAuth struct {
	login   func(email, password string) (models.UserProfile, error)
	profile func() (models.UserProfile, error)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (models.UserProfile, error) {
	return f.login(email, password)
}
func (f *fakeAuth) Logout(context.Context) error { return nil }
func (f *fakeAuth) Profile(context.Context) (models.UserProfile, error) {
	return f.profile()
}

func newTestRouter(budgets *fakeBudgets, lists *fakeLists, a *fakeAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	dashboard := NewDashboardHandler(budgets, lists, nil)
	r.GET("/budgets", dashboard.ListBudgets)
	r.GET("/budgets/:id", dashboard.GetBudget)
	r.GET("/material-lists", dashboard.ListMaterialLists)
	r.GET("/material-lists/:id", dashboard.GetMaterialList)

	if a != nil {
		session := NewSessionHandler(a, nil)
		r.POST("/session", session.Login)
		r.GET("/session", session.Profile)
	}
	return r
}

func TestListBudgets(t *testing.T) {
	t.Run("query parameters become filters", func(t *testing.T) {
		budgets := &fakeBudgets{list: func(f models.ListFilters) ([]models.Budget, error) {
			if f.ClientID != "c-1" || f.Status != models.StatusApproved {
				t.Fatalf("unexpected filters %+v", f)
			}
			return []models.Budget{{ID: "b-1", ClientID: "c-1"}}, nil
		}}
		r := newTestRouter(budgets, &fakeLists{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/budgets?clientId=c-1&status=APPROVED", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var out []models.Budget
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out) != 1 || out[0].ID != "b-1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("remote failure maps to 502", func(t *testing.T) {
		budgets := &fakeBudgets{list: func(models.ListFilters) ([]models.Budget, error) {
			return nil, &eletropro.RemoteError{Op: "load budgets", StatusCode: 500, Message: "backend down"}
		}}
		r := newTestRouter(budgets, &fakeLists{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("expired session maps to 401", func(t *testing.T) {
		budgets := &fakeBudgets{list: func(models.ListFilters) ([]models.Budget, error) {
			return nil, eletropro.ErrSessionExpired
		}}
		r := newTestRouter(budgets, &fakeLists{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestGetBudget(t *testing.T) {
	t.Run("detail carries summary and effective status", func(t *testing.T) {
		budgets := &fakeBudgets{get: func(id string) (models.Budget, error) {
			if id != "b-1" {
				t.Fatalf("unexpected id %q", id)
			}
			return models.Budget{ID: "b-1", Status: models.StatusPending, TotalValue: 50,
				Items: []models.BudgetItem{{Name: "Socket"}}}, nil
		}}
		r := newTestRouter(budgets, &fakeLists{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets/b-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out struct {
			EffectiveStatus models.Status  `json:"effectiveStatus"`
			Summary         models.Summary `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.EffectiveStatus != models.StatusPending {
			t.Fatalf("unexpected effective status %s", out.EffectiveStatus)
		}
		if out.Summary.TotalItems != 1 || out.Summary.TotalValue != 50 {
			t.Fatalf("unexpected summary %+v", out.Summary)
		}
	})

	t.Run("pending budget past its deadline renders as expired", func(t *testing.T) {
		deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		budgets := &fakeBudgets{get: func(string) (models.Budget, error) {
			return models.Budget{ID: "b-1", Status: models.StatusPending, ValidUntil: &deadline}, nil
		}}

		gin.SetMode(gin.TestMode)
		r := gin.New()
		dashboard := NewDashboardHandler(budgets, &fakeLists{}, nil)
		dashboard.now = func() time.Time { return deadline.Add(24 * time.Hour) }
		r.GET("/budgets/:id", dashboard.GetBudget)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets/b-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out struct {
			EffectiveStatus models.Status `json:"effectiveStatus"`
			Budget          models.Budget `json:"budget"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.EffectiveStatus != models.StatusExpired {
			t.Fatalf("expected EXPIRED, got %s", out.EffectiveStatus)
		}
		if out.Budget.Status != models.StatusPending {
			t.Fatalf("stored status must stay PENDING, got %s", out.Budget.Status)
		}
	})

	t.Run("missing budget maps to 404", func(t *testing.T) {
		budgets := &fakeBudgets{get: func(string) (models.Budget, error) {
			return models.Budget{}, eletropro.ErrNotFound
		}}
		r := newTestRouter(budgets, &fakeLists{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budgets/nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSessionEndpoints(t *testing.T) {
	t.Run("login success returns the profile", func(t *testing.T) {
		a := &fakeAuth{login: func(email, password string) (models.UserProfile, error) {
			return models.UserProfile{ID: "u-1", Email: email}, nil
		}}
		r := newTestRouter(&fakeBudgets{}, &fakeLists{}, a)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/session",
			strings.NewReader(`{"email":"ana@example.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var profile models.UserProfile
		if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if profile.ID != "u-1" {
			t.Fatalf("unexpected profile %+v", profile)
		}
	})

	t.Run("blank credentials map to 400", func(t *testing.T) {
		a := &fakeAuth{login: func(string, string) (models.UserProfile, error) {
			return models.UserProfile{}, auth.ErrMissingCredentials
		}}
		r := newTestRouter(&fakeBudgets{}, &fakeLists{}, a)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(`{"email":"","password":""}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("profile without session maps to 401", func(t *testing.T) {
		a := &fakeAuth{profile: func() (models.UserProfile, error) {
			return models.UserProfile{}, eletropro.ErrNotAuthenticated
		}}
		r := newTestRouter(&fakeBudgets{}, &fakeLists{}, a)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
