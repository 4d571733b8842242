// Package budget orchestrates budget reads and writes: remote calls through
// the backend client, read-through caching with stale fallback, mandatory
// validation before any create, and the status reversion rule for decided
// budgets.
package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/cache"
	"github.com/eletropro/app-core/internal/domain/models"
	"github.com/eletropro/app-core/internal/domain/validation"
	"github.com/eletropro/app-core/pkg/clients/eletropro"
)

const resource = "budgets"

// ErrInvalidStatus is returned when a status transition targets anything
// other than PENDING, APPROVED or REJECTED. EXPIRED is derived locally and
// never written to the backend.
var ErrInvalidStatus = errors.New("invalid status transition")

// API is the slice of the backend client this service needs.
type API interface {
	ListBudgets(ctx context.Context, f models.ListFilters) ([]models.Budget, error)
	GetBudget(ctx context.Context, id string) (models.Budget, error)
	CreateBudget(ctx context.Context, in eletropro.BudgetInput) (models.Budget, error)
	UpdateBudget(ctx context.Context, id string, in eletropro.BudgetUpdate) (models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	UpdateBudgetStatus(ctx context.Context, id string, status models.Status) (models.Budget, error)
	ApplyBudgetDiscount(ctx context.Context, id string, in eletropro.DiscountInput) (models.Budget, error)
	RemoveBudgetDiscount(ctx context.Context, id string) (models.Budget, error)
	AddBudgetItem(ctx context.Context, id string, in eletropro.BudgetItemInput) (models.Budget, error)
	UpdateBudgetItem(ctx context.Context, id, itemID string, in eletropro.BudgetItemInput) (models.Budget, error)
	RemoveBudgetItem(ctx context.Context, id, itemID string) (models.Budget, error)
}

// Service exposes budget operations to UI surfaces.
type Service struct {
	api    API
	cache  cache.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a budget service.
func NewService(api API, store cache.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, cache: store, logger: logger, now: time.Now}
}

// List returns budgets matching the filters. A valid cached entry is served
// without a remote call; on a remote failure any cached entry, stale or not,
// is served before the error is allowed to surface.
func (s *Service) List(ctx context.Context, f models.ListFilters) ([]models.Budget, error) {
	key := cache.ListKey(resource, f)

	var cached []models.Budget
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	budgets, err := s.api.ListBudgets(ctx, f)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale budget list after remote failure", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}

	// Defend against backends that ignore the clientId filter.
	if f.ClientID != "" {
		budgets = filterByClient(budgets, f.ClientID)
	}

	s.writeCache(ctx, key, budgets)
	return budgets, nil
}

// Get returns one budget with items populated, read-through like List.
func (s *Service) Get(ctx context.Context, id string) (models.Budget, error) {
	key := cache.DetailKey(resource, id)

	var cached models.Budget
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	b, err := s.api.GetBudget(ctx, id)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale budget after remote failure", zap.String("budget_id", id), zap.Error(err))
			return cached, nil
		}
		return models.Budget{}, err
	}

	s.writeCache(ctx, key, b)
	return b, nil
}

// Create validates the input locally, creates the budget remotely and
// invalidates every budget list cache. Validation is mandatory here; the
// backend rejecting bad input is a second line, not the first.
func (s *Service) Create(ctx context.Context, in eletropro.BudgetInput) (models.Budget, error) {
	if err := validateInput(in, s.now()); err != nil {
		return models.Budget{}, err
	}

	created, err := s.api.CreateBudget(ctx, in)
	if err != nil {
		return models.Budget{}, err
	}

	s.invalidate(ctx, "")
	return created, nil
}

// Update applies a partial update and invalidates caches mentioning the budget.
func (s *Service) Update(ctx context.Context, id string, in eletropro.BudgetUpdate) (models.Budget, error) {
	updated, err := s.api.UpdateBudget(ctx, id, in)
	if err != nil {
		return models.Budget{}, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes the budget and its items, then invalidates caches.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteBudget(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// SetStatus transitions the budget to PENDING, APPROVED or REJECTED.
func (s *Service) SetStatus(ctx context.Context, id string, status models.Status) (models.Budget, error) {
	if !status.Valid() || status == models.StatusExpired {
		return models.Budget{}, ErrInvalidStatus
	}
	updated, err := s.api.UpdateBudgetStatus(ctx, id, status)
	if err != nil {
		return models.Budget{}, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// ApplyDiscount sets or replaces the discount. A decided budget reverts to
// PENDING, since the total underlying the decision changed.
func (s *Service) ApplyDiscount(ctx context.Context, id string, in eletropro.DiscountInput) (models.Budget, error) {
	if err := validation.Discount(in.Discount, in.DiscountType).Err(); err != nil {
		return models.Budget{}, err
	}

	updated, err := s.api.ApplyBudgetDiscount(ctx, id, in)
	if err != nil {
		return models.Budget{}, err
	}
	return s.settle(ctx, updated)
}

// RemoveDiscount clears the discount, with the same reversion rule.
func (s *Service) RemoveDiscount(ctx context.Context, id string) (models.Budget, error) {
	updated, err := s.api.RemoveBudgetDiscount(ctx, id)
	if err != nil {
		return models.Budget{}, err
	}
	return s.settle(ctx, updated)
}

// AddItem validates and appends an item. The backend recomputes totals; a
// decided budget reverts to PENDING.
func (s *Service) AddItem(ctx context.Context, id string, in eletropro.BudgetItemInput) (models.Budget, error) {
	if err := validation.BudgetItem(itemFromInput(in)).Err(); err != nil {
		return models.Budget{}, err
	}
	updated, err := s.api.AddBudgetItem(ctx, id, in)
	if err != nil {
		return models.Budget{}, err
	}
	return s.settle(ctx, updated)
}

// UpdateItem validates and replaces an item, with the same reversion rule.
func (s *Service) UpdateItem(ctx context.Context, id, itemID string, in eletropro.BudgetItemInput) (models.Budget, error) {
	if err := validation.BudgetItem(itemFromInput(in)).Err(); err != nil {
		return models.Budget{}, err
	}
	updated, err := s.api.UpdateBudgetItem(ctx, id, itemID, in)
	if err != nil {
		return models.Budget{}, err
	}
	return s.settle(ctx, updated)
}

// RemoveItem deletes an item, with the same reversion rule.
func (s *Service) RemoveItem(ctx context.Context, id, itemID string) (models.Budget, error) {
	updated, err := s.api.RemoveBudgetItem(ctx, id, itemID)
	if err != nil {
		return models.Budget{}, err
	}
	return s.settle(ctx, updated)
}

// CopyFailure records one item that could not be copied during Duplicate.
type CopyFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// CopyReport summarizes the item-copy loop of Duplicate. The copy is not
// transactional: the duplicate keeps whichever items succeeded and the report
// tells the caller exactly which ones did not.
type CopyReport struct {
	Copied   int           `json:"copied"`
	Failures []CopyFailure `json:"failures,omitempty"`
}

// Duplicate creates a PENDING copy of the source budget under a new name and
// copies its items one by one, in order. The loop is intentionally sequential:
// it keeps the destination item order deterministic and failure attribution
// simple. The new budget is re-fetched at the end so the backend's computed
// totals are authoritative.
func (s *Service) Duplicate(ctx context.Context, sourceID, newName string) (models.Budget, CopyReport, error) {
	src, err := s.api.GetBudget(ctx, sourceID)
	if err != nil {
		return models.Budget{}, CopyReport{}, err
	}

	// The source's validity window is not copied: duplication is how a stale
	// quote gets re-issued, and the copy starts without a deadline until the
	// user sets a fresh one.
	in := eletropro.BudgetInput{
		Name:           strings.TrimSpace(newName),
		ClientID:       src.ClientID,
		Discount:       src.Discount,
		DiscountType:   src.DiscountType,
		DiscountReason: src.DiscountReason,
	}
	if err := validateInput(in, s.now()); err != nil {
		return models.Budget{}, CopyReport{}, err
	}

	created, err := s.api.CreateBudget(ctx, in)
	if err != nil {
		return models.Budget{}, CopyReport{}, err
	}

	var report CopyReport
	for i, it := range src.Items {
		_, err := s.api.AddBudgetItem(ctx, created.ID, eletropro.BudgetItemInput{
			ServiceID:  it.ServiceID,
			MaterialID: it.MaterialID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Unit:       it.Unit,
		})
		if err != nil {
			s.logger.Warn("item copy failed",
				zap.String("source_id", sourceID),
				zap.String("budget_id", created.ID),
				zap.Int("item_index", i),
				zap.Error(err))
			report.Failures = append(report.Failures, CopyFailure{Index: i, Name: it.Name, Error: err.Error()})
			continue
		}
		report.Copied++
	}

	final, err := s.api.GetBudget(ctx, created.ID)
	if err != nil {
		s.logger.Warn("refetch after duplicate failed, returning creation snapshot", zap.Error(err))
		final = created
	}

	s.invalidate(ctx, "")
	return final, report, nil
}

// Summary derives display aggregates from an already-loaded budget. It never
// fetches.
func (s *Service) Summary(b models.Budget) models.Summary {
	return Summarize(b)
}

// Summarize is the pure form of Service.Summary.
func Summarize(b models.Budget) models.Summary {
	sum := models.Summary{
		TotalItems: len(b.Items),
		TotalValue: b.TotalValue,
	}
	for _, it := range b.Items {
		if it.ServiceID != "" {
			sum.ServiceItems++
		} else {
			sum.MaterialItems++
		}
	}
	if sum.TotalItems > 0 {
		sum.AverageItemValue = sum.TotalValue / float64(sum.TotalItems)
	}
	return sum
}

// settle applies the reversion rule after an item or discount mutation and
// invalidates caches mentioning the budget.
func (s *Service) settle(ctx context.Context, b models.Budget) (models.Budget, error) {
	if b.Status.Decided() {
		reverted, err := s.api.UpdateBudgetStatus(ctx, b.ID, models.StatusPending)
		if err != nil {
			return models.Budget{}, err
		}
		b = reverted
	}
	s.invalidate(ctx, b.ID)
	return b, nil
}

// invalidate removes every budget list cache plus, when id is set, any budget
// key mentioning that id. It runs before the mutation result is returned so a
// subsequent read can never observe pre-write data.
func (s *Service) invalidate(ctx context.Context, id string) {
	prefix := cache.ResourcePrefix(resource)
	err := cache.Invalidate(ctx, s.cache, func(key string) bool {
		if !strings.HasPrefix(key, prefix) {
			return false
		}
		if strings.Contains(key, ":list:") {
			return true
		}
		return id != "" && strings.Contains(key, id)
	})
	if err != nil {
		s.logger.Warn("budget cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) readCache(ctx context.Context, key string, requireValid bool, out any) bool {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if entry == nil {
		return false
	}
	if requireValid && !entry.Valid(s.now()) {
		return false
	}
	if err := json.Unmarshal(entry.Data, out); err != nil {
		// Undecodable entries are treated as absent and purged.
		_ = s.cache.Remove(ctx, key)
		return false
	}
	return true
}

func (s *Service) writeCache(ctx context.Context, key string, data any) {
	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func validateInput(in eletropro.BudgetInput, now time.Time) error {
	r := validation.Budget(models.Budget{
		Name:         in.Name,
		ClientID:     in.ClientID,
		Discount:     in.Discount,
		DiscountType: in.DiscountType,
		ValidUntil:   in.ValidUntil,
	}, now)
	for i, it := range in.Items {
		r.Merge(fmt.Sprintf("item %d", i+1), validation.BudgetItem(itemFromInput(it)))
	}
	return r.Err()
}

func itemFromInput(in eletropro.BudgetItemInput) models.BudgetItem {
	return models.BudgetItem{
		ServiceID:  in.ServiceID,
		MaterialID: in.MaterialID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Unit:       in.Unit,
	}
}

func filterByClient(budgets []models.Budget, clientID string) []models.Budget {
	filtered := budgets[:0:0]
	for _, b := range budgets {
		if b.ClientID == clientID {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

func remoteFailure(err error) bool {
	var re *eletropro.RemoteError
	return errors.As(err, &re)
}
