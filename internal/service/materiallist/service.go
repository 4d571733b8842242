// Package materiallist mirrors the budget orchestration contract for material
// lists: read-through caching, mandatory validation, write-through
// invalidation and the decided-status reversion rule. Material lists carry no
// discount; their total is the plain item sum.
package materiallist

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

const resource = "material-lists"

// ErrInvalidStatus mirrors the budget service rule: EXPIRED is never written.
var ErrInvalidStatus = errors.New("invalid status transition")

// API is the slice of the backend client this service needs.
type API interface {
	ListMaterialLists(ctx context.Context, f models.ListFilters) ([]models.MaterialList, error)
	GetMaterialList(ctx context.Context, id string) (models.MaterialList, error)
	CreateMaterialList(ctx context.Context, in eletropro.MaterialListInput) (models.MaterialList, error)
	UpdateMaterialList(ctx context.Context, id string, in eletropro.MaterialListUpdate) (models.MaterialList, error)
	DeleteMaterialList(ctx context.Context, id string) error
	UpdateMaterialListStatus(ctx context.Context, id string, status models.Status) (models.MaterialList, error)
	AddMaterialListItem(ctx context.Context, id string, in eletropro.MaterialListItemInput) (models.MaterialList, error)
	UpdateMaterialListItem(ctx context.Context, id, itemID string, in eletropro.MaterialListItemInput) (models.MaterialList, error)
	RemoveMaterialListItem(ctx context.Context, id, itemID string) (models.MaterialList, error)
}

// Service exposes material list operations to UI surfaces.
type Service struct {
	api    API
	cache  cache.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a material list service.
func NewService(api API, store cache.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, cache: store, logger: logger, now: time.Now}
}

// List returns material lists matching the filters, read-through with stale
// fallback. budgetId narrows to lists derived from one budget.
func (s *Service) List(ctx context.Context, f models.ListFilters) ([]models.MaterialList, error) {
	key := cache.ListKey(resource, f)

	var cached []models.MaterialList
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	lists, err := s.api.ListMaterialLists(ctx, f)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale material lists after remote failure", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}

	if f.ClientID != "" {
		lists = filterByClient(lists, f.ClientID)
	}

	s.writeCache(ctx, key, lists)
	return lists, nil
}

// Get returns one material list with items populated.
func (s *Service) Get(ctx context.Context, id string) (models.MaterialList, error) {
	key := cache.DetailKey(resource, id)

	var cached models.MaterialList
	if s.readCache(ctx, key, true, &cached) {
		return cached, nil
	}

	l, err := s.api.GetMaterialList(ctx, id)
	if err != nil {
		if remoteFailure(err) && s.readCache(ctx, key, false, &cached) {
			s.logger.Warn("serving stale material list after remote failure", zap.String("list_id", id), zap.Error(err))
			return cached, nil
		}
		return models.MaterialList{}, err
	}

	s.writeCache(ctx, key, l)
	return l, nil
}

// Create validates locally, creates remotely and invalidates list caches.
func (s *Service) Create(ctx context.Context, in eletropro.MaterialListInput) (models.MaterialList, error) {
	if err := validateInput(in); err != nil {
		return models.MaterialList{}, err
	}

	created, err := s.api.CreateMaterialList(ctx, in)
	if err != nil {
		return models.MaterialList{}, err
	}

	s.invalidate(ctx, "")
	return created, nil
}

// Update applies a partial update and invalidates caches mentioning the list.
func (s *Service) Update(ctx context.Context, id string, in eletropro.MaterialListUpdate) (models.MaterialList, error) {
	updated, err := s.api.UpdateMaterialList(ctx, id, in)
	if err != nil {
		return models.MaterialList{}, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes the list and its items, then invalidates caches.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteMaterialList(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// SetStatus transitions the list to PENDING, APPROVED or REJECTED.
func (s *Service) SetStatus(ctx context.Context, id string, status models.Status) (models.MaterialList, error) {
	if !status.Valid() || status == models.StatusExpired {
		return models.MaterialList{}, ErrInvalidStatus
	}
	updated, err := s.api.UpdateMaterialListStatus(ctx, id, status)
	if err != nil {
		return models.MaterialList{}, err
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// AddItem validates and appends an item; a decided list reverts to PENDING.
func (s *Service) AddItem(ctx context.Context, id string, in eletropro.MaterialListItemInput) (models.MaterialList, error) {
	if err := validation.MaterialListItem(itemFromInput(in)).Err(); err != nil {
		return models.MaterialList{}, err
	}
	updated, err := s.api.AddMaterialListItem(ctx, id, in)
	if err != nil {
		return models.MaterialList{}, err
	}
	return s.settle(ctx, updated)
}

// UpdateItem validates and replaces an item, with the same reversion rule.
func (s *Service) UpdateItem(ctx context.Context, id, itemID string, in eletropro.MaterialListItemInput) (models.MaterialList, error) {
	if err := validation.MaterialListItem(itemFromInput(in)).Err(); err != nil {
		return models.MaterialList{}, err
	}
	updated, err := s.api.UpdateMaterialListItem(ctx, id, itemID, in)
	if err != nil {
		return models.MaterialList{}, err
	}
	return s.settle(ctx, updated)
}

// RemoveItem deletes an item, with the same reversion rule.
func (s *Service) RemoveItem(ctx context.Context, id, itemID string) (models.MaterialList, error) {
	updated, err := s.api.RemoveMaterialListItem(ctx, id, itemID)
	if err != nil {
		return models.MaterialList{}, err
	}
	return s.settle(ctx, updated)
}

// CopyFailure records one item that could not be copied during Duplicate.
type CopyFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// CopyReport summarizes the non-transactional item-copy loop of Duplicate.
type CopyReport struct {
	Copied   int           `json:"copied"`
	Failures []CopyFailure `json:"failures,omitempty"`
}

// Duplicate copies a material list under a new name, sequentially copying
// items to keep their order deterministic, then re-fetches for authoritative
// totals. Failed items are reported, not rolled back.
func (s *Service) Duplicate(ctx context.Context, sourceID, newName string) (models.MaterialList, CopyReport, error) {
	src, err := s.api.GetMaterialList(ctx, sourceID)
	if err != nil {
		return models.MaterialList{}, CopyReport{}, err
	}

	in := eletropro.MaterialListInput{
		Name:     strings.TrimSpace(newName),
		ClientID: src.ClientID,
		BudgetID: src.BudgetID,
	}
	if err := validateInput(in); err != nil {
		return models.MaterialList{}, CopyReport{}, err
	}

	created, err := s.api.CreateMaterialList(ctx, in)
	if err != nil {
		return models.MaterialList{}, CopyReport{}, err
	}

	var report CopyReport
	for i, it := range src.Items {
		_, err := s.api.AddMaterialListItem(ctx, created.ID, eletropro.MaterialListItemInput{
			MaterialID: it.MaterialID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Unit:       it.Unit,
		})
		if err != nil {
			s.logger.Warn("item copy failed",
				zap.String("source_id", sourceID),
				zap.String("list_id", created.ID),
				zap.Int("item_index", i),
				zap.Error(err))
			report.Failures = append(report.Failures, CopyFailure{Index: i, Name: it.Name, Error: err.Error()})
			continue
		}
		report.Copied++
	}

	final, err := s.api.GetMaterialList(ctx, created.ID)
	if err != nil {
		s.logger.Warn("refetch after duplicate failed, returning creation snapshot", zap.Error(err))
		final = created
	}

	s.invalidate(ctx, "")
	return final, report, nil
}

// Summary derives display aggregates from an already-loaded list.
func (s *Service) Summary(l models.MaterialList) models.Summary {
	return Summarize(l)
}

// Summarize is the pure form of Service.Summary. Every material list item is
// material-backed by construction.
func Summarize(l models.MaterialList) models.Summary {
	sum := models.Summary{
		TotalItems:    len(l.Items),
		TotalValue:    l.TotalValue,
		MaterialItems: len(l.Items),
	}
	if sum.TotalItems > 0 {
		sum.AverageItemValue = sum.TotalValue / float64(sum.TotalItems)
	}
	return sum
}

func (s *Service) settle(ctx context.Context, l models.MaterialList) (models.MaterialList, error) {
	if l.Status.Decided() {
		reverted, err := s.api.UpdateMaterialListStatus(ctx, l.ID, models.StatusPending)
		if err != nil {
			return models.MaterialList{}, err
		}
		l = reverted
	}
	s.invalidate(ctx, l.ID)
	return l, nil
}

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
		s.logger.Warn("material list cache invalidation failed", zap.Error(err))
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

func validateInput(in eletropro.MaterialListInput) error {
	r := validation.MaterialList(models.MaterialList{
		Name:     in.Name,
		ClientID: in.ClientID,
		BudgetID: in.BudgetID,
	})
	for i, it := range in.Items {
		r.Merge(fmt.Sprintf("item %d", i+1), validation.MaterialListItem(itemFromInput(it)))
	}
	return r.Err()
}

func itemFromInput(in eletropro.MaterialListItemInput) models.MaterialListItem {
	return models.MaterialListItem{
		MaterialID: in.MaterialID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Unit:       in.Unit,
	}
}

func filterByClient(lists []models.MaterialList, clientID string) []models.MaterialList {
	filtered := lists[:0:0]
	for _, l := range lists {
		if l.ClientID == clientID {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func remoteFailure(err error) bool {
	var re *eletropro.RemoteError
	return errors.As(err, &re)
}
