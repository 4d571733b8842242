package cache

import (
	"fmt"

	"github.com/eletropro/app-core/internal/domain/models"
)

// Namespace prefixes every key so unrelated blobs sharing the backing store
// (session data, profile snapshots) survive coarse invalidation sweeps.
const Namespace = "eletropro"

// ListKey derives the deterministic key for a filtered list read. All filter
// fields are serialized in a fixed order, so equal filters always hit the same
// entry and distinct filters never collide.
func ListKey(resource string, f models.ListFilters) string {
	return fmt.Sprintf("%s:%s:list:clientId=%s|status=%s|search=%s|from=%s|to=%s|budgetId=%s|category=%s",
		Namespace, resource, f.ClientID, f.Status, f.Search, f.DateFrom, f.DateTo, f.BudgetID, f.Category)
}

// DetailKey derives the key for a single-entity read.
func DetailKey(resource, id string) string {
	return fmt.Sprintf("%s:%s:detail:%s", Namespace, resource, id)
}

// ResourcePrefix is the common prefix of every key of one entity family, used
// for coarse invalidation after writes.
func ResourcePrefix(resource string) string {
	return fmt.Sprintf("%s:%s:", Namespace, resource)
}
