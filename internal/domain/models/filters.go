package models

// ListFilters is the flat set of optional predicates accepted by the list
// endpoints. Empty fields are simply not sent; the backend combines the rest
// with logical AND. BudgetID only applies to material lists, Category only to
// catalog resources.
type ListFilters struct {
	ClientID string
	Status   Status
	Search   string
	DateFrom string
	DateTo   string
	BudgetID string
	Category string
}

// IsZero reports whether no predicate is set.
func (f ListFilters) IsZero() bool {
	return f == ListFilters{}
}
