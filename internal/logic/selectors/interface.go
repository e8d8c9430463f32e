package selectors

import "github.com/hypermindz/lbarserve/internal/models"

// Selector defines a pluggable interface for contextual ad selection.
type Selector interface {
	SelectContextualAd(event models.EventType, householdSegments []string,
		filters models.SelectionFilters) models.SelectionResult
}
