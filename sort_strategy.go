package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// SortStrategy orders discovered images before they become slides
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(images []ImagePath) []ImagePath
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// pathSortStrategy sorts by image path with the given ordering.
// A nil less keeps discovery order.
type pathSortStrategy struct {
	id   int
	name string
	key  string
	less func(a, b string) bool
}

func (s *pathSortStrategy) Sort(images []ImagePath) []ImagePath {
	result := make([]ImagePath, len(images))
	copy(result, images)
	if s.less != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return s.less(result[i].Path, result[j].Path)
		})
	}
	return result
}

func (s *pathSortStrategy) Name() string { return s.name }
func (s *pathSortStrategy) ID() int      { return s.id }

var sortStrategies = []*pathSortStrategy{
	{id: SortNatural, name: "Natural", key: "natural", less: natural.Less},
	{id: SortSimple, name: "Simple", key: "simple", less: func(a, b string) bool { return a < b }},
	{id: SortEntryOrder, name: "Entry Order", key: "entry"},
}

// GetSortStrategy returns the strategy for a sort method, falling back to natural order
func GetSortStrategy(sortMethod int) SortStrategy {
	for _, s := range sortStrategies {
		if s.id == sortMethod {
			return s
		}
	}
	return sortStrategies[0]
}

// GetAllSortStrategies returns all available sort strategies
func GetAllSortStrategies() []SortStrategy {
	all := make([]SortStrategy, len(sortStrategies))
	for i, s := range sortStrategies {
		all[i] = s
	}
	return all
}

// ParseSortMethod maps a command-line name (natural, simple, entry) to a sort method
func ParseSortMethod(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range sortStrategies {
		if s.key == name {
			return s.id, nil
		}
	}
	return SortNatural, fmt.Errorf("unknown sort method %q (want natural, simple or entry)", name)
}
