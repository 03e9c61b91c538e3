package main

import (
	"reflect"
	"testing"
)

// Test data for sorting strategies
func getTestImagePaths() []ImagePath {
	return []ImagePath{
		{Path: "test/01.png"},
		{Path: "test/04.zip:a.png", ArchivePath: "test/04.zip", EntryPath: "a.png"},
		{Path: "test/08.png"},
		{Path: "test/09.png"},
		{Path: "test/2.png"},
		{Path: "test/３.png"},
	}
}

func TestSortStrategies(t *testing.T) {
	input := getTestImagePaths()

	tests := []struct {
		sortMethod int
		name       string
		expected   []string
	}{
		{SortNatural, "Natural", []string{
			"test/01.png", "test/2.png", "test/04.zip:a.png", "test/08.png", "test/09.png", "test/３.png",
		}},
		{SortSimple, "Simple", []string{
			"test/01.png", "test/04.zip:a.png", "test/08.png", "test/09.png", "test/2.png", "test/３.png",
		}},
		{SortEntryOrder, "Entry Order", pathsToStrings(input)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := GetSortStrategy(tt.sortMethod)
			if strategy.Name() != tt.name {
				t.Errorf("Expected name '%s', got '%s'", tt.name, strategy.Name())
			}
			if strategy.ID() != tt.sortMethod {
				t.Errorf("Expected ID %d, got %d", tt.sortMethod, strategy.ID())
			}

			original := getTestImagePaths()
			result := strategy.Sort(original)
			if got := pathsToStrings(result); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("%s sort failed", tt.name)
				t.Logf("Expected: %v", tt.expected)
				t.Logf("Got:      %v", got)
			}
			if !reflect.DeepEqual(original, getTestImagePaths()) {
				t.Error("Input slice was modified - should be immutable")
			}
			if len(strategy.Sort([]ImagePath{})) != 0 {
				t.Error("Sorting an empty slice returned elements")
			}
		})
	}
}

func TestGetSortStrategyFallback(t *testing.T) {
	if strategy := GetSortStrategy(999); strategy.ID() != SortNatural {
		t.Errorf("Expected natural fallback, got %s", strategy.Name())
	}
	if n := len(GetAllSortStrategies()); n != 3 {
		t.Errorf("Expected 3 strategies, got %d", n)
	}
}

func TestParseSortMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"natural", SortNatural, false},
		{"Simple", SortSimple, false},
		{" entry ", SortEntryOrder, false},
		{"random", SortNatural, true},
		{"", SortNatural, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortMethod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSortMethod(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// Test edge cases
func TestSortStrategyEdgeCases(t *testing.T) {
	identical := []ImagePath{
		{Path: "test/same.png"},
		{Path: "test/same.png"},
		{Path: "test/same.png"},
	}

	for _, strategy := range GetAllSortStrategies() {
		result := strategy.Sort(identical)
		if len(result) != 3 {
			t.Errorf("Strategy %s changed length on identical paths", strategy.Name())
		}
		for _, path := range result {
			if path.Path != "test/same.png" {
				t.Errorf("Strategy %s changed identical paths", strategy.Name())
			}
		}
	}
}

// Helper function to convert ImagePath slice to string slice for easier debugging
func pathsToStrings(paths []ImagePath) []string {
	var out []string
	for _, path := range paths {
		out = append(out, path.Path)
	}
	return out
}
