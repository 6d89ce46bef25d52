package store

import (
	"fmt"
	"testing"
)

func setupSuggestionStore(t *testing.T) *SuggestionStore {
	t.Helper()
	return NewSuggestionStore(setupTestDB(t))
}

func TestRecordUsageNormalizes(t *testing.T) {
	ss := setupSuggestionStore(t)

	if err := ss.RecordUsage("  Milk ", "lt"); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	names, err := ss.SearchPrefix("milk")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(names) != 1 || names[0] != "milk" {
		t.Fatalf("expected [milk], got %v", names)
	}
}

func TestRecordUsageUpserts(t *testing.T) {
	ss := setupSuggestionStore(t)

	ss.RecordUsage("Milk", "lt")
	ss.RecordUsage("milk", "gal")

	names, _ := ss.SearchPrefix("mi")
	if len(names) != 1 {
		t.Fatalf("expected one row per normalized name, got %v", names)
	}

	sg, err := ss.LastUnit("MILK")
	if err != nil {
		t.Fatalf("last unit: %v", err)
	}
	if sg == nil || sg.LastUsedUnit != "gal" {
		t.Errorf("last unit = %+v, want gal", sg)
	}
	if sg != nil && sg.ProductName != "milk" {
		t.Errorf("product name = %q, want normalized form", sg.ProductName)
	}
}

func TestRecordUsageBlankNameIgnored(t *testing.T) {
	ss := setupSuggestionStore(t)

	if err := ss.RecordUsage("   ", "lt"); err != nil {
		t.Fatalf("record usage: %v", err)
	}

	names, _ := ss.SearchPrefix("")
	if len(names) != 0 {
		t.Errorf("blank name must not be stored, got %v", names)
	}
}

func TestSearchPrefixCap(t *testing.T) {
	ss := setupSuggestionStore(t)

	for i := 0; i < 15; i++ {
		ss.RecordUsage(fmt.Sprintf("apple %02d", i), "und")
	}

	names, err := ss.SearchPrefix("apple")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(names) != suggestionLimit {
		t.Errorf("expected %d results, got %d", suggestionLimit, len(names))
	}
}

func TestSearchPrefixNoMatch(t *testing.T) {
	ss := setupSuggestionStore(t)

	ss.RecordUsage("milk", "lt")

	names, err := ss.SearchPrefix("bread")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no results, got %v", names)
	}
}

func TestLastUnitAbsent(t *testing.T) {
	ss := setupSuggestionStore(t)

	sg, err := ss.LastUnit("never seen")
	if err != nil {
		t.Fatalf("last unit: %v", err)
	}
	if sg != nil {
		t.Errorf("expected absent, got %+v", sg)
	}
}
