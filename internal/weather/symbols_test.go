package weather

import "testing"

func TestSymbolMeaningIsStable(t *testing.T) {
	first, ok := SymbolMeaning(5)
	if !ok || first != "Cloudy sky" {
		t.Fatalf("symbol 5 = %q, want \"Cloudy sky\"", first)
	}

	second, _ := SymbolMeaning(5)
	if second != first {
		t.Fatalf("lookup is not stable: %q vs %q", first, second)
	}
}

func TestSymbolMeaningCoversFullRange(t *testing.T) {
	for code := 1; code <= 27; code++ {
		if _, ok := SymbolMeaning(code); !ok {
			t.Errorf("symbol %d has no meaning", code)
		}
	}
	for _, code := range []int{0, 28, -1} {
		if _, ok := SymbolMeaning(code); ok {
			t.Errorf("symbol %d should be unknown", code)
		}
	}
}

func TestPrecipitationNames(t *testing.T) {
	want := map[int]string{
		1: "Snow",
		2: "Snow/Rain mix",
		3: "Rain",
		4: "Drizzle",
		5: "Freezing rain",
		6: "Freezing drizzle",
	}
	for code, name := range want {
		got, ok := PrecipitationName(code)
		if !ok || got != name {
			t.Errorf("pcat %d = %q, want %q", code, got, name)
		}
	}
	if _, ok := PrecipitationName(0); ok {
		t.Error("pcat 0 (none) should have no name")
	}
}
