package common

import "testing"

func TestContainsAny(t *testing.T) {
	list := []string{"Rain", "Snow"}

	if !ContainsAny(list, "Snow", "Drizzle") {
		t.Error("expected match on Snow")
	}
	if ContainsAny(list, "Drizzle", "Freezing rain") {
		t.Error("unexpected match")
	}
	if ContainsAny(nil, "Rain") {
		t.Error("nil list should never match")
	}
	if ContainsAny(list) {
		t.Error("no values should never match")
	}
}
