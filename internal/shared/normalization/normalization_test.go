package normalization

import "testing"

func TestFoldToken(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"  Mié ":      "mie",
		"Miércoles":   "miercoles",
		"SÁBADO":      "sabado",
		"lunes":       "lunes",
		"Dom.":        "dom.",
		"Thursday":    "thursday",
		"  señorita ": "senorita",
	}

	for input, expected := range cases {
		if actual := FoldToken(input); actual != expected {
			t.Fatalf("FoldToken(%q) expected %q got %q", input, expected, actual)
		}
	}
}

func TestNormalizeEntity(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"Negocio":       "listings",
		" listing ":     "listings",
		"businesses":    "listings",
		"HORARIOS":      "hours",
		"custom_entity": "custom-entity",
	}

	for input, expected := range cases {
		if actual := NormalizeEntity(input); actual != expected {
			t.Fatalf("NormalizeEntity(%q) expected %q got %q", input, expected, actual)
		}
	}
}

func TestAsBool(t *testing.T) {
	cases := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "bool true", input: true, expected: true},
		{name: "spanish yes", input: " si ", expected: true},
		{name: "string false", input: "false", expected: false},
		{name: "number one", input: float64(1), expected: true},
		{name: "garbage", input: "maybe", expected: false},
		{name: "nil", input: nil, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if result := AsBool(tc.input); result != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestMapFromPayloadUnwrapsDataEnvelope(t *testing.T) {
	payload := map[string]any{"data": map[string]any{"ownerId": "u-1"}}
	result := MapFromPayload(payload)
	if AsString(result["ownerId"]) != "u-1" {
		t.Fatalf("expected unwrapped data map, got %#v", result)
	}
	if MapFromPayload("text") != nil {
		t.Fatal("expected nil for non-map payload")
	}
}
