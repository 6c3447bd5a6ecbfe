package nlp

import "testing"

func TestClassifyIntent(t *testing.T) {
	p := NewProcessor()

	cases := []struct {
		text string
		want string
	}{
		{"Hola", "saludo"},
		{"Me llegó una multa de tránsito", "multa"},
		{"¿Cuánto cobran por sus servicios?", "precios"},
		{"Ayuda urgente por favor", "urgente"},
		{"Muchas gracias, muy amable", "agradecimiento"},
	}

	for _, tc := range cases {
		result, err := p.ClassifyIntent(tc.text)
		if err != nil {
			t.Fatalf("ClassifyIntent(%q): %v", tc.text, err)
		}
		if result.Intent != tc.want {
			t.Errorf("ClassifyIntent(%q) = %q (%.2f), want %q", tc.text, result.Intent, result.Confidence, tc.want)
		}
	}
}

func TestClassifyIntentUnknown(t *testing.T) {
	p := NewProcessor()

	result, err := p.ClassifyIntent("xyzzy qwerty")
	if err != nil {
		t.Fatal(err)
	}
	if result.Intent != "unknown" || result.Confidence != 0 {
		t.Errorf("got %q (%.2f), want unknown with zero confidence", result.Intent, result.Confidence)
	}
}

func TestCountKeywordHitsNormalizes(t *testing.T) {
	p := NewProcessor()

	keywords := []string{"sabemos donde vives", "deposita", "secuestrado"}

	hits := p.CountKeywordHits("Sabemos DÓNDE vives, deposita ya.", keywords)
	if len(hits) != 2 {
		t.Fatalf("hits = %v, want the surveillance and deposit keywords", hits)
	}

	if hits := p.CountKeywordHits("necesito impugnar una multa", keywords); len(hits) != 0 {
		t.Errorf("hits = %v, want none for a normal consultation", hits)
	}

	if hits := p.CountKeywordHits("", keywords); len(hits) != 0 {
		t.Errorf("hits = %v, want none for empty text", hits)
	}
}

func TestExtractPhone(t *testing.T) {
	e := NewContactExtractor()

	cases := []struct {
		text string
		want string
	}{
		{"Mi número es 4771234567", "4771234567"},
		{"márcame al +52 4771234567", "4771234567"},
		{"tel 55 1234 5678 por favor", "5512345678"},
		{"no dejo teléfono", ""},
	}

	for _, tc := range cases {
		if got := e.ExtractPhone(tc.text); got != tc.want {
			t.Errorf("ExtractPhone(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractAmount(t *testing.T) {
	e := NewContactExtractor()

	cases := []struct {
		text  string
		want  float64
		found bool
	}{
		{"La multa fue de $2,500", 2500, true},
		{"me cobraron 1,200 pesos", 1200, true},
		{"$1,234.56 de recargos", 1234.56, true},
		{"no dice el monto", 0, false},
	}

	for _, tc := range cases {
		got, ok := e.ExtractAmount(tc.text)
		if ok != tc.found || got != tc.want {
			t.Errorf("ExtractAmount(%q) = %v, %v; want %v, %v", tc.text, got, ok, tc.want, tc.found)
		}
	}
}

func TestExtractName(t *testing.T) {
	e := NewContactExtractor()

	cases := []struct {
		text string
		want string
	}{
		{"Hola, me llamo Juan Pérez y tengo una multa", "Juan Pérez"},
		{"mi nombre es María del Carmen", "María"},
		{"buenos días, quiero una consulta", ""},
	}

	for _, tc := range cases {
		if got := e.ExtractName(tc.text); got != tc.want {
			t.Errorf("ExtractName(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractContact(t *testing.T) {
	e := NewContactExtractor()

	contact := e.ExtractContact("Soy Pedro López, mi número es 4779876543")
	if contact == nil {
		t.Fatal("expected contact data")
	}
	if contact.Name != "Pedro López" || contact.Phone != "4779876543" {
		t.Errorf("got %+v", contact)
	}

	if e.ExtractContact("quiero información de precios") != nil {
		t.Error("expected nil for text without contact data")
	}
}
