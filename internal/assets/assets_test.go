package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyForMessage(t *testing.T) {
	c := NewCatalog(t.TempDir())

	cases := []struct {
		message string
		want    string
		found   bool
	}{
		{"me llegó una multa de transito", ImageFineDefense, true},
		// "cuanto" also maps to pricing, but the divorce keyword ranks higher.
		{"cuanto cuesta un divorcio", ImageDivorce, true},
		{"quiero hacer mi testamento", ImageWills, true},
		{"me corrieron del trabajo", ImageLabor, true},
		{"cual es su direccion", ImageContact, true},
		{"hola buenas tardes", "", false},
	}

	for _, tc := range cases {
		key, ok := c.KeyForMessage(tc.message)
		if ok != tc.found || (tc.found && key != tc.want) {
			t.Errorf("KeyForMessage(%q) = %q, %v; want %q, %v", tc.message, key, ok, tc.want, tc.found)
		}
	}
}

func TestPathAndAvailability(t *testing.T) {
	base := t.TempDir()
	c := NewCatalog(base)

	if _, ok := c.Path(ImageWelcome); ok {
		t.Error("missing file should report unavailable")
	}

	dir := filepath.Join(base, "bienvenida")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bienvenida_principal.jpg"), []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok := c.Path(ImageWelcome)
	if !ok || !strings.HasSuffix(path, filepath.Join("bienvenida", "bienvenida_principal.jpg")) {
		t.Errorf("Path = %q, %v; want existing welcome image", path, ok)
	}

	available, missing := c.Available()
	if len(available) != 1 {
		t.Errorf("available = %v, want only the welcome image", available)
	}
	if len(missing) != len(imagePaths)-1 {
		t.Errorf("missing = %d, want %d", len(missing), len(imagePaths)-1)
	}

	if _, ok := c.Path("NO_SUCH_KEY"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestCaptionsCarryCorePricing(t *testing.T) {
	c := NewCatalog(t.TempDir())

	caption := c.Caption(ImageFineDefense)
	for _, want := range []string{"$2,500 MXN", "97% (330/340 casos ganados)", "4-6 meses"} {
		if !strings.Contains(caption, want) {
			t.Errorf("fine caption missing %q", want)
		}
	}

	if c.Caption(ImageOffice) != "" {
		t.Error("office image has no caption")
	}
}
