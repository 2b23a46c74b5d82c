package theme

import "testing"

func TestLookup(t *testing.T) {
	if th := Lookup("vitesse-light"); th.Name != "vitesse-light" {
		t.Fatalf("Lookup(vitesse-light) = %q", th.Name)
	}
	if th := Lookup("no-such-theme"); th.Name != VitesseDark.Name {
		t.Fatalf("unknown theme should fall back to dark, got %q", th.Name)
	}
	for _, name := range Names() {
		if Lookup(name).Name != name {
			t.Fatalf("Names/Lookup mismatch for %q", name)
		}
	}
}
