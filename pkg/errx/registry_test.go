package errx

import (
	"testing"
)

func TestRegistry_Categories(t *testing.T) {
	entries := Categories()
	if len(entries) != len(registryEntries) {
		t.Errorf("Categories() = %v, want %v", len(entries), len(registryEntries))
	}
	for i, entry := range entries {
		if entry != registryEntries[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, entry, registryEntries[i])
		}
	}

	entries[0].Code = "mutated"
	if registryEntries[0].Code == "mutated" {
		t.Error("Categories() should return a copy")
	}
}

func TestRegistry_DescriptionFor(t *testing.T) {
	desc, ok := DescriptionFor(CodeCatalog)
	if !ok || desc != DescCatalog {
		t.Errorf("DescriptionFor(%q) = %q, want %q", CodeCatalog, desc, DescCatalog)
	}
	if _, ok := DescriptionFor("99999"); ok {
		t.Error("DescriptionFor(99999) should not be found")
	}
}

func TestRegistry_IsValidCode(t *testing.T) {
	for _, code := range []string{CodeCLI, CodeStore, CodeCatalog, CodeConfig, CodeHTTP} {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}
}
