package errx

// RegistryEntry describes a registered category code.
type RegistryEntry struct {
	Code        string
	Description string
}

// Category codes follow a stable 5-digit scheme where the first two digits
// are the domain and the last three digits are reserved for subcodes.
const (
	CodeCLI     = "60000"
	CodeStore   = "61000"
	CodeCatalog = "62000"
	CodeConfig  = "63000"
	CodeHTTP    = "64000"
)

const (
	DescCLI     = "CLI/argument validation error"
	DescStore   = "Store registration error"
	DescCatalog = "Catalog error"
	DescConfig  = "Configuration error"
	DescHTTP    = "HTTP adapter error"
)

var registryEntries = []RegistryEntry{
	{Code: CodeCLI, Description: DescCLI},
	{Code: CodeStore, Description: DescStore},
	{Code: CodeCatalog, Description: DescCatalog},
	{Code: CodeConfig, Description: DescConfig},
	{Code: CodeHTTP, Description: DescHTTP},
}

var registryMap = func() map[string]string {
	m := make(map[string]string, len(registryEntries))
	for _, entry := range registryEntries {
		m[entry.Code] = entry.Description
	}
	return m
}()

// Categories returns the category registry in deterministic order.
func Categories() []RegistryEntry {
	entries := make([]RegistryEntry, len(registryEntries))
	copy(entries, registryEntries)
	return entries
}

// DescriptionFor returns the description of a category code.
func DescriptionFor(code string) (string, bool) {
	desc, ok := registryMap[code]
	return desc, ok
}

// IsValidCode checks if the given category code is registered.
func IsValidCode(code string) bool {
	_, ok := registryMap[code]
	return ok
}
