package models

// Country represents a country as served by this API.
// Field names in the JSON responses are Spanish because the public contract
// of the workshop API is Spanish (nombre, capital, region, moneda, idiomas,
// poblacion). A Country is a value: once built from a provider response it is
// never mutated.
type Country struct {
	Name       string   `json:"nombre"`    // Canonical common name, lookup key
	Capital    string   `json:"capital"`   // "Sin capital" when the provider has none
	Region     string   `json:"region"`    // "Sin Región" when absent
	Currency   string   `json:"moneda"`    // First currency code, or empty
	Languages  []string `json:"idiomas"`   // Official language names, may be empty
	Population int64    `json:"poblacion"` // Non-negative, defaults to 0
}

// Sentinel values used when the provider omits a field.
const (
	NoCapital = "Sin capital"
	NoRegion  = "Sin Región"
)

// SearchRecord is one entry of the append-only search log, written once per
// successful country lookup.
type SearchRecord struct {
	Name   string `json:"nombre"`
	Region string `json:"region"`
	Date   string `json:"fecha"` // RFC 3339 timestamp
}

// Ranking maps region -> country name -> number of successful lookups.
type Ranking map[string]map[string]int

// Favorites maps region -> names of the countries stored under that region.
type Favorites map[string][]string

// ErrorResponse is the standard error response format.
// Every failure returns this shape; internals are never exposed.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the confirmation body for operations that return no
// entity (e.g. favorite deletion).
type MessageResponse struct {
	Message string `json:"message"`
}
