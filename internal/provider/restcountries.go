package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/logger"
	"github.com/paislab/pais-api/internal/models"
)

// RestCountries implements Provider against the public REST Countries v3.1
// API (name-based search, first match wins).
type RestCountries struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

// NewRestCountries creates a REST Countries client
//
// Parameters:
//   - baseURL: provider base URL (e.g. "https://restcountries.com")
//   - timeout: bounded per-request timeout
//   - log: structured logger (optional, can be nil)
func NewRestCountries(baseURL string, timeout time.Duration, log *logger.Logger) *RestCountries {
	if log == nil {
		log = logger.NewDefault()
	}
	return &RestCountries{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log.WithComponent("RestCountries"),
	}
}

// rcCountry mirrors the slice of the provider response we care about:
// nested common name, capital array, region, currencies and languages maps,
// and population.
type rcCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string                   `json:"capital"`
	Region     string                     `json:"region"`
	Currencies map[string]json.RawMessage `json:"currencies"`
	Languages  map[string]string          `json:"languages"`
	Population int64                      `json:"population"`
}

// Lookup implements Provider.
//
// Flow:
//  1. Build the name-search URL (name is path-escaped)
//  2. Call the provider with the caller's context and a bounded timeout
//  3. 404 or empty result -> "País no encontrado" (404)
//  4. Map the first record into a Country, filling sentinels
func (p *RestCountries) Lookup(ctx context.Context, name string) (*models.Country, error) {
	endpoint := fmt.Sprintf("%s/v3.1/name/%s", p.baseURL, url.PathEscape(name))
	p.logger.Info().Str("url", endpoint).Msg("Querying country provider")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Upstream(fmt.Sprintf("Error al consultar la API de países: %v", err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// Network failure or timeout - upstream error, never a not-found
		p.logger.Error().Err(err).Str("country", name).Msg("Provider request failed")
		return nil, errs.Upstream(fmt.Sprintf("Error al consultar la API de países: %v", err))
	}
	defer resp.Body.Close()

	// REST Countries answers 404 when no country matches the name
	if resp.StatusCode == http.StatusNotFound {
		p.logger.Warn().Str("country", name).Msg("Country not found in provider")
		return nil, errs.NotFound("País no encontrado")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Error().Int("status", resp.StatusCode).Str("country", name).Msg("Provider returned error status")
		return nil, errs.Upstream(fmt.Sprintf("Error al consultar la API de países: status %d", resp.StatusCode))
	}

	var results []rcCountry
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errs.Upstream(fmt.Sprintf("Error al consultar la API de países: %v", err))
	}
	if len(results) == 0 {
		p.logger.Warn().Str("country", name).Msg("Provider returned no matches")
		return nil, errs.NotFound("País no encontrado")
	}

	return mapCountry(results[0]), nil
}

// mapCountry converts a raw provider record into our Country value.
// Missing capital/region become sentinel strings; currency is the first
// currency code; population defaults to the zero value.
func mapCountry(rc rcCountry) *models.Country {
	capital := models.NoCapital
	if len(rc.Capital) > 0 && rc.Capital[0] != "" {
		capital = rc.Capital[0]
	}

	region := rc.Region
	if region == "" {
		region = models.NoRegion
	}

	return &models.Country{
		Name:       rc.Name.Common,
		Capital:    capital,
		Region:     region,
		Currency:   firstCurrencyCode(rc.Currencies),
		Languages:  languageNames(rc.Languages),
		Population: rc.Population,
	}
}

// firstCurrencyCode picks the currency code for the Country.
// JSON object order is not observable through a Go map, so the smallest code
// wins to keep results deterministic.
func firstCurrencyCode(currencies map[string]json.RawMessage) string {
	if len(currencies) == 0 {
		return ""
	}
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes[0]
}

// languageNames extracts the language display names, ordered by their code
// so two lookups of the same country always agree.
func languageNames(languages map[string]string) []string {
	names := make([]string, 0, len(languages))
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		names = append(names, languages[code])
	}
	return names
}
