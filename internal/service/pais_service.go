package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/paislab/pais-api/internal/blacklist"
	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/logger"
	"github.com/paislab/pais-api/internal/metrics"
	"github.com/paislab/pais-api/internal/models"
	"github.com/paislab/pais-api/internal/provider"
	"github.com/paislab/pais-api/internal/store"
	"github.com/paislab/pais-api/internal/tracker"
)

// PaisService handles business logic for country lookups and favorites
// This is the service layer - it sits between handlers and the collaborators
//
// Responsibilities:
//   - Validate input (non-empty country name)
//   - Orchestrate Provider -> Tracker on reads
//   - Orchestrate Provider -> Blacklist -> Store on favorite-add
//   - NO status mapping (that's in the handler) and NO policy storage
//     (blacklist and files are injected, never module-level state)
type PaisService struct {
	provider  provider.Provider    // External country-information API
	blacklist *blacklist.Blacklist // Restricted country names
	store     store.Store          // Favorites store (file, MySQL, or Redis)
	tracker   tracker.Tracker      // Search log + ranking counters
	validator *validator.Validate  // Validator for input validation
	metrics   *metrics.Metrics     // Metrics collector
	logger    *logger.Logger       // Structured logger
}

// NewPaisService creates a new country service
//
// Parameters:
//   - p: country data provider
//   - bl: blacklist guard (loaded once at startup)
//   - st: any implementation of the Store interface
//   - tr: search ranking tracker
//   - m: metrics collector (optional, can be nil)
//   - log: logger (optional, can be nil)
func NewPaisService(p provider.Provider, bl *blacklist.Blacklist, st store.Store, tr tracker.Tracker, m *metrics.Metrics, log *logger.Logger) *PaisService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &PaisService{
		provider:  p,
		blacklist: bl,
		store:     st,
		tracker:   tr,
		validator: validator.New(),
		metrics:   m,
		logger:    log.WithComponent("PaisService"),
	}
}

// GetCountry looks up a country by (partial or full) name
//
// Flow:
//  1. Validate the name
//  2. Query the provider
//  3. Record the search and bump the ranking (best-effort: a tracker failure
//     is logged but never fails the lookup)
func (s *PaisService) GetCountry(ctx context.Context, name string) (*models.Country, error) {
	name, err := s.validName(name)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("country", name).Msg("Looking up country")
	country, err := s.provider.Lookup(ctx, name)
	if err != nil {
		s.trackLookupError(name, err)
		return nil, err
	}

	// Order matters: search log first, then ranking
	if err := s.tracker.RecordSearch(country); err != nil {
		s.logger.Warn().Err(err).Str("country", country.Name).Msg("Failed to record search")
	}
	if err := s.tracker.BumpRanking(country); err != nil {
		s.logger.Warn().Err(err).Str("country", country.Name).Msg("Failed to bump ranking")
	}

	s.logger.Info().
		Str("country", country.Name).
		Str("region", country.Region).
		Msg("Country lookup successful")
	if s.metrics != nil {
		s.metrics.CountryLookupsTotal.WithLabelValues("success").Inc()
	}
	return country, nil
}

// AddFavorite looks up a country and stores it as a favorite
//
// Flow:
//  1. Validate the name
//  2. Query the provider (propagates not-found)
//  3. Check the blacklist against the canonical name -> 403
//  4. Store (propagates 409 on duplicate)
func (s *PaisService) AddFavorite(ctx context.Context, name string) (*models.Country, error) {
	name, err := s.validName(name)
	if err != nil {
		return nil, err
	}

	country, err := s.provider.Lookup(ctx, name)
	if err != nil {
		s.trackLookupError(name, err)
		return nil, err
	}

	// Policy check lives here, not in the store: the canonical name decides,
	// never the raw query
	if s.blacklist.IsRestricted(country.Name) {
		s.logger.Warn().Str("country", country.Name).Msg("Country is blacklisted")
		s.trackFavoriteOp("add", "forbidden")
		return nil, errs.Forbidden("País restringido por política")
	}

	stored, err := s.store.Add(country)
	if err != nil {
		if errs.IsStatus(err, http.StatusConflict) {
			s.logger.Debug().Str("country", country.Name).Msg("Country already a favorite")
			s.trackFavoriteOp("add", "conflict")
		} else {
			s.logger.Error().Err(err).Str("country", country.Name).Msg("Store error adding favorite")
			s.trackFavoriteOp("add", "error")
		}
		return nil, err
	}

	s.logger.Info().
		Str("country", stored.Name).
		Str("region", stored.Region).
		Msg("Favorite added")
	s.trackFavoriteOp("add", "success")
	return stored, nil
}

// ListFavorites returns all favorites grouped by region, verbatim from the
// store
func (s *PaisService) ListFavorites() (models.Favorites, error) {
	favorites, err := s.store.ListGroupedByRegion()
	if err != nil {
		s.logger.Error().Err(err).Msg("Store error listing favorites")
		s.trackFavoriteOp("list", "error")
		return nil, err
	}
	s.trackFavoriteOp("list", "success")
	return favorites, nil
}

// RemoveFavorite deletes a favorite by name. Returns false when the country
// is not a favorite in any region.
func (s *PaisService) RemoveFavorite(name string) (bool, error) {
	name, err := s.validName(name)
	if err != nil {
		return false, err
	}

	removed, err := s.store.Remove(name)
	if err != nil {
		s.logger.Error().Err(err).Str("country", name).Msg("Store error removing favorite")
		s.trackFavoriteOp("remove", "error")
		return false, err
	}

	if removed {
		s.logger.Info().Str("country", name).Msg("Favorite removed")
		s.trackFavoriteOp("remove", "success")
	} else {
		s.trackFavoriteOp("remove", "not_found")
	}
	return removed, nil
}

// GetRanking returns the per-region search ranking, verbatim from the tracker
func (s *PaisService) GetRanking() (models.Ranking, error) {
	ranking, err := s.tracker.Ranking()
	if err != nil {
		s.logger.Error().Err(err).Msg("Tracker error reading ranking")
		return nil, err
	}
	return ranking, nil
}

// Close cleans up resources
// This will close the underlying store and tracker
func (s *PaisService) Close() error {
	if err := s.store.Close(); err != nil {
		return err
	}
	return s.tracker.Close()
}

// validName trims the raw query and rejects empty input
func (s *PaisService) validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Var(name, "required"); err != nil {
		s.logger.Warn().Msg("Empty country name")
		if s.metrics != nil {
			s.metrics.CountryLookupsErrors.WithLabelValues("validation").Inc()
		}
		return "", errs.Validation("El nombre del país es requerido")
	}
	return name, nil
}

// trackLookupError classifies a provider failure for metrics
func (s *PaisService) trackLookupError(name string, err error) {
	if errs.IsStatus(err, http.StatusNotFound) {
		s.logger.Debug().Str("country", name).Msg("Country not found")
		if s.metrics != nil {
			s.metrics.CountryLookupsNotFound.Inc()
			s.metrics.CountryLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return
	}
	s.logger.Error().Err(err).Str("country", name).Msg("Provider error during lookup")
	if s.metrics != nil {
		s.metrics.CountryLookupsErrors.WithLabelValues("provider_error").Inc()
	}
}

// trackFavoriteOp records one favorite operation outcome
func (s *PaisService) trackFavoriteOp(operation, status string) {
	if s.metrics != nil {
		s.metrics.FavoriteOpsTotal.WithLabelValues(operation, status).Inc()
	}
}
