package pais

import (
	"github.com/go-chi/chi/v5"
	"github.com/paislab/pais-api/internal/handler"
)

// SetupRoutes configures all /pais endpoints
// This function is called by the main router to setup /pais/* endpoints
//
// Static routes (favorito, favoritos, ranking) are registered before the
// dynamic {nombre} route so a lookup for a country can never shadow them.
// chi also prefers static segments over wildcards, but the ordering here is
// intentional, do not reorder.
func SetupRoutes(paisHandler *handler.PaisHandler) chi.Router {
	r := chi.NewRouter()

	// Favorites
	// GET /pais/favoritos, POST /pais/favorito, DELETE /pais/favorito/{nombre}
	r.Get("/favoritos", paisHandler.ListFavorites)
	r.Post("/favorito", paisHandler.AddFavorite)
	r.Delete("/favorito/{nombre}", paisHandler.RemoveFavorite)

	// Search ranking
	// GET /pais/ranking
	r.Get("/ranking", paisHandler.GetRanking)

	// Country lookup (dynamic, must stay last)
	// GET /pais/{nombre}
	r.Get("/{nombre}", paisHandler.GetCountry)

	return r
}
