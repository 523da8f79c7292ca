package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
	"github.com/paislab/pais-api/internal/service"
)

// PaisHandler handles HTTP requests for countries and favorites
// This is the handler layer - it deals with HTTP concerns only
//
// Responsibilities:
//   - Parse HTTP requests (path params, JSON bodies)
//   - Call service methods
//   - Map failure kind -> HTTP status
//   - Format JSON responses ({message} envelope on every failure)
//   - NO business logic (that's in the service layer)
type PaisHandler struct {
	service *service.PaisService
}

// NewPaisHandler creates a new country handler with the given service
func NewPaisHandler(service *service.PaisService) *PaisHandler {
	return &PaisHandler{
		service: service,
	}
}

// favoriteRequest is the body of POST /pais/favorito
type favoriteRequest struct {
	Pais string `json:"pais"`
}

// GetCountry handles GET /pais/{nombre}
// @Summary      Consulta información de un país por nombre
// @Description  Retorna capital, región, moneda, idiomas y población del país
// @Tags         Gestión de Países
// @Accept       json
// @Produce      json
// @Param        nombre  path       string  true  "Nombre (completo o parcial) del país"  example(Chile)
// @Success      200     {object}   models.Country
// @Failure      400     {object}   models.ErrorResponse  "Nombre vacío"
// @Failure      404     {object}   models.ErrorResponse  "País no encontrado"
// @Failure      500     {object}   models.ErrorResponse  "Error interno"
// @Router       /pais/{nombre} [get]
func (h *PaisHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	nombre := strings.TrimSpace(chi.URLParam(r, "nombre"))
	if nombre == "" {
		h.respondError(w, http.StatusBadRequest, "El nombre del país es requerido")
		return
	}

	country, err := h.service.GetCountry(r.Context(), nombre)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, country)
}

// AddFavorite handles POST /pais/favorito
// @Summary      Agrega un país a la lista de favoritos
// @Tags         Gestión de Países
// @Accept       json
// @Produce      json
// @Param        request  body       handler.favoriteRequest  true  "País a agregar"
// @Success      201      {object}   models.Country
// @Failure      400      {object}   models.ErrorResponse  "Falta el país en el cuerpo"
// @Failure      403      {object}   models.ErrorResponse  "País restringido"
// @Failure      404      {object}   models.ErrorResponse  "País no encontrado"
// @Failure      409      {object}   models.ErrorResponse  "Ya está en favoritos"
// @Failure      500      {object}   models.ErrorResponse  "Error interno"
// @Router       /pais/favorito [post]
func (h *PaisHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Debe enviar un país en el cuerpo")
		return
	}
	if strings.TrimSpace(req.Pais) == "" {
		h.respondError(w, http.StatusBadRequest, "Debe enviar un país en el cuerpo")
		return
	}

	country, err := h.service.AddFavorite(r.Context(), req.Pais)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, country)
}

// ListFavorites handles GET /pais/favoritos
// @Summary      Obtiene los países favoritos agrupados por región
// @Tags         Gestión de Países
// @Produce      json
// @Success      200  {object}   models.Favorites
// @Failure      500  {object}   models.ErrorResponse  "Error interno"
// @Router       /pais/favoritos [get]
func (h *PaisHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.service.ListFavorites()
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, favorites)
}

// RemoveFavorite handles DELETE /pais/favorito/{nombre}
// @Summary      Elimina un país de la lista de favoritos
// @Tags         Gestión de Países
// @Produce      json
// @Param        nombre  path       string  true  "Nombre del país a eliminar"
// @Success      200     {object}   models.MessageResponse
// @Failure      400     {object}   models.ErrorResponse  "Nombre vacío"
// @Failure      404     {object}   models.ErrorResponse  "No está en favoritos"
// @Failure      500     {object}   models.ErrorResponse  "Error interno"
// @Router       /pais/favorito/{nombre} [delete]
func (h *PaisHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	nombre := strings.TrimSpace(chi.URLParam(r, "nombre"))
	if nombre == "" {
		h.respondError(w, http.StatusBadRequest, "Debe especificar un país en la URL")
		return
	}

	removed, err := h.service.RemoveFavorite(nombre)
	if err != nil {
		h.respondFailure(w, err)
		return
	}
	if !removed {
		h.respondError(w, http.StatusNotFound, "País no se encuentra en favoritos")
		return
	}

	h.respondJSON(w, http.StatusOK, models.MessageResponse{Message: "País eliminado de favoritos"})
}

// GetRanking handles GET /pais/ranking
// @Summary      Obtiene el ranking de países más buscados por región
// @Tags         Gestión de Países
// @Produce      json
// @Success      200  {object}   models.Ranking
// @Failure      500  {object}   models.ErrorResponse  "Error interno"
// @Router       /pais/ranking [get]
func (h *PaisHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.service.GetRanking()
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, ranking)
}

// respondFailure maps a service error to its HTTP status.
// Typed errors carry their own safe message; anything else becomes a generic
// 500 so internals never leak to the client.
func (h *PaisHandler) respondFailure(w http.ResponseWriter, err error) {
	status := errs.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		if _, typed := err.(*errs.Error); !typed {
			message = "Error interno del servidor"
		}
	}
	h.respondError(w, status, message)
}

// respondJSON writes a JSON response with the given status code
func (h *PaisHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// If encoding fails, we can't change the status code since headers are already sent
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondError writes an error response with consistent formatting
func (h *PaisHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, models.ErrorResponse{Message: message})
}
