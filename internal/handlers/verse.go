package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sandrotonal/quran-semantic-api/internal/config"
	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/services"
)

// VerseHandler handles verse resolution and similarity endpoints
type VerseHandler struct {
	resolver *services.VerseResolver
	engine   *services.SimilarityEngine
	cfg      *config.Config
}

// NewVerseHandler creates a new verse handler
func NewVerseHandler(resolver *services.VerseResolver, engine *services.SimilarityEngine, cfg *config.Config) *VerseHandler {
	return &VerseHandler{
		resolver: resolver,
		engine:   engine,
		cfg:      cfg,
	}
}

// GetVerse handles GET /verse/:surah/:verse
func (h *VerseHandler) GetVerse(c echo.Context) error {
	ctx := c.Request().Context()

	surah, err := strconv.Atoi(c.Param("surah"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid surah number")
	}
	verse, err := strconv.Atoi(c.Param("verse"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid verse number")
	}

	v, err := h.resolver.Resolve(ctx, surah, verse)
	if err != nil {
		return verseError(c, err)
	}

	return c.JSON(http.StatusOK, models.VerseResponse{
		Verse: *v,
		Meta: models.VerseMeta{
			SurahVerseCount: config.VerseCount(surah),
		},
	})
}

// FindSimilar handles POST /similar
func (h *VerseHandler) FindSimilar(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SimilarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Surah == 0 || req.Verse == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing surah or verse in request body")
	}

	limit := req.Limit
	if limit <= 0 || limit > h.cfg.MaxLimit {
		limit = h.cfg.DefaultLimit
	}

	center, similar, err := h.engine.FindSimilar(ctx, req.Surah, req.Verse, limit)
	if err != nil {
		return verseError(c, err)
	}

	return c.JSON(http.StatusOK, models.SimilarResponse{
		Center:  *center,
		Similar: similar,
	})
}

// verseError maps domain errors to HTTP status codes. Candidate-level
// failures were already swallowed inside the engine; whatever reaches here
// concerns the target verse.
func verseError(c echo.Context, err error) error {
	var (
		invalidRef *models.InvalidReferenceError
		upstream   *models.UpstreamFetchError
		timeout    *models.TimeoutError
	)
	switch {
	case errors.As(err, &invalidRef):
		return echo.NewHTTPError(http.StatusBadRequest, invalidRef.Error())
	case errors.As(err, &upstream):
		return echo.NewHTTPError(http.StatusNotFound, "Verse could not be resolved")
	case errors.As(err, &timeout):
		return echo.NewHTTPError(http.StatusGatewayTimeout, "Upstream resolution timed out")
	default:
		c.Logger().Errorf("verse request failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

// RegisterRoutes registers verse routes
func (h *VerseHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/verse/:surah/:verse", h.GetVerse)
	g.POST("/similar", h.FindSimilar)
}
