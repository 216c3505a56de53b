package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"spatial-bigraph/internal/bigraph/footprint"
	"spatial-bigraph/internal/bigraph/graph"
	"spatial-bigraph/internal/bigraph/layout"
	"spatial-bigraph/internal/bigraph/models"
	"spatial-bigraph/internal/bigraph/parser"
	"spatial-bigraph/internal/bigraph/surface"
	"spatial-bigraph/internal/common/config"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Settings
// ============================================================

// Settings: параметры сборки по умолчанию для всех запросов.
type Settings struct {
	Convention  surface.Convention
	Strategy    surface.Strategy
	SkipInvalid bool
	Parallelism int
	Logger      graph.Logger
}

// SettingsFromConfig разбирает строковые опции конфигурации.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	convention, ok := surface.ParseConvention(cfg.ExtentConvention)
	if !ok {
		return Settings{}, fmt.Errorf("unknown extent convention %q", cfg.ExtentConvention)
	}
	strategy, ok := surface.ParseStrategy(cfg.Strategy)
	if !ok {
		return Settings{}, fmt.Errorf("unknown nearest strategy %q", cfg.Strategy)
	}
	return Settings{
		Convention:  convention,
		Strategy:    strategy,
		SkipInvalid: cfg.SkipInvalid,
		Parallelism: cfg.Parallelism,
	}, nil
}

// ============================================================
// Bigraph Handler
// ============================================================

type BigraphHandler struct {
	settings Settings
}

func NewBigraphHandler(settings Settings) *BigraphHandler {
	if settings.Logger == nil {
		settings.Logger = log.Default()
	}
	return &BigraphHandler{settings: settings}
}

type buildResponse struct {
	BuildID string          `json:"build_id"`
	Graph   *graph.Bigraph  `json:"graph"`
	Skipped []graph.Skipped `json:"skipped"`
}

type layoutResponse struct {
	BuildID   string                     `json:"build_id"`
	Roots     []string                   `json:"roots"`
	Positions map[string]layout.Position `json:"positions"`
}

// Build собирает биграф этажа из тела запроса.
func (h *BigraphHandler) Build(c fiber.Ctx) error {
	buildID := uuid.NewString()
	log.Printf("[BIGRAPH] Build %s: %d bytes", buildID, len(c.Body()))

	result, apiErr := h.build(c)
	if apiErr != nil {
		log.Printf("[BIGRAPH] Build %s failed: %v", buildID, apiErr)
		return c.Status(apiErr.StatusCode).JSON(apiErr)
	}

	skipped := result.Skipped
	if skipped == nil {
		skipped = []graph.Skipped{}
	}
	return c.JSON(buildResponse{BuildID: buildID, Graph: result.Graph, Skipped: skipped})
}

// Layout возвращает позиции узлов для отрисовки дерева.
func (h *BigraphHandler) Layout(c fiber.Ctx) error {
	buildID := uuid.NewString()
	log.Printf("[LAYOUT] Build %s: %d bytes", buildID, len(c.Body()))

	result, apiErr := h.build(c)
	if apiErr != nil {
		log.Printf("[LAYOUT] Build %s failed: %v", buildID, apiErr)
		return c.Status(apiErr.StatusCode).JSON(apiErr)
	}

	roots := result.Graph.Roots()
	if roots == nil {
		roots = []string{}
	}
	return c.JSON(layoutResponse{
		BuildID:   buildID,
		Roots:     roots,
		Positions: layout.Hierarchy(result.Graph, layout.DefaultOptions()),
	})
}

// Footprint возвращает вид сверху этажа как GeoJSON.
func (h *BigraphHandler) Footprint(c fiber.Ctx) error {
	log.Printf("[FOOTPRINT] Received %d bytes", len(c.Body()))

	floor, apiErr := decodeFloor(c.Body())
	if apiErr != nil {
		return c.Status(apiErr.StatusCode).JSON(apiErr)
	}

	fc, err := footprint.ProjectFloor(floor)
	if err != nil {
		log.Printf("[FOOTPRINT] Projection error: %v", err)
		e := models.APIErrorFrom(err)
		return c.Status(e.StatusCode).JSON(e)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		e := models.APIErrorFrom(err)
		return c.Status(e.StatusCode).JSON(e)
	}
	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(data)
}

// ReadinessProbe отдает активные параметры сборки.
func (h *BigraphHandler) ReadinessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "ready",
		"convention":   h.settings.Convention.String(),
		"strategy":     h.settings.Strategy.String(),
		"skip_invalid": h.settings.SkipInvalid,
	})
}

func (h *BigraphHandler) build(c fiber.Ctx) (*graph.Result, *models.APIError) {
	skip := h.settings.SkipInvalid
	if raw := c.Query("skip_invalid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			e := models.NewAPIError(models.ErrorCodeInvalidQuery, "skip_invalid must be a boolean", raw, http.StatusBadRequest)
			return nil, &e
		}
		skip = v
	}

	floor, apiErr := decodeFloor(c.Body())
	if apiErr != nil {
		return nil, apiErr
	}

	builder := graph.NewBuilder(
		graph.WithConvention(h.settings.Convention),
		graph.WithStrategy(h.settings.Strategy),
		graph.WithSkipInvalid(skip),
		graph.WithParallelism(h.settings.Parallelism),
		graph.WithLogger(h.settings.Logger),
	)
	result, err := builder.Build(floor)
	if err != nil {
		e := models.APIErrorFrom(err)
		return nil, &e
	}
	return result, nil
}

func decodeFloor(body []byte) (*models.Floor, *models.APIError) {
	if len(bytes.TrimSpace(body)) == 0 {
		e := models.NewAPIError(models.ErrorCodeInvalidJSON, "empty body", nil, http.StatusBadRequest)
		return nil, &e
	}
	if !json.Valid(body) {
		e := models.NewAPIError(models.ErrorCodeInvalidJSON, "body is not valid JSON", nil, http.StatusBadRequest)
		return nil, &e
	}

	floor, err := parser.ParseFloor(bytes.NewReader(body))
	if err != nil {
		e := models.APIErrorFrom(err)
		return nil, &e
	}
	return floor, nil
}
