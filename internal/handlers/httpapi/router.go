// Package httpapi serves the compendium over JSON HTTP routes for the web
// frontend.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
)

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	CompendiumService compendium.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CompendiumService == nil {
		return errors.InvalidArgument("compendium service is required")
	}
	return nil
}

// Handler implements the compendium HTTP routes
type Handler struct {
	compendiumService compendium.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		compendiumService: cfg.CompendiumService,
	}, nil
}

// Router returns a chi router with every route mounted
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the compendium routes on r
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/render", h.HandleRenderPayload)

	r.Route("/rulesets/{rulesetID}/entities", func(r chi.Router) {
		r.Get("/", h.HandleListEntities)
		r.Get("/{entityID}", h.HandleGetEntity)
		r.Get("/{entityID}/render", h.HandleRenderEntity)
		r.Post("/{entityID}/hit-points", h.HandleRollHitPoints)
	})

	r.Route("/overlays", func(r chi.Router) {
		r.Get("/", h.HandleListOverlays)
		r.Post("/", h.HandleCreateOverlay)
		r.Put("/{overlayID}", h.HandleUpdateOverlay)
		r.Delete("/{overlayID}", h.HandleDeleteOverlay)
	})
}

type listEntitiesResponse struct {
	Entities []*ruleset.Entity `json:"entities"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	PerPage  int               `json:"per_page"`
}

// HandleListEntities returns one page of a ruleset's catalog.
// GET /rulesets/{rulesetID}/entities?type=&search=&page=&per_page=
func (h *Handler) HandleListEntities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, r, err)
		return
	}
	perPage, err := queryInt(r, "per_page")
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.compendiumService.ListEntities(r.Context(), &compendium.ListEntitiesInput{
		RulesetID:  chi.URLParam(r, "rulesetID"),
		EntityType: query.Get("type"),
		Search:     query.Get("search"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	entities := output.Entities
	if entities == nil {
		entities = []*ruleset.Entity{}
	}
	writeJSON(w, http.StatusOK, listEntitiesResponse{
		Entities: entities,
		Total:    output.Total,
		Page:     output.Page,
		Pages:    output.Pages,
		PerPage:  output.PerPage,
	})
}

// entityResponse is a stored entity. Effective reads add the overlay flags.
type entityResponse struct {
	*ruleset.Entity
	IsDisabled *bool `json:"is_disabled,omitempty"`
	HasOverlay *bool `json:"has_overlay,omitempty"`
}

// HandleGetEntity returns a stored entity.
// GET /rulesets/{rulesetID}/entities/{entityID}?effective=true&owner_id=&campaign_id=
func (h *Handler) HandleGetEntity(w http.ResponseWriter, r *http.Request) {
	scope, err := overlayScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.compendiumService.GetEntity(r.Context(), &compendium.GetEntityInput{
		RulesetID:    chi.URLParam(r, "rulesetID"),
		EntityID:     chi.URLParam(r, "entityID"),
		OverlayScope: scope,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := entityResponse{Entity: output.Entity}
	if scope.Effective {
		resp.IsDisabled = &output.IsDisabled
		resp.HasOverlay = &output.HasOverlay
	}
	writeJSON(w, http.StatusOK, resp)
}

type renderEntityResponse struct {
	Entity     *ruleset.Entity `json:"entity"`
	Fragment   *render.Node    `json:"fragment"`
	IsDisabled bool            `json:"is_disabled"`
	HasOverlay bool            `json:"has_overlay"`
}

// HandleRenderEntity renders a stored entity.
// GET /rulesets/{rulesetID}/entities/{entityID}/render?expand_raw=true&effective=true&owner_id=&campaign_id=
func (h *Handler) HandleRenderEntity(w http.ResponseWriter, r *http.Request) {
	expand, err := queryBool(r, "expand_raw")
	if err != nil {
		writeError(w, r, err)
		return
	}
	scope, err := overlayScope(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.compendiumService.RenderEntity(r.Context(), &compendium.RenderEntityInput{
		RulesetID:    chi.URLParam(r, "rulesetID"),
		EntityID:     chi.URLParam(r, "entityID"),
		ExpandRaw:    expand,
		OverlayScope: scope,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, renderEntityResponse{
		Entity:     output.Entity,
		Fragment:   output.Fragment,
		IsDisabled: output.IsDisabled,
		HasOverlay: output.HasOverlay,
	})
}

func overlayScope(r *http.Request) (compendium.OverlayScope, error) {
	effective, err := queryBool(r, "effective")
	if err != nil {
		return compendium.OverlayScope{}, err
	}

	query := r.URL.Query()
	return compendium.OverlayScope{
		Effective:  effective,
		OwnerID:    query.Get("owner_id"),
		CampaignID: query.Get("campaign_id"),
	}, nil
}

type renderPayloadRequest struct {
	EntityType string        `json:"entity_type"`
	EntityData *jsonv.Object `json:"entity_data"`
	ExpandRaw  bool          `json:"expand_raw"`
}

type renderPayloadResponse struct {
	Fragment *render.Node `json:"fragment"`
}

// HandleRenderPayload renders an unsaved payload. Member order of
// entity_data is kept.
// POST /render
func (h *Handler) HandleRenderPayload(w http.ResponseWriter, r *http.Request) {
	var req renderPayloadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.compendiumService.RenderPayload(r.Context(), &compendium.RenderPayloadInput{
		EntityType: req.EntityType,
		Data:       req.EntityData,
		ExpandRaw:  req.ExpandRaw,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, renderPayloadResponse{Fragment: output.Fragment})
}

type rollHitPointsResponse struct {
	Notation string `json:"notation"`
	Rolls    []int  `json:"rolls"`
	Modifier int    `json:"modifier"`
	Total    int    `json:"total"`
}

// HandleRollHitPoints rolls a creature's hit dice.
// POST /rulesets/{rulesetID}/entities/{entityID}/hit-points
func (h *Handler) HandleRollHitPoints(w http.ResponseWriter, r *http.Request) {
	output, err := h.compendiumService.RollHitPoints(r.Context(), &compendium.RollHitPointsInput{
		RulesetID: chi.URLParam(r, "rulesetID"),
		EntityID:  chi.URLParam(r, "entityID"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rollHitPointsResponse{
		Notation: output.Notation,
		Rolls:    output.Rolls,
		Modifier: output.Modifier,
		Total:    output.Total,
	})
}

type overlaysResponse struct {
	Overlays []*ruleset.Overlay `json:"overlays"`
}

// HandleListOverlays lists an owner's overlays.
// GET /overlays?owner_id=&ruleset_id=&campaign_id=&entity_type=
func (h *Handler) HandleListOverlays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.compendiumService.ListOverlays(r.Context(), &compendium.ListOverlaysInput{
		OwnerID:    query.Get("owner_id"),
		RulesetID:  query.Get("ruleset_id"),
		CampaignID: query.Get("campaign_id"),
		EntityType: query.Get("entity_type"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	overlays := output.Overlays
	if overlays == nil {
		overlays = []*ruleset.Overlay{}
	}
	writeJSON(w, http.StatusOK, overlaysResponse{Overlays: overlays})
}

type createOverlayRequest struct {
	OwnerID     string        `json:"owner_id"`
	RulesetID   string        `json:"ruleset_id"`
	EntityType  string        `json:"entity_type"`
	SourceKey   string        `json:"source_key"`
	OverlayType string        `json:"overlay_type"`
	OverlayData *jsonv.Object `json:"overlay_data"`
	CampaignID  string        `json:"campaign_id"`
}

// HandleCreateOverlay records an overlay on an existing entity.
// POST /overlays
func (h *Handler) HandleCreateOverlay(w http.ResponseWriter, r *http.Request) {
	var req createOverlayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.compendiumService.CreateOverlay(r.Context(), &compendium.CreateOverlayInput{
		OwnerID:     req.OwnerID,
		RulesetID:   req.RulesetID,
		EntityType:  req.EntityType,
		SourceKey:   req.SourceKey,
		OverlayType: req.OverlayType,
		Data:        req.OverlayData,
		CampaignID:  req.CampaignID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Overlay)
}

type updateOverlayRequest struct {
	OwnerID     string        `json:"owner_id"`
	OverlayType string        `json:"overlay_type"`
	OverlayData *jsonv.Object `json:"overlay_data"`
}

// HandleUpdateOverlay changes an overlay's type or data.
// PUT /overlays/{overlayID}
func (h *Handler) HandleUpdateOverlay(w http.ResponseWriter, r *http.Request) {
	var req updateOverlayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.compendiumService.UpdateOverlay(r.Context(), &compendium.UpdateOverlayInput{
		OwnerID:     req.OwnerID,
		OverlayID:   chi.URLParam(r, "overlayID"),
		OverlayType: req.OverlayType,
		Data:        req.OverlayData,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Overlay)
}

type deleteOverlayResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// HandleDeleteOverlay removes an overlay.
// DELETE /overlays/{overlayID}?owner_id=
func (h *Handler) HandleDeleteOverlay(w http.ResponseWriter, r *http.Request) {
	overlayID := chi.URLParam(r, "overlayID")

	_, err := h.compendiumService.DeleteOverlay(r.Context(), &compendium.DeleteOverlayInput{
		OwnerID:   r.URL.Query().Get("owner_id"),
		OverlayID: overlayID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteOverlayResponse{ID: overlayID, Deleted: true})
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError writes a coded error as JSON
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errors.ToHTTP(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}
	writeJSON(w, status, body)
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationBuilder().InvalidField(name, "must be an integer").Build()
	}
	return n, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.NewValidationBuilder().InvalidField(name, "must be a boolean").Build()
	}
	return b, nil
}
