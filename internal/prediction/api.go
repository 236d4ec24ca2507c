package prediction

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lesotho-gov/healthcost/internal/shared/config"
	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
	"github.com/lesotho-gov/healthcost/internal/shared/metrics"
)

// Handler provides HTTP handlers for the prediction module
type Handler struct {
	cfg       config.PredictorConfig
	client    *Client
	presenter *Presenter
	validate  *validator.Validate

	mu       sync.Mutex
	sessions map[string]*Controller
}

// NewHandler creates a prediction handler around a configured client
func NewHandler(cfg config.PredictorConfig, client *Client) *Handler {
	return &Handler{
		cfg:       cfg,
		client:    client,
		presenter: NewPresenter(cfg.CurrencyPrefix),
		validate:  NewFormValidator(),
		sessions:  make(map[string]*Controller),
	}
}

// Routes registers the prediction routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Predict)
	r.Get("/health", h.HealthCheck)
	r.Get("/model-info", h.ModelInfo)

	return r
}

// Predict handles one form submission: validate, build the payload, call
// the upstream once, render the outcome
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	payload, appErr := h.decodeForm(r)
	if appErr != nil {
		// refused client-side; the upstream is never called
		metrics.RecordValidationFailure(h.cfg.Variant)
		metrics.RecordPrediction(h.cfg.Variant, outcomeLabel(appErr.Kind))
		writeError(w, appErr)
		return
	}

	ctrl := h.controllerFor(r.Header.Get("X-Form-Session"))

	view, err := ctrl.Submit(r.Context(), payload)
	if err != nil {
		kind := apperrors.KindOf(err)
		metrics.RecordPrediction(h.cfg.Variant, outcomeLabel(kind))

		if kind == apperrors.KindConflict {
			writeError(w, err)
			return
		}

		// settled failure: return the rendered failure view with the
		// upstream-facing status
		status := http.StatusBadGateway
		var settled *apperrors.AppError
		if errors.As(err, &settled) && settled.HTTPStatus != 0 {
			status = settled.HTTPStatus
		}
		writeJSON(w, status, view)
		return
	}

	metrics.RecordPrediction(h.cfg.Variant, "success")
	writeJSON(w, http.StatusOK, view)
}

// HealthCheck checks upstream prediction service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Health(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"variant": h.cfg.Variant,
	})
}

// ModelInfo proxies the upstream model metadata endpoint
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.client.ModelInfo(r.Context())
	if err != nil {
		writeError(w, apperrors.Wrap(err, "failed to get model info"))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// decodeForm decodes and validates the submission for the configured
// variant, returning the built wire payload
func (h *Handler) decodeForm(r *http.Request) (any, *apperrors.AppError) {
	switch h.cfg.Variant {
	case VariantEconomic:
		var form EconomicForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return nil, apperrors.Validation("invalid request body: "+err.Error(), nil)
		}
		indicators, appErr := form.Validate(h.validate)
		if appErr != nil {
			return nil, appErr
		}
		return BuildEconomicPayload(indicators), nil

	default:
		var form DemographicForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return nil, apperrors.Validation("invalid request body: "+err.Error(), nil)
		}
		profile, appErr := form.Validate(h.validate)
		if appErr != nil {
			return nil, appErr
		}
		return BuildDemographicPayload(profile), nil
	}
}

// controllerFor returns the submission controller for a form session. A
// request without a session id gets a throwaway controller, so duplicate
// suppression only applies to clients that identify their form instance.
// TODO: evict session controllers idle for more than an hour.
func (h *Handler) controllerFor(session string) *Controller {
	if session == "" {
		return NewController(h.client, h.presenter)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctrl, ok := h.sessions[session]
	if !ok {
		ctrl = NewController(h.client, h.presenter)
		h.sessions[session] = ctrl
	}
	return ctrl
}

func outcomeLabel(kind apperrors.Kind) string {
	switch kind {
	case apperrors.KindValidation:
		return "validation"
	case apperrors.KindTransport:
		return "transport"
	case apperrors.KindServer:
		return "server"
	case apperrors.KindSchema:
		return "schema"
	case apperrors.KindConflict:
		return "conflict"
	}
	return "internal"
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		w.WriteHeader(appErr.HTTPStatus)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   appErr.Message,
			"kind":    appErr.Kind,
			"details": appErr.Details,
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
