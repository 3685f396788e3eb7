package assistant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Musasteel/ai-pc-assistant/internal/api"
	"github.com/Musasteel/ai-pc-assistant/internal/middleware"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

type askResponse struct {
	Reply          string   `json:"reply"`
	AffiliateLinks []string `json:"affiliate_links,omitempty"`
}

// Ask handles POST /api/ask.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.ErrNoQuestion)
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		// No session middleware (e.g. credential-less CORS): the question
		// still gets answered, just without carried context.
		sessionID = "anonymous"
	}

	answer, err := h.svc.Ask(r.Context(), sessionID, req.Question)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) {
			api.HandleError(w, api.ErrNoQuestion)
			return
		}
		slog.Error("processing question", "error", err, "session", sessionID)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	api.JSON(w, http.StatusOK, askResponse{
		Reply:          answer.Reply,
		AffiliateLinks: answer.Links,
	})
}
