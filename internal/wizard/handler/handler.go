// Package handler exposes the wizard engine over HTTP. One route per
// transition; every session-scoped route requires the session token issued at
// boot and rejects tokens minted for another session.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"caseflow/internal/embed"
	"caseflow/internal/jwtsession"
	"caseflow/internal/platform/middleware"
	"caseflow/internal/wizard/model"
	"caseflow/internal/wizard/service"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/httputil"
)

// sessionTokenTTL bounds how long an issued token can drive its session.
const sessionTokenTTL = 24 * time.Hour

// Service defines the wizard operations the handler drives.
type Service interface {
	CreateSession(ctx context.Context, clientID, hash string) (service.Snapshot, error)
	CreateSessionWithCase(ctx context.Context, clientID, caseID string) (service.Snapshot, error)
	GetState(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
	SelectCase(ctx context.Context, sessionID uuid.UUID, caseID string) (service.Snapshot, error)
	SelectJurisdiction(ctx context.Context, sessionID uuid.UUID, name string) (service.Snapshot, error)
	Answer(ctx context.Context, sessionID uuid.UUID, questionID string, value any) (service.Snapshot, error)
	ToggleUnknown(ctx context.Context, sessionID uuid.UUID, questionID string) (service.Snapshot, error)
	NextQuestion(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	PreviousQuestion(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	SubmitContact(ctx context.Context, sessionID uuid.UUID, contact model.Contact, rawUA string) (service.Snapshot, error)
	Reset(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	SetLanguage(ctx context.Context, sessionID uuid.UUID, locale model.Locale) (service.Snapshot, error)
	OpenHelp(ctx context.Context, sessionID uuid.UUID, topic string) (service.Snapshot, error)
	CloseHelp(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	DismissMissingData(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	ShowLegal(ctx context.Context, sessionID uuid.UUID, page model.LegalPage) (service.Snapshot, error)
	CloseLegal(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	Back(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	Forward(ctx context.Context, sessionID uuid.UUID) (service.Snapshot, error)
	ReportHeight(ctx context.Context, sessionID uuid.UUID, height int) error
	EmbedMessage(ctx context.Context, sessionID uuid.UUID) (*embed.Message, error)
}

// Handler wires wizard endpoints to the session service.
type Handler struct {
	service Service
	tokens  *jwtsession.Service
	logger  *slog.Logger
}

// New constructs a wizard handler with its dependencies.
func New(service Service, tokens *jwtsession.Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
		logger:  logger,
	}
}

// Register mounts wizard endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/wizard/sessions", h.handleCreateSession)
	// Route-parameter boot: the path supplies the case ID and hash parsing is
	// suppressed entirely.
	r.Post("/wizard/sessions/case/{caseID}", h.handleCreateSessionWithCase)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(jwtsession.NewServiceAdapter(h.tokens), h.logger))

		r.Route("/wizard/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleGetState)
			r.Delete("/", h.handleEndSession)
			r.Post("/case", h.handleSelectCase)
			r.Post("/jurisdiction", h.handleSelectJurisdiction)
			r.Post("/answers", h.handleAnswer)
			r.Post("/answers/unknown", h.handleToggleUnknown)
			r.Post("/next", h.handleNextQuestion)
			r.Post("/previous", h.handlePreviousQuestion)
			r.Post("/contact", h.handleSubmitContact)
			r.Post("/reset", h.handleReset)
			r.Post("/language", h.handleSetLanguage)
			r.Post("/help/open", h.handleOpenHelp)
			r.Post("/help/close", h.handleCloseHelp)
			r.Post("/missing-data/dismiss", h.handleDismissMissingData)
			r.Post("/legal/open", h.handleShowLegal)
			r.Post("/legal/close", h.handleCloseLegal)
			r.Post("/back", h.handleBack)
			r.Post("/forward", h.handleForward)
			// Embed variant: the hosting page reports frame heights and polls
			// for the debounced resize message to relay across the boundary.
			r.Post("/resize", h.handleReportHeight)
			r.Get("/resize", h.handleEmbedMessage)
		})
	})
}

// sessionID extracts the path session ID and checks it against the one the
// token was issued for.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "sessionID")
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid session id"))
		return uuid.Nil, false
	}
	if middleware.GetSessionID(r.Context()) != sessionID.String() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "token does not match session"))
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[CreateSessionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if req.ClientID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "clientId is required"))
		return
	}

	snap, err := h.service.CreateSession(ctx, req.ClientID, req.Hash)
	if err != nil {
		h.writeServiceError(ctx, w, "create session", err)
		return
	}
	h.writeSessionCreated(ctx, w, snap)
}

func (h *Handler) handleCreateSessionWithCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[CreateSessionRequest](w, r, h.logger)
	if !ok {
		return
	}
	if req.ClientID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "clientId is required"))
		return
	}

	snap, err := h.service.CreateSessionWithCase(ctx, req.ClientID, chi.URLParam(r, "caseID"))
	if err != nil {
		h.writeServiceError(ctx, w, "create session with case", err)
		return
	}
	h.writeSessionCreated(ctx, w, snap)
}

func (h *Handler) writeSessionCreated(ctx context.Context, w http.ResponseWriter, snap service.Snapshot) {
	token, err := h.tokens.GenerateSessionToken(snap.SessionID, "wizard-web", sessionTokenTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "session token generation failed",
			"request_id", middleware.GetRequestID(ctx),
			"session_id", snap.SessionID.String(),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "could not issue session token"))
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, SessionResponse{Token: token, Snapshot: snap})
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	snap, err := h.service.GetState(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(r.Context(), w, "get state", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if err := h.service.EndSession(r.Context(), sessionID); err != nil {
		h.writeServiceError(r.Context(), w, "end session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSelectCase(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[SelectCaseRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "select case")(h.service.SelectCase(r.Context(), sessionID, req.CaseID))
}

func (h *Handler) handleSelectJurisdiction(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[SelectJurisdictionRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "select jurisdiction")(h.service.SelectJurisdiction(r.Context(), sessionID, req.Name))
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[AnswerRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "answer")(h.service.Answer(r.Context(), sessionID, req.QuestionID, req.Value))
}

func (h *Handler) handleToggleUnknown(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[ToggleUnknownRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "toggle unknown")(h.service.ToggleUnknown(r.Context(), sessionID, req.QuestionID))
}

func (h *Handler) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "next question")(h.service.NextQuestion(r.Context(), sessionID))
}

func (h *Handler) handlePreviousQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "previous question")(h.service.PreviousQuestion(r.Context(), sessionID))
}

func (h *Handler) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[SubmitContactRequest](w, r, h.logger)
	if !ok {
		return
	}
	contact := model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Consent: req.Consent,
	}
	h.respond(w, r, "submit contact")(h.service.SubmitContact(r.Context(), sessionID, contact, r.UserAgent()))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "reset")(h.service.Reset(r.Context(), sessionID))
}

func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[SetLanguageRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "set language")(h.service.SetLanguage(r.Context(), sessionID, model.Locale(req.Language)))
}

func (h *Handler) handleOpenHelp(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[OpenHelpRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "open help")(h.service.OpenHelp(r.Context(), sessionID, req.Topic))
}

func (h *Handler) handleCloseHelp(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "close help")(h.service.CloseHelp(r.Context(), sessionID))
}

func (h *Handler) handleDismissMissingData(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "dismiss missing data")(h.service.DismissMissingData(r.Context(), sessionID))
}

func (h *Handler) handleShowLegal(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[ShowLegalRequest](w, r, h.logger)
	if !ok {
		return
	}
	h.respond(w, r, "show legal")(h.service.ShowLegal(r.Context(), sessionID, model.LegalPage(req.Page)))
}

func (h *Handler) handleCloseLegal(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "close legal")(h.service.CloseLegal(r.Context(), sessionID))
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "back")(h.service.Back(r.Context(), sessionID))
}

func (h *Handler) handleForward(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.respond(w, r, "forward")(h.service.Forward(r.Context(), sessionID))
}

func (h *Handler) handleReportHeight(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.Decode[ResizeRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := h.service.ReportHeight(r.Context(), sessionID, req.Height); err != nil {
		h.writeServiceError(r.Context(), w, "report height", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleEmbedMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	msg, err := h.service.EmbedMessage(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(r.Context(), w, "embed message", err)
		return
	}
	if msg == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, msg)
}

// respond writes the transition result: the snapshot on success, the mapped
// domain error otherwise.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, action string) func(service.Snapshot, error) {
	return func(snap service.Snapshot, err error) {
		if err != nil {
			h.writeServiceError(r.Context(), w, action, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, snap)
	}
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, action string, err error) {
	h.logger.WarnContext(ctx, action+" failed",
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
	httputil.WriteError(w, err)
}
