// Package api exposes HTTP handlers for the extracurricular roster service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/extracurricular/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listActivities(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
	}
}

// activityAction routes /activities/{name}/signup and /activities/{name}/unregister.
// The activity name is everything between the prefix and the final segment,
// taken verbatim from the decoded path, spaces included.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "unsupported method")
			return
		}
		h.unregister(w, r, name)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.service.ListActivities(r.Context())

	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, activityName string) {
	req := rosterRequestFrom(r, activityName)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.Signup(r.Context(), req.Activity, req.Email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is already signed up for this activity", req.Email))
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.Activity),
		})
	}
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, activityName string) {
	req := rosterRequestFrom(r, activityName)
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.Unregister(r.Context(), req.Activity, req.Email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrNotSignedUp):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not signed up for this activity", req.Email))
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.Activity),
		})
	}
}

// rosterRequest carries the parameters for both mutating operations.
type rosterRequest struct {
	Activity string
	Email    string
}

func rosterRequestFrom(r *http.Request, activityName string) rosterRequest {
	return rosterRequest{
		Activity: activityName,
		Email:    strings.TrimSpace(r.URL.Query().Get("email")),
	}
}

// Validate ensures request correctness.
func (r rosterRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email query parameter is required")
	}
	return nil
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityView exposes one activity as served by the list endpoint.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
