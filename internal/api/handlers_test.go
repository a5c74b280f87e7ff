package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"example.com/extracurricular/internal/api"
	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/events"
)

func newTestMux() *http.ServeMux {
	store := domain.NewStore()
	service := domain.NewService(store, events.NopPublisher{}, zap.NewNop())
	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func signupTarget(activity, email string) string {
	return fmt.Sprintf("/activities/%s/signup?email=%s", url.PathEscape(activity), url.QueryEscape(email))
}

func unregisterTarget(activity, email string) string {
	return fmt.Sprintf("/activities/%s/unregister?email=%s", url.PathEscape(activity), url.QueryEscape(email))
}

func listActivities(t *testing.T, mux *http.ServeMux) map[string]api.ActivityView {
	t.Helper()
	rr := do(t, mux, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)

	var activities map[string]api.ActivityView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activities))
	return activities
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	return payload["detail"]
}

func TestListActivitiesReturnsSeededCatalogue(t *testing.T) {
	mux := newTestMux()
	activities := listActivities(t, mux)

	require.Len(t, activities, 9)
	for _, name := range []string{
		"Baseball Team", "Soccer Club", "Music Band", "Drama Club",
		"Debate Team", "Science Club", "Chess Club", "Programming Class", "Gym Class",
	} {
		require.Contains(t, activities, name)
	}

	baseball := activities["Baseball Team"]
	require.Equal(t, "Join our competitive baseball team and compete in league games", baseball.Description)
	require.Equal(t, "Mondays and Thursdays, 4:00 PM - 5:30 PM", baseball.Schedule)
	require.Equal(t, 15, baseball.MaxParticipants)
	require.Equal(t, []string{"alex@mergington.edu"}, baseball.Participants)

	require.Len(t, activities["Music Band"].Participants, 2)
}

func TestListActivitiesRostersAreUnique(t *testing.T) {
	mux := newTestMux()

	for name, activity := range listActivities(t, mux) {
		seen := make(map[string]bool, len(activity.Participants))
		for _, email := range activity.Participants {
			require.Falsef(t, seen[email], "duplicate %s in %s", email, name)
			seen[email] = true
		}
	}
}

func TestSignupSuccess(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, signupTarget("Baseball Team", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "Signed up newstudent@mergington.edu for Baseball Team", resp.Message)

	activities := listActivities(t, mux)
	require.Contains(t, activities["Baseball Team"].Participants, "newstudent@mergington.edu")
}

func TestSignupUnknownActivity(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, signupTarget("Nonexistent Activity", "student@mergington.edu"))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Activity not found", decodeDetail(t, rr))
}

func TestSignupDuplicateEmail(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, signupTarget("Drama Club", "duplicate@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, mux, http.MethodPost, signupTarget("Drama Club", "duplicate@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "duplicate@mergington.edu is already signed up for this activity", decodeDetail(t, rr))
}

func TestSignupSeededParticipantRejected(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, signupTarget("Baseball Team", "alex@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, decodeDetail(t, rr), "already signed up")
}

func TestSignupMissingEmail(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/signup")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "email query parameter is required", decodeDetail(t, rr))
}

func TestUnregisterSuccessLeavesOthersUntouched(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodDelete, unregisterTarget("Music Band", "maya@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "Unregistered maya@mergington.edu from Music Band", resp.Message)

	roster := listActivities(t, mux)["Music Band"].Participants
	require.NotContains(t, roster, "maya@mergington.edu")
	require.Contains(t, roster, "lucas@mergington.edu")
}

func TestUnregisterUnknownActivity(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodDelete, unregisterTarget("Nonexistent Activity", "student@mergington.edu"))
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Activity not found", decodeDetail(t, rr))
}

func TestUnregisterAbsentParticipant(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodDelete, unregisterTarget("Baseball Team", "nosuchstudent@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "nosuchstudent@mergington.edu is not signed up for this activity", decodeDetail(t, rr))
}

func TestUnregisterTwiceFailsSecondTime(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, signupTarget("Soccer Club", "student@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, mux, http.MethodDelete, unregisterTarget("Soccer Club", "student@mergington.edu"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, mux, http.MethodDelete, unregisterTarget("Soccer Club", "student@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, decodeDetail(t, rr), "not signed up")
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	mux := newTestMux()
	email := "workflow@mergington.edu"

	require.NotContains(t, listActivities(t, mux)["Science Club"].Participants, email)

	rr := do(t, mux, http.MethodPost, signupTarget("Science Club", email))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, listActivities(t, mux)["Science Club"].Participants, email)

	rr = do(t, mux, http.MethodDelete, unregisterTarget("Science Club", email))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, listActivities(t, mux)["Science Club"].Participants, email)
}

func TestChessClubMultipleSignupsAndRemoval(t *testing.T) {
	mux := newTestMux()
	students := []string{
		"student1@mergington.edu",
		"student2@mergington.edu",
		"student3@mergington.edu",
	}

	for _, email := range students {
		rr := do(t, mux, http.MethodPost, signupTarget("Chess Club", email))
		require.Equal(t, http.StatusOK, rr.Code)
	}
	require.Len(t, listActivities(t, mux)["Chess Club"].Participants, 5)

	rr := do(t, mux, http.MethodDelete, unregisterTarget("Chess Club", students[1]))
	require.Equal(t, http.StatusOK, rr.Code)

	roster := listActivities(t, mux)["Chess Club"].Participants
	require.Len(t, roster, 4)
	require.Contains(t, roster, students[0])
	require.NotContains(t, roster, students[1])
	require.Contains(t, roster, students[2])
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, "/activities")
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = do(t, mux, http.MethodGet, signupTarget("Chess Club", "student@mergington.edu"))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = do(t, mux, http.MethodPost, unregisterTarget("Chess Club", "student@mergington.edu"))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestUnknownActionSuffix(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/enroll")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "not found", decodeDetail(t, rr))
}

func TestHealthz(t *testing.T) {
	mux := newTestMux()

	rr := do(t, mux, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}
