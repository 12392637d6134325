package routes

import (
	"crypto/subtle"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/hanco1/D2Cdashboard/app"
	"github.com/hanco1/D2Cdashboard/form"
	"github.com/hanco1/D2Cdashboard/httpx"
	"github.com/hanco1/D2Cdashboard/log"
	"github.com/hanco1/D2Cdashboard/store"
)

// GetForm serves the form definition the client renders from.
func GetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, app.Form)
	}
}

// SubmitAssessment validates a submission payload, derives the reviewer
// fields, and persists the record. Validation problems come back all at
// once; nothing is written unless the whole payload is clean.
func SubmitAssessment(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.read_body")
			return
		}

		result := app.Form.ValidateRaw(body)
		if !result.OK {
			log.Debugf("submission.validate: %d error(s)", len(result.Errors))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]any{
				"error":  result.Errors[0],
				"errors": result.Errors,
			})
			return
		}

		data := store.CreateData{
			RespondentName: form.PreferredName(result.Answers),
			RespondentRole: form.PreferredRole(result.Answers),
			Headline:       form.DeriveHeadline(result.Answers),
			FocusArea:      form.DeriveFocusArea(result.Answers),
			Priority:       form.DerivePriority(result.Answers),
			Responses:      app.Form.ResponsePackage(result.Answers),
		}

		id, err := app.Store.Insert(r.Context(), data)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission", err)
			return
		}

		log.Infof("submission.created: %s (%s)", id, data.Priority)
		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": id,
		})
	}
}

type clearRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ClearSubmissions deletes every stored record. It is guarded by the
// operator credential pair from process configuration, not by reviewer
// tokens, so it works even when no reviewer account is provisioned.
func ClearSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !app.ClearConfigured() {
			log.Warn("clear_submissions.not_configured")
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, map[string]any{
				"error": "Clear endpoint is not configured on server.",
			})
			return
		}

		req := clearRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]any{
				"error": "Username and password are required.",
			})
			return
		}

		if !credentialsMatch(req, app.ClearUsername, app.ClearPassword) {
			log.Warn("clear_submissions.bad_credentials")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, map[string]any{
				"error": "Invalid username or password.",
			})
			return
		}

		deleted, err := app.Store.DeleteAll(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.delete_submissions", err)
			return
		}

		log.Infof("submissions.cleared: %d", deleted)
		render.JSON(w, r, map[string]any{
			"ok":           true,
			"deletedCount": deleted,
		})
	}
}

func credentialsMatch(req clearRequest, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(password)) == 1
	return userOK && passOK
}
