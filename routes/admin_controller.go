package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hanco1/D2Cdashboard/analysis"
	"github.com/hanco1/D2Cdashboard/app"
	"github.com/hanco1/D2Cdashboard/httpx"
	"github.com/hanco1/D2Cdashboard/log"
	"github.com/hanco1/D2Cdashboard/model"
	"github.com/hanco1/D2Cdashboard/store"
)

func ListSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := app.Store.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}

// GetSubmissionById returns one record together with its answers rendered
// in form order, ready for the reviewer detail view.
func GetSubmissionById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		submission, err := app.Store.GetByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_submission", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_submission", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submission": submission,
			"answers":    app.Form.RenderAnswers(submission.Responses.Answers),
		})
	}
}

type statusRequest struct {
	Status model.Status `json:"status"`
}

func UpdateSubmissionStatus(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		req := statusRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if !model.ValidStatus(req.Status) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"request.status", "Invalid status: %q.", req.Status)
			return
		}

		err = app.Store.UpdateStatus(r.Context(), id, req.Status)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "update_status", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.update_status", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetDashboardMetrics(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := app.Store.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		render.JSON(w, r, analysis.BuildDashboardMetrics(submissions))
	}
}
