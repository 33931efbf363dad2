package http

import (
	"context"
	"net/http"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
)

// ProgressHandler serves the per-user walk through a course. Every route
// sits behind Authn.
type ProgressHandler struct {
	Progress *service.ProgressService
}

// HandleStart godoc
//
//	@Summary		Start a course
//	@Description	Puts the caller on the first step. Starting again returns the existing progress with 200.
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Course ID"
//	@Success		201	{object}	coursesdk.ProgressResponse	"started"
//	@Success		200	{object}	coursesdk.ProgressResponse	"already started"
//	@Failure		401	{object}	coursesdk.ErrorResponse
//	@Failure		404	{object}	coursesdk.ErrorResponse	"course_not_found or course_has_no_steps"
//	@Router			/v1/courses/{id}/start [post].
func (h *ProgressHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	u, id, ok := progressTarget(w, r)
	if !ok {
		return
	}

	view, started, err := h.Progress.Start(r.Context(), u.ID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if started {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, view.Response())
}

// HandleCurrent godoc
//
//	@Summary	Current progress
//	@Tags		Progress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Course ID"
//	@Success	200	{object}	coursesdk.ProgressResponse
//	@Failure	401	{object}	coursesdk.ErrorResponse
//	@Failure	404	{object}	coursesdk.ErrorResponse	"progress_not_found"
//	@Router		/v1/courses/{id}/progress [get].
func (h *ProgressHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, h.Progress.Current)
}

// HandleNext godoc
//
//	@Summary		Next step
//	@Description	Moves to the following step. Reaching an end step marks the course completed.
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Course ID"
//	@Success		200	{object}	coursesdk.ProgressResponse
//	@Failure		401	{object}	coursesdk.ErrorResponse
//	@Failure		404	{object}	coursesdk.ErrorResponse	"progress_not_found or step_not_found at the last step"
//	@Router			/v1/courses/{id}/next [post].
func (h *ProgressHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, h.Progress.Next)
}

// HandleBack godoc
//
//	@Summary		Previous step
//	@Description	Moves to the preceding step. On the first step nothing changes.
//	@Tags			Progress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Course ID"
//	@Success		200	{object}	coursesdk.ProgressResponse
//	@Failure		401	{object}	coursesdk.ErrorResponse
//	@Failure		404	{object}	coursesdk.ErrorResponse	"progress_not_found"
//	@Router			/v1/courses/{id}/back [post].
func (h *ProgressHandler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.view(w, r, h.Progress.Back)
}

// HandleReset godoc
//
//	@Summary	Reset progress
//	@Tags		Progress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Course ID"
//	@Success	200	{object}	coursesdk.ProgressResponse	"the progress that was removed"
//	@Failure	401	{object}	coursesdk.ErrorResponse
//	@Failure	404	{object}	coursesdk.ErrorResponse	"progress_not_found"
//	@Router		/v1/courses/{id}/progress [delete].
func (h *ProgressHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	u, id, ok := progressTarget(w, r)
	if !ok {
		return
	}

	p, err := h.Progress.Reset(r.Context(), u.ID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p.Response())
}

type progressFunc func(ctx context.Context, userID, courseID int64) (domain.ProgressView, error)

func (h *ProgressHandler) view(w http.ResponseWriter, r *http.Request, fn progressFunc) {
	u, id, ok := progressTarget(w, r)
	if !ok {
		return
	}

	view, err := fn(r.Context(), u.ID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view.Response())
}

func progressTarget(w http.ResponseWriter, r *http.Request) (domain.User, int64, bool) {
	u, ok := currentUser(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return domain.User{}, 0, false
	}
	id, ok := courseID(w, r)
	return u, id, ok
}
