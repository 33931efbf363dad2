package http

import (
	"net/http"
	"strconv"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
)

type CoursesHandler struct {
	Catalog *service.CatalogService
}

// HandleList godoc
//
//	@Summary	List courses
//	@Tags		Courses
//	@Produce	json
//	@Success	200	{array}	coursesdk.CourseResponse
//	@Router		/v1/courses [get].
func (h *CoursesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Catalog.ListCourses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, courseResponses(courses))
}

// HandleGet godoc
//
//	@Summary	Get a course
//	@Tags		Courses
//	@Produce	json
//	@Param		id	path		int	true	"Course ID"
//	@Success	200	{object}	coursesdk.CourseResponse
//	@Failure	404	{object}	coursesdk.ErrorResponse	"course_not_found"
//	@Router		/v1/courses/{id} [get].
func (h *CoursesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	c, err := h.Catalog.GetCourse(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c.Response())
}

// HandleSteps godoc
//
//	@Summary		Course outline
//	@Description	Active steps in order. An end step has status "finished", every other step "not_finished".
//	@Tags			Courses
//	@Produce		json
//	@Param			id	path		int	true	"Course ID"
//	@Success		200	{object}	coursesdk.StepListResponse
//	@Failure		404	{object}	coursesdk.ErrorResponse	"course_not_found"
//	@Router			/v1/courses/{id}/steps [get].
func (h *CoursesHandler) HandleSteps(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	steps, err := h.Catalog.ListSteps(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, coursesdk.StepListResponse{CourseID: id, Steps: steps})
}

// HandleMine godoc
//
//	@Summary	My courses
//	@Tags		Courses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		coursesdk.CourseResponse
//	@Failure	401	{object}	coursesdk.ErrorResponse
//	@Router		/v1/users/me/courses [get].
func (h *CoursesHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	courses, err := h.Catalog.CoursesForUser(r.Context(), u.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, courseResponses(courses))
}

func courseResponses(courses []domain.Course) []coursesdk.CourseResponse {
	out := make([]coursesdk.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Response())
	}
	return out
}

// courseID reads the {id} path value and writes a 404 when it cannot name a
// course.
func courseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, service.ErrCourseNotFound)
		return 0, false
	}
	return id, true
}
