package http

import (
	"log/slog"
	"net/http"

	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// AdminHandler serves the catalog management routes. It sits behind Authn
// and RequireAdmin.
type AdminHandler struct {
	Catalog  *service.CatalogService
	Accounts *service.AccountService
}

// HandleCreateCourse godoc
//
//	@Summary	Create a course
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		coursesdk.CreateCourseRequest	true	"Course"
//	@Success	201		{object}	coursesdk.CourseResponse
//	@Failure	400		{object}	coursesdk.ErrorResponse	"invalid_request"
//	@Failure	401		{object}	coursesdk.ErrorResponse
//	@Failure	403		{object}	coursesdk.ErrorResponse	"forbidden"
//	@Failure	409		{object}	coursesdk.ErrorResponse	"course_exists"
//	@Router		/v1/admin/courses [post].
func (h *AdminHandler) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req coursesdk.CreateCourseRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	c, err := h.Catalog.CreateCourse(r.Context(), service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c.Response())
}

// HandleCreateStep godoc
//
//	@Summary	Add a step to a course
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Course ID"
//	@Param		body	body		coursesdk.CreateStepRequest	true	"Step"
//	@Success	201		{object}	coursesdk.StepResponse
//	@Failure	400		{object}	coursesdk.ErrorResponse	"invalid_request"
//	@Failure	401		{object}	coursesdk.ErrorResponse
//	@Failure	403		{object}	coursesdk.ErrorResponse	"forbidden"
//	@Failure	404		{object}	coursesdk.ErrorResponse	"course_not_found"
//	@Failure	409		{object}	coursesdk.ErrorResponse	"step_exists"
//	@Router		/v1/admin/courses/{id}/steps [post].
func (h *AdminHandler) HandleCreateStep(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	var req coursesdk.CreateStepRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	st, err := h.Catalog.CreateStep(r.Context(), id, service.StepInput{
		Title:       req.Title,
		Order:       req.Order,
		TextContent: req.TextContent,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		IsEnd:       req.IsEnd,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("step created",
		slog.Int64("course_id", id),
		slog.Int("order", st.Order),
	)
	httpx.WriteJSON(w, http.StatusCreated, st.Response())
}

// HandleListUsers godoc
//
//	@Summary	List active users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		coursesdk.UserResponse
//	@Failure	401	{object}	coursesdk.ErrorResponse
//	@Failure	403	{object}	coursesdk.ErrorResponse	"forbidden"
//	@Router		/v1/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Accounts.ListActiveUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]coursesdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
