package course_test

import (
	"net/http"
	"testing"

	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/stretchr/testify/require"
)

// TestCourseWalkthrough builds a course as an admin and walks it as a
// regular user.
func TestCourseWalkthrough(t *testing.T) {
	s := setupCourseContainer(t, "header", nil)
	client := s.client("header")
	admin := bootstrapAdmin(t, s, client)

	course, err := admin.CreateCourse(t.Context(), coursesdk.CreateCourseRequest{
		Title: "Intro to Go", Description: "Types, funcs and goroutines",
	})
	require.NoError(t, err)
	for i, title := range []string{"Types", "Functions", "Goroutines"} {
		_, err := admin.CreateStep(t.Context(), course.ID, coursesdk.CreateStepRequest{
			Title: title, Order: i + 1, TextContent: title + " explained", IsEnd: i == 2,
		})
		require.NoError(t, err)
	}

	registerUser(t, client, "dave", userPassword)
	dave := performLogin(t, client, "dave", userPassword)

	_, err = dave.CreateCourse(t.Context(), coursesdk.CreateCourseRequest{Title: "Nope"})
	require.ErrorIs(t, err, coursesdk.ErrForbidden)

	p, err := dave.StartCourse(t.Context(), course.ID)
	require.NoError(t, err)
	require.Equal(t, 1, p.CurrentStep.Order)

	for order := 2; order <= 3; order++ {
		p, err = dave.Next(t.Context(), course.ID)
		require.NoError(t, err)
		require.Equal(t, order, p.CurrentStep.Order)
	}
	require.True(t, p.IsCompleted)

	_, err = dave.Next(t.Context(), course.ID)
	require.ErrorIs(t, err, &coursesdk.APIError{StatusCode: http.StatusNotFound, Code: "step_not_found"})

	p, err = dave.Back(t.Context(), course.ID)
	require.NoError(t, err)
	require.Equal(t, 2, p.CurrentStep.Order)

	mine, err := dave.MyCourses(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, course.ID, mine[0].ID)

	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 2)
}
