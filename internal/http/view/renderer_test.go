package view

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"phhblog/internal/contract"
	"phhblog/internal/domain/entity"
	"phhblog/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, name, data, c)
	require.NoError(t, err)
	return buf.String()
}

func TestRenderListing_EmptyData(t *testing.T) {
	body := render(t, "top.html", &contract.ListingPage{})
	assert.Contains(t, body, "No entries yet")
}

func TestRenderListing_TagLinksAndEntries(t *testing.T) {
	two := 2
	body := render(t, "top.html", &contract.ListingPage{
		Entries: []*entity.Entry{{ID: 1, Title: "first", TagID: &two, Text: "hello world"}},
		Tags:    []contract.TagLink{{Tag: &entity.Tag{ID: 2, Name: "tech"}, Query: "id=2&name=tech"}},
	})

	assert.Contains(t, body, "first")
	assert.Contains(t, body, "hello world")
	assert.Contains(t, body, "/?id=2&amp;name=tech")
	assert.Contains(t, body, "/entry/edit?id=1")
}

func TestRenderProfile_NilProfileIsEmptyState(t *testing.T) {
	body := render(t, "profile.html", &contract.ProfilePage{})
	assert.Contains(t, body, "No profile has been set up yet")
}

func TestRenderEditForm_MarksCurrentTag(t *testing.T) {
	three := 3
	body := render(t, "edit.html", &contract.EditFormPage{
		Entry: &entity.Entry{ID: 4, Title: "draft", TagID: &three, Text: "body"},
		Tags:  []*entity.Tag{{ID: 2, Name: "tech"}, {ID: 3, Name: "hobby"}},
	})

	assert.Contains(t, body, `name="id" value="4"`)
	assert.Contains(t, body, `<option value="3" selected>hobby</option>`)
	assert.Contains(t, body, `<option value="2">tech</option>`)
}

func TestRenderErrorPage(t *testing.T) {
	body := render(t, "error.html", apierror.NotFoundError)
	assert.Contains(t, body, "404")
	assert.Contains(t, body, "Resource not found")
}
