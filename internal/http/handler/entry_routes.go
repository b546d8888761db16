package handler

import (
	"net/http"
	"strconv"

	"phhblog/internal/contract"
	"phhblog/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type EntryService interface {
	ListingPage(tagID *int) (*contract.ListingPage, apierror.ErrorResponse)
	PostFormPage() (*contract.PostFormPage, apierror.ErrorResponse)
	EditFormPage(entryID int) (*contract.EditFormPage, apierror.ErrorResponse)
	CreateEntry(req *contract.EntryForm) apierror.ErrorResponse
	UpdateEntry(req *contract.EditEntryForm) apierror.ErrorResponse
	DeleteEntry(entryID int) apierror.ErrorResponse
}

type DefaultEntryRoute struct {
	EntryService EntryService
}

func NewEntryDefault(entryService EntryService) *DefaultEntryRoute {
	return &DefaultEntryRoute{EntryService: entryService}
}

// GetListing serves the top page. The `id` query parameter, when
// present, restricts the listing to one tag.
func (h *DefaultEntryRoute) GetListing(c echo.Context) error {
	var tagID *int
	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return renderError(c, apierror.InvalidIDError)
		}
		tagID = &id
	}

	page, apierr := h.EntryService.ListingPage(tagID)
	if apierr != nil {
		return renderError(c, apierr)
	}
	return c.Render(http.StatusOK, "top.html", page)
}

func (h *DefaultEntryRoute) GetPostForm(c echo.Context) error {
	page, apierr := h.EntryService.PostFormPage()
	if apierr != nil {
		return renderError(c, apierr)
	}
	return c.Render(http.StatusOK, "post.html", page)
}

func (h *DefaultEntryRoute) GetEditForm(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return renderError(c, apierror.NewInvalidParamTypeError("id", "int"))
	}

	page, apierr := h.EntryService.EditFormPage(id)
	if apierr != nil {
		return renderError(c, apierr)
	}
	return c.Render(http.StatusOK, "edit.html", page)
}

// CreateEntry handles POST /entry/post/add and sends the client back
// to the updated listing.
func (h *DefaultEntryRoute) CreateEntry(c echo.Context) error {
	var req contract.EntryForm
	if err := c.Bind(&req); err != nil {
		return renderError(c, apierror.MalformedFormError)
	}

	if apierr := h.EntryService.CreateEntry(&req); apierr != nil {
		return renderError(c, apierr)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *DefaultEntryRoute) UpdateEntry(c echo.Context) error {
	var req contract.EditEntryForm
	if err := c.Bind(&req); err != nil {
		return renderError(c, apierror.MalformedFormError)
	}

	if apierr := h.EntryService.UpdateEntry(&req); apierr != nil {
		return renderError(c, apierr)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// DeleteEntry reads the target id from the query string, not the
// body.
func (h *DefaultEntryRoute) DeleteEntry(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return renderError(c, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.EntryService.DeleteEntry(id); apierr != nil {
		return renderError(c, apierr)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// renderError turns an ErrorResponse into the terminal error page.
// Every handler path ends here or in a render/redirect, never in a
// hanging response.
func renderError(c echo.Context, apierr apierror.ErrorResponse) error {
	return c.Render(apierr.Code(), "error.html", apierr)
}
