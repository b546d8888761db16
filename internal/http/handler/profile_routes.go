package handler

import (
	"net/http"

	"phhblog/internal/contract"
	"phhblog/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	ProfilePage() (*contract.ProfilePage, apierror.ErrorResponse)
}

type DefaultProfileRoute struct {
	ProfileService ProfileService
}

func NewProfileDefault(profileService ProfileService) *DefaultProfileRoute {
	return &DefaultProfileRoute{ProfileService: profileService}
}

func (h *DefaultProfileRoute) GetProfile(c echo.Context) error {
	page, apierr := h.ProfileService.ProfilePage()
	if apierr != nil {
		return renderError(c, apierr)
	}
	return c.Render(http.StatusOK, "profile.html", page)
}
