package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/platform/errors"
)

func (s *Server) registerActivityRoutes() {
	s.echo.GET("/activities", s.handleListActivities)
	s.echo.POST("/activities/:name/signup", s.handleSignup)
	s.echo.DELETE("/activities/:name/unregister", s.handleUnregister)
}

func (s *Server) handleListActivities(c echo.Context) error {
	activities, err := s.app.ListActivities(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list activities", err)
	}

	if err := c.JSON(http.StatusOK, activities); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSignup(c echo.Context) error {
	ctx := c.Request().Context()
	name := activityParam(c)

	email := c.QueryParam("email")
	if strings.TrimSpace(email) == "" {
		return apperrors.ValidationError("Missing email").WithField("activity", name)
	}

	err := s.app.Signup(ctx, name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return apperrors.NotFoundError("Activity not found").WithField("activity", name)
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return apperrors.ValidationError("Student is already signed up").
			WithField("activity", name).
			WithField("email", email)
	case errors.Is(err, domain.ErrActivityFull):
		return apperrors.ValidationError("Activity is full").WithField("activity", name)
	case err != nil:
		return apperrors.InternalError("failed to sign up student", err).WithField("activity", name)
	}

	message := fmt.Sprintf("Signed up %s for %s", email, name)
	if err := c.JSON(http.StatusOK, map[string]string{"message": message}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleUnregister(c echo.Context) error {
	ctx := c.Request().Context()
	name := activityParam(c)

	email := c.QueryParam("email")
	if strings.TrimSpace(email) == "" {
		return apperrors.ValidationError("Missing email").WithField("activity", name)
	}

	err := s.app.Unregister(ctx, name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return apperrors.NotFoundError("Activity not found").WithField("activity", name)
	case errors.Is(err, domain.ErrNotEnrolled):
		return apperrors.ValidationError("Student is not registered for this activity").
			WithField("activity", name).
			WithField("email", email)
	case err != nil:
		return apperrors.InternalError("failed to unregister student", err).WithField("activity", name)
	}

	message := fmt.Sprintf("Unregistered %s from %s", email, name)
	if err := c.JSON(http.StatusOK, map[string]string{"message": message}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// activityParam returns the :name path parameter with percent-encoding
// undone. Activity names contain spaces, so clients send them escaped.
func activityParam(c echo.Context) string {
	raw := c.Param("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
