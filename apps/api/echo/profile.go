package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/profile"
)

type profileApi struct {
	svc      *profile.Service
	validate *validator.Validate
}

func registerProfileAPI(g *echo.Group, deps ServerDeps) {
	api := profileApi{svc: deps.ProfileSvc, validate: deps.Validate}

	pg := g.Group("/profile")
	pg.GET("", api.retrieve)
	pg.PUT("", api.update)
}

func (api *profileApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Get())
}

func (api *profileApi) update(ctx echo.Context) error {
	var data profile.UpdateProfile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Update(data))
}
