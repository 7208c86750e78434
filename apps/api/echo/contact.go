package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/contact"
)

type contactApi struct {
	svc      *contact.Service
	validate *validator.Validate
}

func registerContactAPI(g *echo.Group, deps ServerDeps) {
	api := contactApi{svc: deps.ContactSvc, validate: deps.Validate}

	cg := g.Group("/contacts")
	cg.POST("", api.create)
	cg.GET("", api.query)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

func (api *contactApi) create(ctx echo.Context) error {
	var data contact.NewContact
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewContact")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.svc.Add(data))
}

func (api *contactApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *contactApi) update(ctx echo.Context) error {
	var data contact.UpdateContact
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateContact")
	}

	c, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *contactApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}
