package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/document"
)

type documentApi struct {
	svc      *document.Service
	validate *validator.Validate
}

func registerDocumentAPI(g *echo.Group, deps ServerDeps) {
	api := documentApi{svc: deps.DocumentSvc, validate: deps.Validate}

	dg := g.Group("/documents")
	dg.POST("", api.create)
	dg.GET("", api.query)
	dg.DELETE("/:id", api.destroy)
}

func (api *documentApi) create(ctx echo.Context) error {
	var data document.NewDocument
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDocument")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.svc.Add(data))
}

func (api *documentApi) query(ctx echo.Context) error {
	if category := ctx.QueryParam("category"); category != "" {
		return ctx.JSON(http.StatusOK, api.svc.ByCategory(category))
	}
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *documentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}
