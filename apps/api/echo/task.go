package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/task"
)

type taskApi struct {
	svc      *task.Service
	validate *validator.Validate
}

func registerTaskAPI(g *echo.Group, deps ServerDeps) {
	api := taskApi{svc: deps.TaskSvc, validate: deps.Validate}

	tg := g.Group("/tasks")
	tg.POST("", api.create)
	tg.GET("", api.query)
	tg.POST("/:id/toggle", api.toggle)
	tg.DELETE("/:id", api.destroy)
}

func (api *taskApi) create(ctx echo.Context) error {
	var data task.NewTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTask")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.svc.Add(data))
}

func (api *taskApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *taskApi) toggle(ctx echo.Context) error {
	t, err := api.svc.Toggle(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *taskApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}
