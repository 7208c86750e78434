package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/timetable"
)

type timetableApi struct {
	svc      *timetable.Service
	validate *validator.Validate
}

func registerTimetableAPI(g *echo.Group, deps ServerDeps) {
	api := timetableApi{svc: deps.TimetableSvc, validate: deps.Validate}

	tg := g.Group("/timetable")
	tg.POST("", api.create)
	tg.GET("", api.query)
	tg.DELETE("/:id", api.destroy)
}

func (api *timetableApi) create(ctx echo.Context) error {
	var data timetable.NewPeriod
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPeriod")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.svc.Add(data))
}

// query returns the whole week, or one day ordered by start time when the
// "day" query param is set.
func (api *timetableApi) query(ctx echo.Context) error {
	if day := ctx.QueryParam("day"); day != "" {
		return ctx.JSON(http.StatusOK, api.svc.ForDay(day))
	}
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *timetableApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}
