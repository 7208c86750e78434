package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/subject"
)

type subjectApi struct {
	svc      *subject.Service
	validate *validator.Validate
}

func registerSubjectAPI(g *echo.Group, deps ServerDeps) {
	api := subjectApi{svc: deps.SubjectSvc, validate: deps.Validate}

	sg := g.Group("/subjects")
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.GET("/gpa", api.classGPA)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.PUT("/marks", api.setMarks)
	dg.DELETE("", api.destroy)
}

func (api *subjectApi) create(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.svc.Add(data))
}

func (api *subjectApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *subjectApi) classGPA(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"gpa": api.svc.ClassGPA()})
}

func (api *subjectApi) retrieve(ctx echo.Context) error {
	sub, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) update(ctx echo.Context) error {
	var data subject.UpdateSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSubject")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) setMarks(ctx echo.Context) error {
	var data subject.SetMarks
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetMarks")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, err := api.svc.SetMarks(ctx.Param("id"), data.Marks)
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}
