package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core/student"
	"github.com/ruviru/teachmate/core/subject"
	exportsvc "github.com/ruviru/teachmate/services/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type studentApi struct {
	svc        *student.Service
	subjectSvc *subject.Service
	validate   *validator.Validate
}

func registerStudentAPI(g *echo.Group, deps ServerDeps) {
	api := studentApi{svc: deps.StudentSvc, subjectSvc: deps.SubjectSvc, validate: deps.Validate}

	sg := g.Group("/students")
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.POST("/stats", api.groupStats)
	sg.GET("/export.xlsx", api.exportGradebook)
	sg.GET("/export.csv", api.exportGPACSV)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/marks", api.queryMarks)
	dg.PUT("/marks", api.setMark)
	dg.GET("/gpa", api.gpa)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	std, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, std)
}

func (api *studentApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	std, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, std)
}

func (api *studentApi) update(ctx echo.Context) error {
	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	std, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, std)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) queryMarks(ctx echo.Context) error {
	if _, err := api.svc.Get(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, api.svc.Marks(ctx.Param("id")))
}

func (api *studentApi) setMark(ctx echo.Context) error {
	var data student.SetMark
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SetMark")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.SetMark(ctx.Param("id"), data.SubjectID, data.Mark); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) gpa(ctx echo.Context) error {
	if _, err := api.svc.Get(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, echo.Map{"gpa": api.svc.GPA(ctx.Param("id"))})
}

func (api *studentApi) groupStats(ctx echo.Context) error {
	var data GroupStatsRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GroupStatsRequest")
	}

	stats, ok := api.svc.GroupStats(data.IDs)
	if !ok {
		return ctx.JSON(http.StatusOK, echo.Map{"count": 0})
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *studentApi) exportGradebook(ctx echo.Context) error {
	students := api.svc.All()
	marks := make(student.MarksTable, len(students))
	for _, std := range students {
		marks[std.ID] = api.svc.Marks(std.ID)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="gradebook.xlsx"`)
	res.WriteHeader(http.StatusOK)
	return exportsvc.WriteGradebook(res, api.subjectSvc.All(), students, marks, api.svc.GPA)
}

func (api *studentApi) exportGPACSV(ctx echo.Context) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="gpa.csv"`)
	res.WriteHeader(http.StatusOK)
	return exportsvc.WriteGPACSV(res, api.svc.All(), api.svc.GPA)
}

type GroupStatsRequest struct {
	IDs []string `json:"ids"`
}
