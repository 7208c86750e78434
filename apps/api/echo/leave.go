package echoapi

import (
	"context"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core"
	"github.com/ruviru/teachmate/core/leave"
	"github.com/ruviru/teachmate/core/profile"
)

type leaveApi struct {
	svc        *leave.Service
	drafter    *leave.Drafter
	profileSvc *profile.Service
	mailSvc    core.EmailService
	conf       *core.Config
	validate   *validator.Validate
}

func registerLeaveAPI(g *echo.Group, deps ServerDeps) {
	api := leaveApi{
		svc:        deps.LeaveSvc,
		drafter:    deps.Drafter,
		profileSvc: deps.ProfileSvc,
		mailSvc:    deps.MailSvc,
		conf:       deps.Conf,
		validate:   deps.Validate,
	}

	lg := g.Group("/leaves")
	lg.POST("", api.submit)
	lg.GET("", api.history)
	lg.GET("/pending-count", api.pendingCount)

	// AI-assisted drafting sessions
	lg.POST("/draft", api.openDraft)
	lg.POST("/draft/:session", api.generateDraft)
	lg.DELETE("/draft/:session", api.closeDraft)

	dg := lg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.POST("/approve", api.approve)
	dg.POST("/reject", api.reject)
	dg.GET("/share", api.share)
	dg.POST("/share/email", api.shareByEmail)
}

// submit creates a Pending record from the draft. When the reason is short
// and assistance was not explicitly declined, the AI branch is offered
// instead and nothing is recorded.
func (api *leaveApi) submit(ctx echo.Context) error {
	var data leave.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ignoreAssist, _ := strconv.ParseBool(ctx.QueryParam("ignoreAssist"))
	if !ignoreAssist && leave.NeedsAssist(data.Reason) {
		return ctx.JSON(http.StatusOK, echo.Map{"needsAssist": true})
	}

	rec, err := api.svc.Submit(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *leaveApi) history(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.History())
}

func (api *leaveApi) pendingCount(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"pending": api.svc.PendingCount()})
}

func (api *leaveApi) retrieve(ctx echo.Context) error {
	rec, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *leaveApi) approve(ctx echo.Context) error {
	var data ApproveRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ApproveRequest")
	}

	rec, err := api.svc.Approve(ctx.Param("id"), data.ApprovedBy)
	if err != nil {
		if errors.Cause(err) == leave.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *leaveApi) reject(ctx echo.Context) error {
	rec, err := api.svc.Reject(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, rec)
}

// Drafting

func (api *leaveApi) openDraft(ctx echo.Context) error {
	return ctx.JSON(http.StatusCreated, echo.Map{"session": api.drafter.Open()})
}

func (api *leaveApi) closeDraft(ctx echo.Context) error {
	session, err := strconv.Atoi(ctx.Param("session"))
	if err != nil {
		return errHttpNotFound
	}
	api.drafter.Close(session)
	return ctx.NoContent(http.StatusNoContent)
}

func (api *leaveApi) generateDraft(ctx echo.Context) error {
	session, err := strconv.Atoi(ctx.Param("session"))
	if err != nil {
		return errHttpNotFound
	}

	var data DraftGenerateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to DraftGenerateRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prof := api.profileSvc.Get()
	genCtx, cancel := context.WithTimeout(ctx.Request().Context(), api.conf.AI.Timeout)
	defer cancel()

	letter, err := api.drafter.Generate(genCtx, session, leave.DraftRequest{
		TeacherName:  prof.TeacherName,
		TeacherClass: prof.TeacherClass,
		Type:         data.Type,
		Days:         data.Days,
		StartDate:    data.StartDate,
		Reason:       data.Reason,
	})
	if err != nil {
		switch cause := errors.Cause(err); cause {
		case leave.ErrDraftBusy, leave.ErrDraftClosed:
			return echo.NewHTTPError(http.StatusConflict, cause.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"letter": letter})
}

// Sharing

func (api *leaveApi) share(ctx echo.Context) error {
	rec, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	prof := api.profileSvc.Get()
	text := leave.ShareText(rec, prof.TeacherName, prof.TeacherClass)
	return ctx.JSON(http.StatusOK, ShareResponse{
		Text:        text,
		WhatsAppURL: leave.WhatsAppURL(text),
		SMSURL:      leave.SMSURL(text),
	})
}

func (api *leaveApi) shareByEmail(ctx echo.Context) error {
	rec, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	var data EmailShareRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EmailShareRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prof := api.profileSvc.Get()
	leave.EmailShare(api.mailSvc, mail.Address{Address: data.To}, rec, prof.TeacherName, prof.TeacherClass)
	return ctx.NoContent(http.StatusAccepted)
}

type (
	ApproveRequest struct {
		ApprovedBy string `json:"approvedBy"`
	}

	DraftGenerateRequest struct {
		Type      string `json:"type" validate:"required,oneof=Casual Medical Duty Short"`
		Days      int    `json:"days" validate:"omitempty,min=1"`
		StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
		Reason    string `json:"reason"`
	}

	EmailShareRequest struct {
		To string `json:"to" validate:"required,email"`
	}

	ShareResponse struct {
		Text        string `json:"text"`
		WhatsAppURL string `json:"whatsappUrl"`
		SMSURL      string `json:"smsUrl"`
	}
)

func (r *DraftGenerateRequest) Validate(validate *validator.Validate) error {
	r.StartDate = core.CleanString(r.StartDate)
	r.Reason = core.CleanString(r.Reason)
	return validate.Struct(r)
}

func (r *EmailShareRequest) Validate(validate *validator.Validate) error {
	r.To = core.CleanString(r.To, true)
	return validate.Struct(r)
}
