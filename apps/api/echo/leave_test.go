package echoapi

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruviru/teachmate/core/leave"
	"github.com/ruviru/teachmate/core/profile"
)

func Test_leaveApi_submit(t *testing.T) {
	app := setup(t)

	t.Run("start date required", func(t *testing.T) {
		body := marshallObj(t, leave.NewRecord{Type: leave.TypeCasual, Reason: strings.Repeat("x", 40)})
		req, rec := newRequest(http.MethodPost, "/v1/leaves", body)
		app.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		decodeObj(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "startDate")
		assert.Empty(t, app.deps.LeaveSvc.History())
	})

	t.Run("short reason offers assist without recording", func(t *testing.T) {
		body := marshallObj(t, leave.NewRecord{Type: leave.TypeCasual, StartDate: "2026-09-10", Reason: "sick"})
		req, rec := newRequest(http.MethodPost, "/v1/leaves", body)
		app.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		decodeObj(t, rec, &resp)
		assert.True(t, resp["needsAssist"])
		assert.Empty(t, app.deps.LeaveSvc.History())
	})

	t.Run("assist offer can be declined", func(t *testing.T) {
		body := marshallObj(t, leave.NewRecord{Type: leave.TypeCasual, StartDate: "2026-09-10", Reason: "sick"})
		req, rec := newRequest(http.MethodPost, "/v1/leaves?ignoreAssist=true", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var rec1 leave.Record
		decodeObj(t, rec, &rec1)
		assert.Equal(t, leave.StatusPending, rec1.Status)
		assert.Equal(t, 1, rec1.Days)
		assert.Equal(t, "2026-09-10", rec1.EndDate)
		assert.Len(t, app.deps.LeaveSvc.History(), 1)
	})
}

func Test_leaveApi_approval(t *testing.T) {
	app := setup(t)
	rec1, err := app.deps.LeaveSvc.Submit(leave.NewRecord{
		Type: leave.TypeMedical, StartDate: "2026-09-15", Days: 2,
		Reason: "Medical appointment at the base hospital",
	})
	require.NoError(t, err)

	t.Run("approve requires approver", func(t *testing.T) {
		body := marshallObj(t, ApproveRequest{})
		req, rec := newRequest(http.MethodPost, "/v1/leaves/"+rec1.ID+"/approve", body)
		app.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		got, _ := app.deps.LeaveSvc.Get(rec1.ID)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("approve", func(t *testing.T) {
		body := marshallObj(t, ApproveRequest{ApprovedBy: "Mr. Perera"})
		req, rec := newRequest(http.MethodPost, "/v1/leaves/"+rec1.ID+"/approve", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got leave.Record
		decodeObj(t, rec, &got)
		assert.Equal(t, leave.StatusApproved, got.Status)
		assert.Equal(t, "Mr. Perera", got.ApprovedBy)
	})

	t.Run("reject clears approver", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/leaves/"+rec1.ID+"/reject")
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got leave.Record
		decodeObj(t, rec, &got)
		assert.Equal(t, leave.StatusRejected, got.Status)
		assert.Empty(t, got.ApprovedBy)
	})

	t.Run("unknown id", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/leaves/nope/reject")
		app.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_leaveApi_draft(t *testing.T) {
	app := setup(t)

	openDraft := func(t *testing.T) int {
		req, rec := newRequest(http.MethodPost, "/v1/leaves/draft")
		app.server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp map[string]int
		decodeObj(t, rec, &resp)
		return resp["session"]
	}

	t.Run("generate", func(t *testing.T) {
		session := openDraft(t)
		body := marshallObj(t, DraftGenerateRequest{Type: leave.TypeCasual, StartDate: "2026-09-10", Reason: "sick"})
		req, rec := newRequest(http.MethodPost, fmt.Sprintf("/v1/leaves/draft/%d", session), body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		decodeObj(t, rec, &resp)
		assert.Equal(t, "Dear Principal, kindly grant me leave.", resp["letter"])

		// the prompt carries the profile and draft context
		prompts := app.gen.Prompts()
		require.Len(t, prompts, 1)
		assert.Contains(t, prompts[0], profile.DefaultTeacherName)
		assert.Contains(t, prompts[0], "Casual Leave")
	})

	t.Run("closed session rejected", func(t *testing.T) {
		session := openDraft(t)
		req, rec := newRequest(http.MethodDelete, fmt.Sprintf("/v1/leaves/draft/%d", session))
		app.server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		body := marshallObj(t, DraftGenerateRequest{Type: leave.TypeCasual, StartDate: "2026-09-10"})
		req, rec = newRequest(http.MethodPost, fmt.Sprintf("/v1/leaves/draft/%d", session), body)
		app.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func Test_leaveApi_share(t *testing.T) {
	app := setup(t)
	rec1, err := app.deps.LeaveSvc.Submit(leave.NewRecord{
		Type: leave.TypeDuty, StartDate: "2026-09-20",
		Reason: "Attending the zonal science exhibition as a judge",
	})
	require.NoError(t, err)

	t.Run("share artifact", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/leaves/"+rec1.ID+"/share")
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ShareResponse
		decodeObj(t, rec, &resp)
		assert.Contains(t, resp.Text, "*Leave Request*")
		assert.Contains(t, resp.Text, rec1.Reason)
		assert.Contains(t, resp.WhatsAppURL, "https://wa.me/?text=")
		assert.Contains(t, resp.SMSURL, "sms:?body=")
	})

	t.Run("share by email", func(t *testing.T) {
		body := marshallObj(t, EmailShareRequest{To: "principal@school.lk"})
		req, rec := newRequest(http.MethodPost, "/v1/leaves/"+rec1.ID+"/share/email", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusAccepted, rec.Code)
		sent := app.mail.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "principal@school.lk", sent[0].To[0].Address)
		assert.Contains(t, sent[0].Body, rec1.Reason)
	})

	t.Run("invalid email", func(t *testing.T) {
		body := marshallObj(t, EmailShareRequest{To: "nope"})
		req, rec := newRequest(http.MethodPost, "/v1/leaves/"+rec1.ID+"/share/email", body)
		app.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
