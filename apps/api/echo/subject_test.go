package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruviru/teachmate/core/student"
	"github.com/ruviru/teachmate/core/subject"
)

func Test_subjectApi(t *testing.T) {
	app := setup(t)

	var maths subject.Subject
	t.Run("create derives the grade", func(t *testing.T) {
		body := marshallObj(t, subject.NewSubject{Name: "Maths", Credits: 3, Marks: 82})
		req, rec := newRequest(http.MethodPost, "/v1/subjects", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		decodeObj(t, rec, &maths)
		assert.Equal(t, "A", maths.GradeLetter)
		assert.Equal(t, 4.0, maths.GradePoint)
	})

	t.Run("credits are required", func(t *testing.T) {
		body := marshallObj(t, subject.NewSubject{Name: "Science"})
		req, rec := newRequest(http.MethodPost, "/v1/subjects", body)
		app.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		decodeObj(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "credits")
	})

	t.Run("set marks re-derives the grade", func(t *testing.T) {
		body := marshallObj(t, subject.SetMarks{Marks: 58})
		req, rec := newRequest(http.MethodPut, "/v1/subjects/"+maths.ID+"/marks", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got subject.Subject
		decodeObj(t, rec, &got)
		assert.Equal(t, "C+", got.GradeLetter)
		assert.Equal(t, 2.3, got.GradePoint)
	})

	t.Run("class gpa", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/subjects/gpa")
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]float64
		decodeObj(t, rec, &resp)
		assert.Equal(t, 2.3, resp["gpa"])
	})

	t.Run("unknown subject", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/subjects/nope")
		app.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_studentApi(t *testing.T) {
	app := setup(t)
	maths := app.deps.SubjectSvc.Add(subject.NewSubject{Name: "Maths", Credits: 3})

	var amal student.Student
	t.Run("create", func(t *testing.T) {
		body := marshallObj(t, student.NewStudent{IndexNo: "001", Name: "Amal", Gender: "Male"})
		req, rec := newRequest(http.MethodPost, "/v1/students", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		decodeObj(t, rec, &amal)
		assert.NotEmpty(t, amal.ID)
	})

	t.Run("duplicate index number", func(t *testing.T) {
		body := marshallObj(t, student.NewStudent{IndexNo: "001", Name: "Bimal", Gender: "Male"})
		req, rec := newRequest(http.MethodPost, "/v1/students", body)
		app.server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		decodeObj(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "indexNo")
	})

	t.Run("record mark and compute gpa", func(t *testing.T) {
		body := marshallObj(t, student.SetMark{SubjectID: maths.ID, Mark: 76})
		req, rec := newRequest(http.MethodPut, "/v1/students/"+amal.ID+"/marks", body)
		app.server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		req, rec = newRequest(http.MethodGet, "/v1/students/"+amal.ID+"/gpa")
		app.server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]float64
		decodeObj(t, rec, &resp)
		assert.Equal(t, 3.7, resp["gpa"])
	})

	t.Run("mark for unknown subject", func(t *testing.T) {
		body := marshallObj(t, student.SetMark{SubjectID: "nope", Mark: 50})
		req, rec := newRequest(http.MethodPut, "/v1/students/"+amal.ID+"/marks", body)
		app.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("group stats", func(t *testing.T) {
		body := marshallObj(t, GroupStatsRequest{IDs: []string{amal.ID}})
		req, rec := newRequest(http.MethodPost, "/v1/students/stats", body)
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var stats map[string]float64
		decodeObj(t, rec, &stats)
		assert.Equal(t, 3.7, stats["avg"])
	})

	t.Run("gradebook export", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/students/export.xlsx")
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.NotZero(t, rec.Body.Len())
	})

	t.Run("gpa csv export", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/students/export.csv")
		app.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "001,Amal,3.70")
	})
}
