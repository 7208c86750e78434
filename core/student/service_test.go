package student_test

import (
	"errors"
	"testing"

	"github.com/ruviru/teachmate/core"
	"github.com/ruviru/teachmate/core/student"
	"github.com/ruviru/teachmate/core/subject"
	dummykv "github.com/ruviru/teachmate/storage/kv/dummy"
)

func setup(t *testing.T) (*student.Service, *subject.Service) {
	t.Helper()
	store := dummykv.Open()
	subjects := subject.NewService(store, core.NopLogger{})
	return student.NewService(store, core.NopLogger{}, subjects), subjects
}

func enroll(t *testing.T, svc *student.Service, indexNo, name string) student.Student {
	t.Helper()
	st, err := svc.Create(student.NewStudent{IndexNo: indexNo, Name: name, Gender: "Female"})
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", indexNo, err)
	}
	return st
}

func TestCreateRejectsDuplicateIndexNo(t *testing.T) {
	svc, _ := setup(t)
	enroll(t, svc, "001", "Amara")

	_, err := svc.Create(student.NewStudent{IndexNo: "001", Name: "Bimal", Gender: "Male"})
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Create() with duplicate indexNo error = %v, want ValidationError", err)
	}
	if len(svc.All()) != 1 {
		t.Error("duplicate Create() mutated the roster")
	}
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	svc, _ := setup(t)
	st := enroll(t, svc, "002", "Chatura")

	got, err := svc.Update(st.ID, student.UpdateStudent{Name: "Chaturika"})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if got.Name != "Chaturika" || got.IndexNo != "002" || got.Gender != "Female" {
		t.Errorf("Update() = %+v, want only name changed", got)
	}
}

func TestGPAExcludesUngradedSubjects(t *testing.T) {
	svc, subjects := setup(t)

	subA := subjects.Add(subject.NewSubject{Name: "Mathematics", Credits: 3})
	subjects.Add(subject.NewSubject{Name: "Science", Credits: 2}) // never graded

	st := enroll(t, svc, "003", "Dilani")
	if err := svc.SetMark(st.ID, subA.ID, 90); err != nil {
		t.Fatalf("SetMark() failed: %v", err)
	}

	// only subject A participates: its credit alone is in the denominator,
	// so the GPA is exactly Classify(90).Point
	if gpa := svc.GPA(st.ID); gpa != 4.0 {
		t.Errorf("GPA() = %v, want 4.0", gpa)
	}
}

func TestGPAIgnoresSubjectOwnCachedGrade(t *testing.T) {
	svc, subjects := setup(t)

	// the subject row itself carries marks 30 (an E); the student's own mark
	// must be classified independently
	sub := subjects.Add(subject.NewSubject{Name: "English", Credits: 2, Marks: 30})
	st := enroll(t, svc, "004", "Eshan")
	if err := svc.SetMark(st.ID, sub.ID, 75); err != nil {
		t.Fatalf("SetMark() failed: %v", err)
	}

	if gpa := svc.GPA(st.ID); gpa != 3.7 {
		t.Errorf("GPA() = %v, want 3.7 from the student's own mark", gpa)
	}
}

func TestGPAWithNoMarksIsZero(t *testing.T) {
	svc, subjects := setup(t)
	subjects.Add(subject.NewSubject{Name: "History", Credits: 3})
	st := enroll(t, svc, "005", "Fathima")

	if gpa := svc.GPA(st.ID); gpa != 0 {
		t.Errorf("GPA() with no recorded marks = %v, want 0", gpa)
	}
}

func TestSetMarkValidatesExistence(t *testing.T) {
	svc, subjects := setup(t)
	sub := subjects.Add(subject.NewSubject{Name: "Art", Credits: 1})
	st := enroll(t, svc, "006", "Gayan")

	if err := svc.SetMark("nope", sub.ID, 50); err != student.ErrNotFound {
		t.Errorf("SetMark(unknown student) error = %v, want ErrNotFound", err)
	}
	if err := svc.SetMark(st.ID, "nope", 50); err != student.ErrSubjectNotFound {
		t.Errorf("SetMark(unknown subject) error = %v, want ErrSubjectNotFound", err)
	}
}

func TestGroupStats(t *testing.T) {
	svc, subjects := setup(t)
	sub := subjects.Add(subject.NewSubject{Name: "Science", Credits: 2})

	a := enroll(t, svc, "007", "Hansi")
	b := enroll(t, svc, "008", "Ishara")
	_ = svc.SetMark(a.ID, sub.ID, 90) // 4.0
	_ = svc.SetMark(b.ID, sub.ID, 50) // 2.0

	st, ok := svc.GroupStats([]string{a.ID, b.ID})
	if !ok {
		t.Fatal("GroupStats() produced no stats")
	}
	if st.Count != 2 || st.Avg != 3.0 || st.Min != 2.0 || st.Max != 4.0 {
		t.Errorf("GroupStats() = %+v", st)
	}

	if _, ok := svc.GroupStats(nil); ok {
		t.Error("GroupStats() over empty selection produced stats")
	}
}

func TestDeleteLeavesMarksOrphaned(t *testing.T) {
	svc, subjects := setup(t)
	sub := subjects.Add(subject.NewSubject{Name: "Music", Credits: 1})
	st := enroll(t, svc, "009", "Janith")
	_ = svc.SetMark(st.ID, sub.ID, 60)

	if err := svc.Delete(st.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if marks := svc.Marks(st.ID); len(marks) != 1 {
		t.Errorf("Delete() purged marks, want them orphaned: %v", marks)
	}
}
