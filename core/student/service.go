package student

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
	"github.com/ruviru/teachmate/core/grading"
	"github.com/ruviru/teachmate/core/subject"
)

var (
	ErrNotFound        = errors.New("student not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrIndexNoExists   = errors.New("a student with this index number already exists")
)

// SubjectDirectory provides read access to the subject list for GPA
// aggregation.
type SubjectDirectory interface {
	All() []subject.Subject
}

// Service owns the roster and the per-student marks table. The two
// collections persist under separate keys; a crash between the two saves can
// leave them out of sync and callers must tolerate that.
type Service struct {
	store    core.Store
	log      core.Logger
	subjects SubjectDirectory

	mu       sync.RWMutex
	students []Student
	marks    MarksTable
}

func NewService(store core.Store, log core.Logger, subjects SubjectDirectory) *Service {
	return &Service{
		store:    store,
		log:      log,
		subjects: subjects,
		students: core.LoadJSON(store, log, core.KeyStudents, []Student{}),
		marks:    core.LoadJSON(store, log, core.KeyStudentMarks, MarksTable{}),
	}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.indexNoTaken(ns.IndexNo, "") {
		return Student{}, core.NewValidationError(ErrIndexNoExists,
			core.FieldError{Field: "indexNo", Error: ErrIndexNoExists.Error()})
	}
	st := Student{
		ID:            uuid.NewString(),
		IndexNo:       ns.IndexNo,
		Name:          ns.Name,
		Gender:        ns.Gender,
		ParentName:    ns.ParentName,
		ContactNumber: ns.ContactNumber,
		PhotoURL:      ns.PhotoURL,
	}
	svc.students = append(svc.students, st)
	svc.saveStudents()
	return st, nil
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return Student{}, ErrNotFound
	}
	if us.IndexNo != "" {
		if svc.indexNoTaken(us.IndexNo, id) {
			return Student{}, core.NewValidationError(ErrIndexNoExists,
				core.FieldError{Field: "indexNo", Error: ErrIndexNoExists.Error()})
		}
		svc.students[idx].IndexNo = us.IndexNo
	}
	if us.Name != "" {
		svc.students[idx].Name = us.Name
	}
	if us.Gender != "" {
		svc.students[idx].Gender = us.Gender
	}
	if us.ParentName != "" {
		svc.students[idx].ParentName = us.ParentName
	}
	if us.ContactNumber != "" {
		svc.students[idx].ContactNumber = us.ContactNumber
	}
	if us.PhotoURL != "" {
		svc.students[idx].PhotoURL = us.PhotoURL
	}
	svc.saveStudents()
	return svc.students[idx], nil
}

// Delete removes the student from the roster. Their marks rows are left in
// place: orphaned marks are tolerated, not purged.
func (svc *Service) Delete(id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return ErrNotFound
	}
	svc.students = append(svc.students[:idx], svc.students[idx+1:]...)
	svc.saveStudents()
	return nil
}

func (svc *Service) Get(id string) (Student, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if idx := svc.index(id); idx >= 0 {
		return svc.students[idx], nil
	}
	return Student{}, ErrNotFound
}

func (svc *Service) All() []Student {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Student, len(svc.students))
	copy(all, svc.students)
	return all
}

// SetMark records a mark for one subject. The row for the student is created
// lazily on first entry.
func (svc *Service) SetMark(studentID, subjectID string, mark int) error {
	if !svc.subjectExists(subjectID) {
		return ErrSubjectNotFound
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.index(studentID) < 0 {
		return ErrNotFound
	}
	row, ok := svc.marks[studentID]
	if !ok {
		row = make(map[string]int)
		svc.marks[studentID] = row
	}
	row[subjectID] = mark
	svc.saveMarks()
	return nil
}

// Marks returns the recorded marks for one student, keyed by subject id.
// Subjects the student was never graded in are absent.
func (svc *Service) Marks(studentID string) map[string]int {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	row := make(map[string]int, len(svc.marks[studentID]))
	for subjectID, mark := range svc.marks[studentID] {
		row[subjectID] = mark
	}
	return row
}

// GPA aggregates the student's recorded marks: each is classified
// independently and weighted by the subject's credits. Subjects with no
// recorded mark contribute nothing, in particular not to the credit sum.
// The subject rows' own cached grades are never consulted.
func (svc *Service) GPA(studentID string) float64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.gpaLocked(studentID)
}

// GroupStats summarizes the GPAs of a selection of students. An empty
// selection yields no stats (ok is false).
func (svc *Service) GroupStats(studentIDs []string) (grading.Stats, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	gpas := make([]float64, 0, len(studentIDs))
	for _, id := range studentIDs {
		gpas = append(gpas, svc.gpaLocked(id))
	}
	return grading.Summarize(gpas)
}

// gpaLocked must be called with the lock held.
func (svc *Service) gpaLocked(studentID string) float64 {
	row := svc.marks[studentID]
	subjects := svc.subjects.All()

	entries := make([]grading.Entry, 0, len(subjects))
	for _, sub := range subjects {
		mark, graded := row[sub.ID]
		if !graded {
			continue
		}
		entries = append(entries, grading.Entry{Point: grading.Classify(mark).Point, Credit: sub.Credits})
	}
	return grading.GPA(entries)
}

func (svc *Service) subjectExists(subjectID string) bool {
	for _, sub := range svc.subjects.All() {
		if sub.ID == subjectID {
			return true
		}
	}
	return false
}

// index must be called with the lock held.
func (svc *Service) index(id string) int {
	for i, st := range svc.students {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// indexNoTaken must be called with the lock held.
func (svc *Service) indexNoTaken(indexNo, excludedID string) bool {
	for _, st := range svc.students {
		if st.IndexNo == indexNo && st.ID != excludedID {
			return true
		}
	}
	return false
}

// saveStudents must be called with the lock held.
func (svc *Service) saveStudents() {
	core.SaveJSON(svc.store, svc.log, core.KeyStudents, svc.students)
}

// saveMarks must be called with the lock held.
func (svc *Service) saveMarks() {
	core.SaveJSON(svc.store, svc.log, core.KeyStudentMarks, svc.marks)
}
