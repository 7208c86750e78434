package subject

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
	"github.com/ruviru/teachmate/core/grading"
)

var ErrNotFound = errors.New("subject not found")

// Service owns the subject list. Mutations re-derive the cached grade fields
// and mirror the whole collection to the store.
type Service struct {
	store core.Store
	log   core.Logger

	mu       sync.RWMutex
	subjects []Subject
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store:    store,
		log:      log,
		subjects: core.LoadJSON(store, log, core.KeySubjects, []Subject{}),
	}
}

func (svc *Service) Add(ns NewSubject) Subject {
	grade := grading.Classify(ns.Marks)
	sub := Subject{
		ID:          uuid.NewString(),
		Name:        ns.Name,
		Credits:     ns.Credits,
		Marks:       ns.Marks,
		GradePoint:  grade.Point,
		GradeLetter: grade.Letter,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.subjects = append(svc.subjects, sub)
	svc.save()
	return sub
}

func (svc *Service) Update(id string, us UpdateSubject) (Subject, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return Subject{}, ErrNotFound
	}
	if us.Name != "" {
		svc.subjects[idx].Name = us.Name
	}
	if us.Credits > 0 {
		svc.subjects[idx].Credits = us.Credits
	}
	svc.save()
	return svc.subjects[idx], nil
}

// SetMarks is the single entry point for mark mutation: the cached grade is
// re-derived in the same step.
func (svc *Service) SetMarks(id string, marks int) (Subject, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return Subject{}, ErrNotFound
	}
	grade := grading.Classify(marks)
	svc.subjects[idx].Marks = marks
	svc.subjects[idx].GradePoint = grade.Point
	svc.subjects[idx].GradeLetter = grade.Letter
	svc.save()
	return svc.subjects[idx], nil
}

func (svc *Service) Remove(id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return ErrNotFound
	}
	svc.subjects = append(svc.subjects[:idx], svc.subjects[idx+1:]...)
	svc.save()
	return nil
}

func (svc *Service) Get(id string) (Subject, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if idx := svc.index(id); idx >= 0 {
		return svc.subjects[idx], nil
	}
	return Subject{}, ErrNotFound
}

func (svc *Service) All() []Subject {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Subject, len(svc.subjects))
	copy(all, svc.subjects)
	return all
}

// ClassGPA aggregates the whole subject list: every row contributes its
// cached grade point weighted by its credits.
func (svc *Service) ClassGPA() float64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	entries := make([]grading.Entry, 0, len(svc.subjects))
	for _, sub := range svc.subjects {
		entries = append(entries, grading.Entry{Point: sub.GradePoint, Credit: sub.Credits})
	}
	return grading.GPA(entries)
}

// index must be called with the lock held.
func (svc *Service) index(id string) int {
	for i, sub := range svc.subjects {
		if sub.ID == id {
			return i
		}
	}
	return -1
}

// save must be called with the lock held.
func (svc *Service) save() {
	core.SaveJSON(svc.store, svc.log, core.KeySubjects, svc.subjects)
}
