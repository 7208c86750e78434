// Package task is the teacher's to-do list.
package task

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
)

var ErrNotFound = errors.New("task not found")

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate"`
}

type NewTask struct {
	Title   string `json:"title" validate:"required"`
	DueDate string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

func (nt *NewTask) Validate(validate *validator.Validate) error {
	nt.Title = core.CleanString(nt.Title)
	return validate.Struct(nt)
}

type Service struct {
	store core.Store
	log   core.Logger

	mu    sync.RWMutex
	tasks []Task
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		tasks: core.LoadJSON(store, log, core.KeyTasks, []Task{}),
	}
}

func (svc *Service) Add(nt NewTask) Task {
	t := Task{ID: uuid.NewString(), Title: nt.Title, DueDate: nt.DueDate}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.tasks = append(svc.tasks, t)
	svc.save()
	return t
}

// Toggle flips the completion flag.
func (svc *Service) Toggle(id string) (Task, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i, t := range svc.tasks {
		if t.ID == id {
			svc.tasks[i].Completed = !t.Completed
			svc.save()
			return svc.tasks[i], nil
		}
	}
	return Task{}, ErrNotFound
}

func (svc *Service) Remove(id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i, t := range svc.tasks {
		if t.ID == id {
			svc.tasks = append(svc.tasks[:i], svc.tasks[i+1:]...)
			svc.save()
			return nil
		}
	}
	return ErrNotFound
}

func (svc *Service) All() []Task {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Task, len(svc.tasks))
	copy(all, svc.tasks)
	return all
}

// save must be called with the lock held.
func (svc *Service) save() {
	core.SaveJSON(svc.store, svc.log, core.KeyTasks, svc.tasks)
}
