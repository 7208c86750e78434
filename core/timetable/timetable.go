// Package timetable is the weekly class schedule.
package timetable

import (
	"errors"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
)

var ErrNotFound = errors.New("period not found")

type Period struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Grade     string `json:"grade"`
	Room      string `json:"room"`
	Color     string `json:"color"`
}

type NewPeriod struct {
	Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
	Subject   string `json:"subject" validate:"required"`
	Grade     string `json:"grade"`
	Room      string `json:"room"`
	Color     string `json:"color"`
}

func (np *NewPeriod) Validate(validate *validator.Validate) error {
	np.Subject = core.CleanString(np.Subject)
	np.Grade = core.CleanString(np.Grade)
	np.Room = core.CleanString(np.Room)
	return validate.Struct(np)
}

type Service struct {
	store core.Store
	log   core.Logger

	mu      sync.RWMutex
	periods []Period
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store:   store,
		log:     log,
		periods: core.LoadJSON(store, log, core.KeyTimetable, []Period{}),
	}
}

func (svc *Service) Add(np NewPeriod) Period {
	p := Period{
		ID:        uuid.NewString(),
		Day:       np.Day,
		StartTime: np.StartTime,
		EndTime:   np.EndTime,
		Subject:   np.Subject,
		Grade:     np.Grade,
		Room:      np.Room,
		Color:     np.Color,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.periods = append(svc.periods, p)
	svc.save()
	return p
}

func (svc *Service) Remove(id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i, p := range svc.periods {
		if p.ID == id {
			svc.periods = append(svc.periods[:i], svc.periods[i+1:]...)
			svc.save()
			return nil
		}
	}
	return ErrNotFound
}

// ForDay returns the day's periods ordered by start time. HH:MM strings sort
// lexically.
func (svc *Service) ForDay(day string) []Period {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	periods := make([]Period, 0)
	for _, p := range svc.periods {
		if p.Day == day {
			periods = append(periods, p)
		}
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].StartTime < periods[j].StartTime })
	return periods
}

func (svc *Service) All() []Period {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Period, len(svc.periods))
	copy(all, svc.periods)
	return all
}

// save must be called with the lock held.
func (svc *Service) save() {
	core.SaveJSON(svc.store, svc.log, core.KeyTimetable, svc.periods)
}
