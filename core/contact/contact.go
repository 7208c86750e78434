// Package contact is the school quick-call directory.
package contact

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
)

var ErrNotFound = errors.New("contact not found")

type Contact struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type NewContact struct {
	Role  string `json:"role" validate:"required"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (nc *NewContact) Validate(validate *validator.Validate) error {
	nc.Role = core.CleanString(nc.Role)
	nc.Name = core.CleanString(nc.Name)
	nc.Phone = core.CleanString(nc.Phone)
	return validate.Struct(nc)
}

// UpdateContact replaces any non-empty field.
type UpdateContact struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Service struct {
	store core.Store
	log   core.Logger

	mu       sync.RWMutex
	contacts []Contact
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store:    store,
		log:      log,
		contacts: core.LoadJSON(store, log, core.KeyContacts, defaultContacts()),
	}
}

// The directory starts with the usual school roles so the teacher only has
// to fill in names and numbers.
func defaultContacts() []Contact {
	roles := []string{
		"Principal",
		"Deputy Principal (DP)",
		"Assistant Principal (AP)",
		"Sectional Head",
		"SDS Secretary",
	}
	contacts := make([]Contact, 0, len(roles))
	for _, role := range roles {
		contacts = append(contacts, Contact{ID: uuid.NewString(), Role: role})
	}
	return contacts
}

func (svc *Service) Add(nc NewContact) Contact {
	c := Contact{ID: uuid.NewString(), Role: nc.Role, Name: nc.Name, Phone: nc.Phone}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.contacts = append(svc.contacts, c)
	svc.save()
	return c
}

func (svc *Service) Update(id string, uc UpdateContact) (Contact, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i, c := range svc.contacts {
		if c.ID != id {
			continue
		}
		if uc.Role != "" {
			svc.contacts[i].Role = uc.Role
		}
		if uc.Name != "" {
			svc.contacts[i].Name = uc.Name
		}
		if uc.Phone != "" {
			svc.contacts[i].Phone = uc.Phone
		}
		svc.save()
		return svc.contacts[i], nil
	}
	return Contact{}, ErrNotFound
}

func (svc *Service) Remove(id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i, c := range svc.contacts {
		if c.ID == id {
			svc.contacts = append(svc.contacts[:i], svc.contacts[i+1:]...)
			svc.save()
			return nil
		}
	}
	return ErrNotFound
}

func (svc *Service) All() []Contact {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Contact, len(svc.contacts))
	copy(all, svc.contacts)
	return all
}

// save must be called with the lock held.
func (svc *Service) save() {
	core.SaveJSON(svc.store, svc.log, core.KeyContacts, svc.contacts)
}
