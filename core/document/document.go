// Package document is the teacher's scanned-document shelf. The images
// themselves live wherever ImageURL points; only the metadata is kept here.
package document

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
)

var ErrNotFound = errors.New("document not found")

// Document categories.
const (
	CategoryAppointment  = "Appointment"
	CategoryCertificates = "Certificates"
	CategoryPayslips     = "Payslips"
	CategoryOther        = "Other"
)

type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
}

type NewDocument struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required,oneof=Appointment Certificates Payslips Other"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

func (nd *NewDocument) Validate(validate *validator.Validate) error {
	nd.Title = core.CleanString(nd.Title)
	return validate.Struct(nd)
}

type Service struct {
	store core.Store
	log   core.Logger

	mu        sync.RWMutex
	documents []Document
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store:     store,
		log:       log,
		documents: core.LoadJSON(store, log, core.KeyDocuments, []Document{}),
	}
}

func (svc *Service) Add(nd NewDocument) Document {
	d := Document{
		ID:       uuid.NewString(),
		Title:    nd.Title,
		Category: nd.Category,
		Date:     nd.Date,
		ImageURL: nd.ImageURL,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.documents = append(svc.documents, d)
	svc.save()
	return d
}

func (svc *Service) Remove(id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	for i, d := range svc.documents {
		if d.ID == id {
			svc.documents = append(svc.documents[:i], svc.documents[i+1:]...)
			svc.save()
			return nil
		}
	}
	return ErrNotFound
}

func (svc *Service) All() []Document {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Document, len(svc.documents))
	copy(all, svc.documents)
	return all
}

func (svc *Service) ByCategory(category string) []Document {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	documents := make([]Document, 0)
	for _, d := range svc.documents {
		if d.Category == category {
			documents = append(documents, d)
		}
	}
	return documents
}

// save must be called with the lock held.
func (svc *Service) save() {
	core.SaveJSON(svc.store, svc.log, core.KeyDocuments, svc.documents)
}
