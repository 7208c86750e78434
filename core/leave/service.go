package leave

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ruviru/teachmate/core"
)

var (
	ErrNotFound = errors.New("leave request not found")

	errStartDateRequired = errors.New("start date is required")
	errApproverRequired  = errors.New("approver name is required")
)

// Service owns the leave history, most recent submission first.
type Service struct {
	store core.Store
	log   core.Logger

	mu     sync.RWMutex
	leaves []Record
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store:  store,
		log:    log,
		leaves: core.LoadJSON(store, log, core.KeyLeaves, []Record{}),
	}
}

// Submit turns a composed draft into a Pending record at the head of the
// history. A draft without a start date is rejected outright: no record is
// created and the history is untouched. Days defaults to 1; the end date
// mirrors the start date, with Days carrying the intended duration.
func (svc *Service) Submit(nr NewRecord) (Record, error) {
	if core.CleanString(nr.StartDate) == "" {
		return Record{}, core.NewValidationError(errStartDateRequired,
			core.FieldError{Field: "startDate", Error: errStartDateRequired.Error()})
	}

	days := nr.Days
	if days < 1 {
		days = 1
	}
	rec := Record{
		ID:        uuid.NewString(),
		Type:      nr.Type,
		StartDate: nr.StartDate,
		EndDate:   nr.StartDate,
		Days:      days,
		Status:    StatusPending,
		Reason:    nr.Reason,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.leaves = append([]Record{rec}, svc.leaves...)
	svc.save()
	return rec, nil
}

// Approve settles a request. An empty approver name rejects the transition:
// nothing changes. On success Status and ApprovedBy are set together; there
// is no observable state with one set and not the other.
func (svc *Service) Approve(id, approver string) (Record, error) {
	approver = core.CleanString(approver)
	if approver == "" {
		return Record{}, core.NewValidationError(errApproverRequired,
			core.FieldError{Field: "approvedBy", Error: errApproverRequired.Error()})
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return Record{}, ErrNotFound
	}
	svc.leaves[idx].Status = StatusApproved
	svc.leaves[idx].ApprovedBy = approver
	svc.save()
	return svc.leaves[idx], nil
}

// Reject settles a request unconditionally, clearing any previous approver.
// Only the latest status is retained: re-deciding an already settled request
// overwrites it.
func (svc *Service) Reject(id string) (Record, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	idx := svc.index(id)
	if idx < 0 {
		return Record{}, ErrNotFound
	}
	svc.leaves[idx].Status = StatusRejected
	svc.leaves[idx].ApprovedBy = ""
	svc.save()
	return svc.leaves[idx], nil
}

func (svc *Service) Get(id string) (Record, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if idx := svc.index(id); idx >= 0 {
		return svc.leaves[idx], nil
	}
	return Record{}, ErrNotFound
}

// History returns the leave records in insertion order, newest first.
func (svc *Service) History() []Record {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	all := make([]Record, len(svc.leaves))
	copy(all, svc.leaves)
	return all
}

func (svc *Service) PendingCount() int {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	var n int
	for _, rec := range svc.leaves {
		if rec.Status == StatusPending {
			n++
		}
	}
	return n
}

// index must be called with the lock held.
func (svc *Service) index(id string) int {
	for i, rec := range svc.leaves {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// save must be called with the lock held.
func (svc *Service) save() {
	core.SaveJSON(svc.store, svc.log, core.KeyLeaves, svc.leaves)
}
