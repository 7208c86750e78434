// Package profile holds the teacher's own identity: the name and class that
// sign share artifacts and feed letter prompts.
package profile

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ruviru/teachmate/core"
)

// Defaults applied when nothing has been stored yet.
const (
	DefaultTeacherName  = "Mrs. Sarah Silva"
	DefaultTeacherClass = "10-B"
)

type Profile struct {
	TeacherName  string `json:"teacherName"`
	TeacherClass string `json:"teacherClass"`
}

type UpdateProfile struct {
	TeacherName  string `json:"teacherName" validate:"required"`
	TeacherClass string `json:"teacherClass" validate:"required"`
}

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.TeacherName = core.CleanString(up.TeacherName)
	up.TeacherClass = core.CleanString(up.TeacherClass)
	return validate.Struct(up)
}

type Service struct {
	store core.Store
	log   core.Logger

	mu      sync.RWMutex
	profile Profile
}

func NewService(store core.Store, log core.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		profile: Profile{
			TeacherName:  core.LoadJSON(store, log, core.KeyTeacherName, DefaultTeacherName),
			TeacherClass: core.LoadJSON(store, log, core.KeyTeacherClass, DefaultTeacherClass),
		},
	}
}

func (svc *Service) Get() Profile {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.profile
}

func (svc *Service) Update(up UpdateProfile) Profile {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.profile = Profile{TeacherName: up.TeacherName, TeacherClass: up.TeacherClass}
	// the two fields persist under separate keys
	core.SaveJSON(svc.store, svc.log, core.KeyTeacherName, svc.profile.TeacherName)
	core.SaveJSON(svc.store, svc.log, core.KeyTeacherClass, svc.profile.TeacherClass)
	return svc.profile
}
