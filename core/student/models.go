package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/ruviru/teachmate/core"
)

type Student struct {
	ID            string `json:"id"`
	IndexNo       string `json:"indexNo"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	ParentName    string `json:"parentName"`
	ContactNumber string `json:"contactNumber"`
	PhotoURL      string `json:"photoUrl,omitempty"`
}

// MarksTable maps student id -> subject id -> mark. Entries are created
// lazily on first mark entry; an absent entry means "ungraded" and is
// excluded from GPA aggregation, never treated as zero.
type MarksTable map[string]map[string]int

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	IndexNo       string `json:"indexNo" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female"`
	ParentName    string `json:"parentName"`
	ContactNumber string `json:"contactNumber"`
	PhotoURL      string `json:"photoUrl" validate:"omitempty,url"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.IndexNo = core.CleanString(ns.IndexNo)
	ns.Name = core.CleanString(ns.Name)
	ns.ParentName = core.CleanString(ns.ParentName)
	ns.ContactNumber = core.CleanString(ns.ContactNumber)
	return validate.Struct(ns)
}

// UpdateStudent defines what may be modified on an existing Student.
// Empty fields keep their current value.
type UpdateStudent struct {
	IndexNo       string `json:"indexNo"`
	Name          string `json:"name"`
	Gender        string `json:"gender" validate:"omitempty,oneof=Male Female"`
	ParentName    string `json:"parentName"`
	ContactNumber string `json:"contactNumber"`
	PhotoURL      string `json:"photoUrl" validate:"omitempty,url"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.IndexNo = core.CleanString(us.IndexNo)
	us.Name = core.CleanString(us.Name)
	us.ParentName = core.CleanString(us.ParentName)
	us.ContactNumber = core.CleanString(us.ContactNumber)
	return validate.Struct(us)
}

type SetMark struct {
	SubjectID string `json:"subjectId" validate:"required"`
	Mark      int    `json:"mark" validate:"min=0,max=100"`
}

func (sm SetMark) Validate(validate *validator.Validate) error {
	return validate.Struct(sm)
}
