package subject

import (
	"github.com/go-playground/validator/v10"

	"github.com/ruviru/teachmate/core"
)

// Subject is one row of the teacher's own subject list. GradePoint and
// GradeLetter are a materialized cache derived from Marks: they are only ever
// written by the service's mutation entry points and stay consistent with the
// grading table.
type Subject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Credits     int     `json:"credits"`
	Marks       int     `json:"marks"`
	GradePoint  float64 `json:"gradePoint"`
	GradeLetter string  `json:"gradeLetter"`
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name    string `json:"name" validate:"required"`
	Credits int    `json:"credits" validate:"required,min=1"`
	Marks   int    `json:"marks" validate:"min=0,max=100"`
}

func (ns *NewSubject) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	return validate.Struct(ns)
}

// UpdateSubject defines what may be modified on an existing Subject.
// Marks are deliberately absent: they go through Service.SetMarks so the
// cached grade can never diverge.
type UpdateSubject struct {
	Name    string `json:"name"`
	Credits int    `json:"credits" validate:"omitempty,min=1"`
}

func (us *UpdateSubject) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	return validate.Struct(us)
}

type SetMarks struct {
	Marks int `json:"marks" validate:"min=0,max=100"`
}

func (sm SetMarks) Validate(validate *validator.Validate) error {
	return validate.Struct(sm)
}
