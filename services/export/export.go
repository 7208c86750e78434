// Package exportsvc renders class marks and GPA reports as downloadable files.
package exportsvc

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/ruviru/teachmate/core/student"
	"github.com/ruviru/teachmate/core/subject"
)

const gradebookSheet = "Gradebook"

// WriteGradebook writes an xlsx workbook with one row per student and one
// column per subject, followed by the student's GPA. Subjects a student has
// no recorded mark for are left blank.
func WriteGradebook(
	w io.Writer,
	subjects []subject.Subject,
	students []student.Student,
	marks student.MarksTable,
	gpa func(studentID string) float64,
) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), gradebookSheet)

	header := []interface{}{"Index No", "Name"}
	for _, sub := range subjects {
		header = append(header, sub.Name)
	}
	header = append(header, "GPA")
	if err := f.SetSheetRow(gradebookSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "writing header row")
	}

	for i, std := range students {
		row := []interface{}{std.IndexNo, std.Name}
		for _, sub := range subjects {
			if mark, ok := marks[std.ID][sub.ID]; ok {
				row = append(row, mark)
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, gpa(std.ID))

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(gradebookSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing row for %s", std.IndexNo)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

// WriteGPACSV writes a two-column CSV of student index numbers and GPAs.
func WriteGPACSV(w io.Writer, students []student.Student, gpa func(studentID string) float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"indexNo", "name", "gpa"}); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, std := range students {
		rec := []string{std.IndexNo, std.Name, fmt.Sprintf("%.2f", gpa(std.ID))}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "writing csv row for %s", std.IndexNo)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}
