// Package grading maps raw marks to grade classifications and aggregates
// credit-weighted grade points. Everything here is pure: no state, no side
// effects.
package grading

import "math"

// Grade couples a letter classification with its grade point.
type Grade struct {
	Letter string  `json:"letter"`
	Point  float64 `json:"point"`
}

type band struct {
	min   int
	grade Grade
}

// bands is the classification table, ordered by descending lower bound.
// Bands are non-overlapping and, together with gradeE below the last bound,
// cover the whole mark range.
//
//	>= 90  A+  4.0
//	>= 80  A   4.0
//	>= 75  A-  3.7
//	>= 70  B+  3.3
//	>= 65  B   3.0
//	>= 60  B-  2.7
//	>= 55  C+  2.3
//	>= 50  C   2.0
//	>= 45  C-  1.7
//	>= 40  D   1.0
//	else   E   0.0
var bands = []band{
	{90, Grade{"A+", 4.0}},
	{80, Grade{"A", 4.0}},
	{75, Grade{"A-", 3.7}},
	{70, Grade{"B+", 3.3}},
	{65, Grade{"B", 3.0}},
	{60, Grade{"B-", 2.7}},
	{55, Grade{"C+", 2.3}},
	{50, Grade{"C", 2.0}},
	{45, Grade{"C-", 1.7}},
	{40, Grade{"D", 1.0}},
}

var gradeE = Grade{"E", 0.0}

// Classify maps a raw mark to its grade. It is total over all integers:
// anything below the lowest band is an E.
func Classify(mark int) Grade {
	for _, b := range bands {
		if mark >= b.min {
			return b.grade
		}
	}
	return gradeE
}

// Entry is one weighted contribution to a GPA.
type Entry struct {
	Point  float64
	Credit int
}

// GPA returns the credit-weighted mean of grade points, rounded to 2 decimal
// places. A zero credit sum (no entries, or all zero-credit) yields 0 rather
// than a division failure.
func GPA(entries []Entry) float64 {
	var points float64
	var credits int
	for _, e := range entries {
		points += e.Point * float64(e.Credit)
		credits += e.Credit
	}
	if credits == 0 {
		return 0
	}
	return round2(points / float64(credits))
}

// Stats summarizes per-student GPAs over a selection of students.
type Stats struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Summarize reduces a GPA selection to count/avg/min/max. An empty selection
// yields no stats at all (ok is false), not zero values.
func Summarize(gpas []float64) (Stats, bool) {
	if len(gpas) == 0 {
		return Stats{}, false
	}
	st := Stats{Count: len(gpas), Min: gpas[0], Max: gpas[0]}
	var sum float64
	for _, gpa := range gpas {
		sum += gpa
		if gpa < st.Min {
			st.Min = gpa
		}
		if gpa > st.Max {
			st.Max = gpa
		}
	}
	st.Avg = round2(sum / float64(len(gpas)))
	return st, true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
