package grading

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		mark       int
		wantLetter string
		wantPoint  float64
	}{
		{100, "A+", 4.0},
		{90, "A+", 4.0},
		{89, "A", 4.0},
		{80, "A", 4.0},
		{79, "A-", 3.7},
		{75, "A-", 3.7},
		{74, "B+", 3.3},
		{70, "B+", 3.3},
		{69, "B", 3.0},
		{65, "B", 3.0},
		{64, "B-", 2.7},
		{60, "B-", 2.7},
		{59, "C+", 2.3},
		{55, "C+", 2.3},
		{54, "C", 2.0},
		{50, "C", 2.0},
		{49, "C-", 1.7},
		{45, "C-", 1.7},
		{44, "D", 1.0},
		{40, "D", 1.0},
		{39, "E", 0.0},
		{0, "E", 0.0},
	}
	for _, tt := range tests {
		g := Classify(tt.mark)
		if g.Letter != tt.wantLetter || g.Point != tt.wantPoint {
			t.Errorf("Classify(%d) = %q/%v, want %q/%v", tt.mark, g.Letter, g.Point, tt.wantLetter, tt.wantPoint)
		}
	}
}

func TestClassifyTotalAndMonotonic(t *testing.T) {
	prev := Classify(0)
	for mark := 0; mark <= 100; mark++ {
		g := Classify(mark)
		if g.Letter == "" {
			t.Fatalf("Classify(%d) returned empty grade", mark)
		}
		if g.Point < prev.Point {
			t.Errorf("Classify(%d).Point = %v dropped below Classify(%d).Point = %v", mark, g.Point, mark-1, prev.Point)
		}
		prev = g
	}
}

func TestClassifyIdempotent(t *testing.T) {
	for _, mark := range []int{0, 39, 40, 72, 90, 100} {
		if Classify(mark) != Classify(mark) {
			t.Errorf("Classify(%d) is not stable", mark)
		}
	}
}

func TestGPA(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    float64
	}{
		{name: "no entries", entries: nil, want: 0},
		{name: "zero credit sum", entries: []Entry{{Point: 4.0, Credit: 0}}, want: 0},
		{name: "single entry", entries: []Entry{{Point: 3.7, Credit: 4}}, want: 3.7},
		{
			name:    "weighted mean",
			entries: []Entry{{Point: 4.0, Credit: 3}, {Point: 3.0, Credit: 1}},
			want:    3.75,
		},
		{
			name:    "rounded to 2 decimals",
			entries: []Entry{{Point: 4.0, Credit: 1}, {Point: 3.3, Credit: 1}, {Point: 2.7, Credit: 1}},
			want:    3.33, // 10/3
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GPA(tt.entries); got != tt.want {
				t.Errorf("GPA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Error("Summarize(nil) produced stats, want none")
	}

	st, ok := Summarize([]float64{3.5, 2.0, 4.0})
	if !ok {
		t.Fatal("Summarize() produced no stats")
	}
	want := Stats{Count: 3, Avg: 3.17, Min: 2.0, Max: 4.0}
	if st != want {
		t.Errorf("Summarize() = %+v, want %+v", st, want)
	}
}
