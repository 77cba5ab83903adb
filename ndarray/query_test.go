package ndarray

import (
	"sort"
	"testing"

	pkgerrors "arraylab/pkg/errors"
)

func TestSearch(t *testing.T) {
	t.Run("1d", func(t *testing.T) {
		arr := mustNew(t, []int{5}, []float64{7, 1, 7, 3, 7})
		coords := arr.Search(7)
		if len(coords) != 3 {
			t.Fatalf("got %d matches, want 3", len(coords))
		}
		want := []int{0, 2, 4}
		for i, c := range coords {
			if len(c) != 1 || c[0] != want[i] {
				t.Errorf("match %d = %v, want [%d]", i, c, want[i])
			}
		}
	})

	t.Run("2d coordinates", func(t *testing.T) {
		arr := mustNew(t, []int{2, 3}, []float64{1, 9, 3, 9, 5, 6})
		coords := arr.Search(9)
		if len(coords) != 2 {
			t.Fatalf("got %d matches, want 2", len(coords))
		}
		if coords[0][0] != 0 || coords[0][1] != 1 {
			t.Errorf("first match = %v, want [0 1]", coords[0])
		}
		if coords[1][0] != 1 || coords[1][1] != 0 {
			t.Errorf("second match = %v, want [1 0]", coords[1])
		}
	})

	t.Run("absent value", func(t *testing.T) {
		arr := mustNew(t, []int{3}, []float64{1, 2, 3})
		if coords := arr.Search(42); len(coords) != 0 {
			t.Errorf("got %v, want no matches", coords)
		}
	})
}

func TestSortAxis(t *testing.T) {
	t.Run("1d", func(t *testing.T) {
		arr := mustNew(t, []int{5}, []float64{3, 1, 4, 1, 5})
		sorted, err := arr.SortAxis(-1)
		if err != nil {
			t.Fatalf("SortAxis failed: %v", err)
		}
		if sorted.String() != "[1 1 3 4 5]" {
			t.Errorf("sorted = %s", sorted)
		}
		// Original untouched.
		if arr.String() != "[3 1 4 1 5]" {
			t.Errorf("source changed: %s", arr)
		}
	})

	t.Run("2d default axis sorts rows", func(t *testing.T) {
		arr := mustNew(t, []int{2, 3}, []float64{3, 1, 2, 9, 7, 8})
		sorted, err := arr.SortAxis(-1)
		if err != nil {
			t.Fatalf("SortAxis failed: %v", err)
		}
		if sorted.String() != "[[1 2 3]\n [7 8 9]]" {
			t.Errorf("sorted = %s", sorted)
		}
	})

	t.Run("2d axis 0 sorts columns", func(t *testing.T) {
		arr := mustNew(t, []int{2, 2}, []float64{4, 1, 2, 3})
		sorted, err := arr.SortAxis(0)
		if err != nil {
			t.Fatalf("SortAxis failed: %v", err)
		}
		if sorted.String() != "[[2 1]\n [4 3]]" {
			t.Errorf("sorted = %s", sorted)
		}
	})

	t.Run("idempotent and a permutation", func(t *testing.T) {
		arr := mustNew(t, []int{4}, []float64{2, 3, 1, 2})
		once, err := arr.SortAxis(-1)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := once.SortAxis(-1)
		if err != nil {
			t.Fatal(err)
		}
		if once.String() != twice.String() {
			t.Errorf("sorting a sorted array changed it: %s vs %s", once, twice)
		}

		orig := arr.Flat()
		sort.Float64s(orig)
		got := once.Flat()
		for i := range orig {
			if orig[i] != got[i] {
				t.Fatalf("sorted result is not a permutation of the input: %v vs %v", got, orig)
			}
		}
	})

	t.Run("axis out of bounds", func(t *testing.T) {
		arr := mustNew(t, []int{3}, []float64{1, 2, 3})
		if _, err := arr.SortAxis(1); err == nil {
			t.Error("SortAxis(1) on a rank-1 array should fail")
		}
	})
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in      string
		want    Condition
		wantErr bool
	}{
		{in: ">5", want: Condition{Cmp: CmpGreater, Threshold: 5}},
		{in: ">=5", want: Condition{Cmp: CmpGreaterEqual, Threshold: 5}},
		{in: "<=10", want: Condition{Cmp: CmpLessEqual, Threshold: 10}},
		{in: "<0.5", want: Condition{Cmp: CmpLess, Threshold: 0.5}},
		{in: "==0", want: Condition{Cmp: CmpEqual, Threshold: 0}},
		{in: "!=-1", want: Condition{Cmp: CmpNotEqual, Threshold: -1}},
		{in: ">= 2 ", want: Condition{Cmp: CmpGreaterEqual, Threshold: 2}},
		{in: "bad", wantErr: true},
		{in: "=5", wantErr: true},
		{in: ">x", wantErr: true},
		{in: ">", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCondition(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCondition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				var condErr *pkgerrors.ConditionError
				if !pkgerrors.As(err, &condErr) {
					t.Errorf("ParseCondition(%q) error = %v, want ConditionError", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCondition(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	arr := mustNew(t, []int{5}, []float64{1, 6, 3, 9, 2})

	tests := []struct {
		cond string
		want []float64
	}{
		{cond: ">5", want: []float64{6, 9}},
		{cond: "<=2", want: []float64{1, 2}},
		{cond: "==3", want: []float64{3}},
		{cond: "!=1", want: []float64{6, 3, 9, 2}},
		{cond: ">100", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			cond, err := ParseCondition(tt.cond)
			if err != nil {
				t.Fatalf("ParseCondition(%q) failed: %v", tt.cond, err)
			}
			got := arr.Filter(cond)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.cond, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %v, want %v", tt.cond, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterTraversalOrder2D(t *testing.T) {
	arr := mustNew(t, []int{2, 3}, []float64{5, 1, 7, 2, 9, 4})
	cond, err := ParseCondition(">=4")
	if err != nil {
		t.Fatal(err)
	}
	got := arr.Filter(cond)
	want := []float64{5, 7, 9, 4}
	if len(got) != len(want) {
		t.Fatalf("Filter = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter[%d] = %v, want %v (row-major order)", i, got[i], want[i])
		}
	}
}
