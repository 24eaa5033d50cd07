package p11ring

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func assertEqual[T any](t *testing.T, have, want T) {
	t.Helper()
	if !cmp.Equal(have, want) {
		t.Fatal(cmp.Diff(have, want))
	}
}

func TestRing(t *testing.T) {
	t.Parallel()

	r := New[int](3)

	assertEqual(t, r.Recent(-1), []int{})
	assertEqual(t, r.Recent(0), []int{})

	r.Add(1)
	assertEqual(t, r.Recent(-1), []int{1})
	assertEqual(t, r.Recent(5), []int{1})

	r.Add(2)
	r.Add(3)
	assertEqual(t, r.Recent(-1), []int{3, 2, 1})
	assertEqual(t, r.Recent(2), []int{3, 2})
	assertEqual(t, r.Len(), 3)

	evicted, ok := r.Add(4)
	assertEqual(t, ok, true)
	assertEqual(t, evicted, 1)
	assertEqual(t, r.Recent(-1), []int{4, 3, 2})

	for i := 5; i <= 10; i++ {
		r.Add(i)
	}
	assertEqual(t, r.Recent(-1), []int{10, 9, 8})
	assertEqual(t, r.Len(), 3)
	assertEqual(t, r.Cap(), 3)
}

func TestRingResize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		adds    int
		from    int
		to      int
		want    []int
		evicted []int
	}{
		{adds: 0, from: 3, to: 5, want: []int{}, evicted: nil},
		{adds: 2, from: 3, to: 5, want: []int{2, 1}, evicted: nil},
		{adds: 5, from: 3, to: 5, want: []int{5, 4, 3}, evicted: nil},
		{adds: 5, from: 3, to: 2, want: []int{5, 4}, evicted: []int{3}},
		{adds: 7, from: 5, to: 1, want: []int{7}, evicted: []int{6, 5, 4, 3}},
		{adds: 3, from: 3, to: 3, want: []int{3, 2, 1}, evicted: nil},
		{adds: 3, from: 3, to: 0, want: []int{3}, evicted: []int{2, 1}},
	} {
		name := strconv.Itoa(tc.adds) + "/" + strconv.Itoa(tc.from) + "->" + strconv.Itoa(tc.to)
		t.Run(name, func(t *testing.T) {
			r := New[int](tc.from)
			for i := 1; i <= tc.adds; i++ {
				r.Add(i)
			}

			evicted := r.Resize(tc.to)
			assertEqual(t, evicted, tc.evicted)
			assertEqual(t, r.Recent(-1), tc.want)

			// The ring keeps working after a resize.
			r.Add(100)
			assertEqual(t, r.Recent(1), []int{100})
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet[string](2)

	s.Get("C_Login").Add("a")
	s.Get("C_Login").Add("b")
	s.Get("C_Login").Add("c")
	s.Get("C_Logout").Add("x")

	assertEqual(t, s.Get("C_Login").Recent(-1), []string{"c", "b"})
	assertEqual(t, len(s.All()), 2)

	_, ok := s.Lookup("C_Digest")
	assertEqual(t, ok, false)

	evicted := s.Resize(1)
	assertEqual(t, evicted, []string{"b"})
	assertEqual(t, s.Get("C_Digest").Cap(), 1)
}
