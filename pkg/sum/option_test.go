package sum

import (
	"testing"
)

func TestOption_Present(t *testing.T) {
	t.Parallel()
	o := Present(42)

	if !o.IsPresent() || o.IsAbsent() {
		t.Fatalf("expected present, got %v", o)
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", v, ok)
	}
	if got := o.UnwrapOr(0); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := o.String(); got != "Present(42)" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestOption_ZeroValueIsAbsent(t *testing.T) {
	t.Parallel()
	var o Option[string]

	if o.IsPresent() {
		t.Fatalf("zero option must be absent")
	}
	if o != Absent[string]() {
		t.Fatalf("zero option must equal Absent")
	}
	if got := o.UnwrapOrElse(func() string { return "fallback" }); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := o.String(); got != "Absent" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestOption_MatchCallsExactlyOneHandler(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		in      Option[int]
		present int
		absent  int
	}{
		{"present", Present(1), 1, 0},
		{"absent", Absent[int](), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var present, absent int
			tt.in.Match(func(int) { present++ }, func() { absent++ })
			if present != tt.present || absent != tt.absent {
				t.Fatalf("present=%d absent=%d", present, absent)
			}
		})
	}
}

func TestMatchOption(t *testing.T) {
	t.Parallel()
	describe := func(o Option[int]) string {
		return MatchOption(o,
			func(v int) string { return "got " + string(rune('0'+v)) },
			func() string { return "none" })
	}
	if got := describe(Present(7)); got != "got 7" {
		t.Fatalf("unexpected %q", got)
	}
	if got := describe(Absent[int]()); got != "none" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestOption_Pointers(t *testing.T) {
	t.Parallel()
	if FromPtr[int](nil).IsPresent() {
		t.Fatalf("nil pointer must give absent")
	}
	n := 5
	o := FromPtr(&n)
	p := o.ToPtr()
	if p == nil || *p != 5 {
		t.Fatalf("expected pointer to 5, got %v", p)
	}
	*p = 6
	if v, _ := o.Get(); v != 5 {
		t.Fatalf("ToPtr must return a copy, option now holds %d", v)
	}
	if Absent[int]().ToPtr() != nil {
		t.Fatalf("absent must give nil pointer")
	}
}

func TestOption_FromOkFilterOrElse(t *testing.T) {
	t.Parallel()
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	if got := FromOk(v, ok); got != Present(1) {
		t.Fatalf("unexpected %v", got)
	}
	v, ok = m["b"]
	if got := FromOk(v, ok); got.IsPresent() {
		t.Fatalf("unexpected %v", got)
	}

	even := func(n int) bool { return n%2 == 0 }
	if Present(3).Filter(even).IsPresent() {
		t.Fatalf("odd value must be filtered out")
	}
	if Present(4).Filter(even) != Present(4) {
		t.Fatalf("even value must be kept")
	}

	if got := Absent[int]().OrElse(Present(9)); got != Present(9) {
		t.Fatalf("unexpected %v", got)
	}
	if got := Present(1).OrElse(Present(9)); got != Present(1) {
		t.Fatalf("unexpected %v", got)
	}
}
