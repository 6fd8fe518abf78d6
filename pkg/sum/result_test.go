package sum

import (
	"errors"
	"testing"
)

func TestResult_Success(t *testing.T) {
	t.Parallel()
	r := Success[string, int]("ok")

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got %v", r)
	}
	if v, ok := r.Value(); !ok || v != "ok" {
		t.Fatalf("expected (ok, true), got (%q, %v)", v, ok)
	}
	if e, ok := r.Err(); ok || e != 0 {
		t.Fatalf("failure side must be unreadable, got (%d, %v)", e, ok)
	}
	if got := r.String(); got != "Success(ok)" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestResult_Failure(t *testing.T) {
	t.Parallel()
	r := Failure[string](404)

	if r.IsSuccess() {
		t.Fatalf("expected failure, got %v", r)
	}
	if v, ok := r.Value(); ok || v != "" {
		t.Fatalf("success side must be unreadable, got (%q, %v)", v, ok)
	}
	if e, ok := r.Err(); !ok || e != 404 {
		t.Fatalf("expected (404, true), got (%d, %v)", e, ok)
	}
	if got := r.UnwrapOr("default"); got != "default" {
		t.Fatalf("unexpected %q", got)
	}
	if got := r.String(); got != "Failure(404)" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestResult_ZeroValueIsFailure(t *testing.T) {
	t.Parallel()
	var r Result[int, error]

	if !r.IsFailure() {
		t.Fatalf("zero result must be a failure")
	}
	if e, ok := r.Err(); !ok || e != nil {
		t.Fatalf("zero result must carry the zero error, got (%v, %v)", e, ok)
	}
}

func TestResult_Match(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	tests := []struct {
		name string
		in   Result[int, error]
		want string
	}{
		{"success", Success[int, error](3), "value 3"},
		{"failure", Failure[int](boom), "error boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			tt.in.Match(func(int) { calls++ }, func(error) { calls++ })
			if calls != 1 {
				t.Fatalf("expected exactly one handler call, got %d", calls)
			}
			got := MatchResult(tt.in,
				func(v int) string { return "value " + string(rune('0'+v)) },
				func(err error) string { return "error " + err.Error() })
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResult_ToOption(t *testing.T) {
	t.Parallel()
	ok := Success[int, string](1)
	bad := Failure[int]("nope")

	if ok.Ok() != Present(1) || ok.Failed().IsPresent() {
		t.Fatalf("unexpected conversions of %v", ok)
	}
	if bad.Ok().IsPresent() || bad.Failed() != Present("nope") {
		t.Fatalf("unexpected conversions of %v", bad)
	}
	if got := bad.UnwrapOrElse(func(e string) int { return len(e) }); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}
