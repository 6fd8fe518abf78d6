package option

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/ib-77/sumwire/pkg/sum"
)

func TestMap(t *testing.T) {
	t.Parallel()
	if got := Map(sum.Present(21), func(v int) int { return v * 2 }); got != sum.Present(42) {
		t.Fatalf("unexpected %v", got)
	}
	called := false
	got := Map(sum.Absent[int](), func(v int) string { called = true; return "" })
	if got.IsPresent() || called {
		t.Fatalf("absent must short-circuit, got %v, called=%v", got, called)
	}
}

func TestThen(t *testing.T) {
	t.Parallel()
	parse := func(s string) sum.Option[int] {
		n, err := strconv.Atoi(s)
		return sum.FromOk(n, err == nil)
	}
	if got := Then(sum.Present("12"), parse); got != sum.Present(12) {
		t.Fatalf("unexpected %v", got)
	}
	if got := Then(sum.Present("x"), parse); got.IsPresent() {
		t.Fatalf("unexpected %v", got)
	}
	if got := Then(sum.Absent[string](), parse); got.IsPresent() {
		t.Fatalf("unexpected %v", got)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   sum.Option[sum.Option[int]]
		want sum.Option[int]
	}{
		{"present present", sum.Present(sum.Present(1)), sum.Present(1)},
		{"present absent", sum.Present(sum.Absent[int]()), sum.Absent[int]()},
		{"absent", sum.Absent[sum.Option[int]](), sum.Absent[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.in); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCollectAndValues(t *testing.T) {
	t.Parallel()
	all := []sum.Option[int]{sum.Present(1), sum.Present(2)}
	some := []sum.Option[int]{sum.Present(1), sum.Absent[int](), sum.Present(3)}

	got, ok := Collect(all).Get()
	if !ok || !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("unexpected %v", got)
	}
	if Collect(some).IsPresent() {
		t.Fatalf("collect must be absent when one element is absent")
	}
	if got, ok := Collect[int](nil).Get(); !ok || len(got) != 0 {
		t.Fatalf("empty input must collect to an empty slice")
	}
	if got := Values(some); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Fatalf("unexpected %v", got)
	}
}

func TestZip(t *testing.T) {
	t.Parallel()
	got := Zip(sum.Present("a"), sum.Present(1))
	if got != sum.Present(Pair[string, int]{First: "a", Second: 1}) {
		t.Fatalf("unexpected %v", got)
	}
	if Zip(sum.Present("a"), sum.Absent[int]()).IsPresent() {
		t.Fatalf("zip with absent must be absent")
	}
	if Zip(sum.Absent[string](), sum.Present(1)).IsPresent() {
		t.Fatalf("zip with absent must be absent")
	}
}

func TestOkOr(t *testing.T) {
	t.Parallel()
	if got := OkOr(sum.Present(1), "missing"); got != sum.Success[int, string](1) {
		t.Fatalf("unexpected %v", got)
	}
	if got := OkOr(sum.Absent[int](), "missing"); got != sum.Failure[int]("missing") {
		t.Fatalf("unexpected %v", got)
	}
}
