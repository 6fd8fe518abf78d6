package result

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/ib-77/sumwire/pkg/sum"
)

func TestMap(t *testing.T) {
	t.Parallel()
	double := func(v int) int { return v * 2 }

	if got := Map(sum.Success[int, string](2), double); got != sum.Success[int, string](4) {
		t.Fatalf("unexpected %v", got)
	}
	if got := Map(sum.Failure[int]("bad"), double); got != sum.Failure[int]("bad") {
		t.Fatalf("unexpected %v", got)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	code := func(msg string) int { return len(msg) }

	if got := MapError(sum.Failure[int]("bad"), code); got != sum.Failure[int](3) {
		t.Fatalf("unexpected %v", got)
	}
	if got := MapError(sum.Success[int, string](1), code); got != sum.Success[int, int](1) {
		t.Fatalf("unexpected %v", got)
	}
}

func TestThenAndOrElse(t *testing.T) {
	t.Parallel()
	parse := func(s string) sum.Result[int, error] { return FromTuple(strconv.Atoi(s)) }

	r := Then(sum.Success[string, error]("7"), parse)
	if v, ok := r.Value(); !ok || v != 7 {
		t.Fatalf("unexpected %v", r)
	}
	if Then(sum.Success[string, error]("x"), parse).IsSuccess() {
		t.Fatalf("bad input must fail")
	}

	recovered := OrElse(Then(sum.Success[string, error]("x"), parse),
		func(error) sum.Result[int, string] { return sum.Success[int, string](0) })
	if recovered != sum.Success[int, string](0) {
		t.Fatalf("unexpected %v", recovered)
	}
	kept := OrElse(sum.Success[int, error](5),
		func(error) sum.Result[int, string] { return sum.Failure[int]("unused") })
	if kept != sum.Success[int, string](5) {
		t.Fatalf("unexpected %v", kept)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	inner := sum.Failure[int]("inner")
	if got := Flatten(sum.Success[sum.Result[int, string], string](inner)); got != inner {
		t.Fatalf("unexpected %v", got)
	}
	if got := Flatten(sum.Failure[sum.Result[int, string]]("outer")); got != sum.Failure[int]("outer") {
		t.Fatalf("unexpected %v", got)
	}
}

func TestCollectAndPartition(t *testing.T) {
	t.Parallel()
	in := []sum.Result[int, string]{
		sum.Success[int, string](1),
		sum.Failure[int]("a"),
		sum.Success[int, string](2),
		sum.Failure[int]("b"),
	}

	if e, failed := Collect(in).Err(); !failed || e != "a" {
		t.Fatalf("expected first failure, got %q", e)
	}
	all, ok := Collect(in[:1]).Value()
	if !ok || !reflect.DeepEqual(all, []int{1}) {
		t.Fatalf("unexpected %v", all)
	}

	values, errs := Partition(in)
	if !reflect.DeepEqual(values, []int{1, 2}) || !reflect.DeepEqual(errs, []string{"a", "b"}) {
		t.Fatalf("unexpected partition %v / %v", values, errs)
	}
}

func TestFromTupleAndTry(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	if got := FromTuple(1, nil); !got.IsSuccess() {
		t.Fatalf("unexpected %v", got)
	}
	got := Try(func() (string, error) { return "", boom })
	if e, ok := got.Err(); !ok || !errors.Is(e, boom) {
		t.Fatalf("unexpected %v", got)
	}
}
