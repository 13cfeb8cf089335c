package smallstring

import (
	"math"
	"strconv"
	"testing"
)

func TestPushInt(t *testing.T) {
	cases := []int64{
		0, 5, 9, 10, 15, 99, 100, -1, -9, -10, -1254,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	}
	for _, v := range cases {
		t.Run(strconv.FormatInt(v, 10), func(t *testing.T) {
			buf := New()
			if err := buf.PushInt(v); err != nil {
				t.Fatalf("PushInt(%d) error: %v", v, err)
			}
			want := strconv.FormatInt(v, 10)
			if got := buf.String(); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
			if buf.Len() != len(want) {
				t.Errorf("Len() = %d, want %d", buf.Len(), len(want))
			}
		})
	}
}

func TestPushUint(t *testing.T) {
	cases := []uint64{0, 7, 10, 12345678910, math.MaxUint64}
	for _, v := range cases {
		t.Run(strconv.FormatUint(v, 10), func(t *testing.T) {
			buf := New()
			if err := buf.PushUint(v); err != nil {
				t.Fatalf("PushUint(%d) error: %v", v, err)
			}
			want := strconv.FormatUint(v, 10)
			if got := buf.String(); got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestPushIntAfterText(t *testing.T) {
	buf := New()
	if err := buf.PushString("x="); err != nil {
		t.Fatalf("PushString error: %v", err)
	}
	if err := buf.PushInt(-42); err != nil {
		t.Fatalf("PushInt error: %v", err)
	}
	if err := buf.PushString(";"); err != nil {
		t.Fatalf("PushString error: %v", err)
	}
	if err := buf.PushUint(1000); err != nil {
		t.Fatalf("PushUint error: %v", err)
	}
	if got := buf.String(); got != "x=-42;1000" {
		t.Errorf("got %q, want %q", got, "x=-42;1000")
	}
}

func TestPushIntTightCapacity(t *testing.T) {
	// Growth must be sized for digits plus the sign.
	buf := NewSize(0)
	if err := buf.PushInt(-1254); err != nil {
		t.Fatalf("PushInt error: %v", err)
	}
	if got := buf.String(); got != "-1254" {
		t.Errorf("got %q, want %q", got, "-1254")
	}
	if buf.Capacity() != 5 {
		t.Errorf("Capacity() = %d, want 5 (exact fit)", buf.Capacity())
	}
}

func TestDecimalDigits(t *testing.T) {
	cases := []struct {
		in   uint64
		want int
	}{
		{0, 1}, {1, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3},
		{12345678910, 11}, {math.MaxUint64, 20},
	}
	for _, c := range cases {
		if got := decimalDigits(c.in); got != c.want {
			t.Errorf("decimalDigits(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
