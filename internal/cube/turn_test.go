package cube

import (
	"reflect"
	"testing"
)

func TestParseTurnRoundTrip(t *testing.T) {
	cases := []string{"R", "R'", "R2", "U", "U'", "U2", "F2", "B'"}
	for _, c := range cases {
		turn, err := ParseTurn(c)
		if err != nil {
			t.Fatalf("ParseTurn(%q): %v", c, err)
		}
		if turn.Notation() != c {
			t.Fatalf("ParseTurn(%q).Notation() = %q", c, turn.Notation())
		}
	}
}

func TestParseTurnRejectsInvalidToken(t *testing.T) {
	for _, bad := range []string{"M", "M'", "X2", "", "R3"} {
		if _, err := ParseTurn(bad); err != ErrInvalidToken {
			t.Fatalf("ParseTurn(%q) error = %v, want ErrInvalidToken", bad, err)
		}
	}
}

func TestParseTurnRejectsLowercase(t *testing.T) {
	for _, bad := range []string{"r", "u2", "f'", "b", "l2", "d'"} {
		if _, err := ParseTurn(bad); err != ErrInvalidToken {
			t.Fatalf("ParseTurn(%q) error = %v, want ErrInvalidToken", bad, err)
		}
	}
}

func TestParseTurnsFailsAtomically(t *testing.T) {
	_, err := ParseTurns("R U M U'")
	if err != ErrInvalidToken {
		t.Fatalf("ParseTurns with M token: err = %v, want ErrInvalidToken", err)
	}
}

func TestInverse(t *testing.T) {
	r, _ := ParseTurn("R")
	if r.Inverse().Notation() != "R'" {
		t.Fatalf("R.Inverse() = %s", r.Inverse())
	}
	r2, _ := ParseTurn("R2")
	if r2.Inverse().Notation() != "R2" {
		t.Fatalf("R2.Inverse() = %s", r2.Inverse())
	}
}

func TestMergeCancel(t *testing.T) {
	r, _ := ParseTurn("R")
	rp, _ := ParseTurn("R'")
	if _, ok := r.Merge(rp); ok {
		t.Fatal("R merged with R' should cancel")
	}
}

func TestMergeCombine(t *testing.T) {
	r, _ := ParseTurn("R")
	merged, ok := r.Merge(r)
	if !ok || merged.Notation() != "R2" {
		t.Fatalf("R.Merge(R) = %v, %v", merged, ok)
	}
	r2, _ := ParseTurn("R2")
	merged, ok = r2.Merge(r)
	if !ok || merged.Notation() != "R'" {
		t.Fatalf("R2.Merge(R) = %v, %v", merged, ok)
	}
}

func TestMergeDifferentFaceDoesNotMerge(t *testing.T) {
	r, _ := ParseTurn("R")
	u, _ := ParseTurn("U")
	if _, ok := r.Merge(u); ok {
		t.Fatal("turns on different faces should not merge")
	}
}

func TestSimplifyCollapsesAndCancels(t *testing.T) {
	in, err := ParseTurns("R R U U' F F F")
	if err != nil {
		t.Fatal(err)
	}
	got := Simplify(in)
	want, err := ParseTurns("R2 F'")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Simplify = %s, want %s", FormatTurns(got), FormatTurns(want))
	}
}

func TestSimplifyLeavesDifferentFacesAlone(t *testing.T) {
	in, err := ParseTurns("R U F")
	if err != nil {
		t.Fatal(err)
	}
	got := Simplify(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Simplify(%s) = %s, want unchanged", FormatTurns(in), FormatTurns(got))
	}
}

func TestFormatTurnsEmpty(t *testing.T) {
	if FormatTurns(nil) != "" {
		t.Fatal("FormatTurns(nil) should be empty string")
	}
}
