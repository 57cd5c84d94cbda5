package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y", "on", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "off", "0", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero("", "a", "b") != "a" {
		t.Fatal()
	}
	if FirstNonZero(0, 0) != 0 {
		t.Fatal()
	}
	if FirstNonZero(3) != 3 {
		t.Fatal()
	}
}
