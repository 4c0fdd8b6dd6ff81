package rand

import "testing"

func TestGetBytesLength(t *testing.T) {
	b, err := GetBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 32 {
		t.Fatalf("len = %d, want 32", len(b))
	}
}

func TestGetBytesVariesAcrossCalls(t *testing.T) {
	a, err := GetBytes(16)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GetBytes(16)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two independent GetBytes calls produced identical output")
	}
}

func TestGetBytesLargerThanOneBlock(t *testing.T) {
	b, err := GetBytes(100)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 100 {
		t.Fatalf("len = %d, want 100", len(b))
	}
}
