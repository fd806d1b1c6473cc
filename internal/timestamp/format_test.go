package timestamp

import (
	"testing"
	"time"
)

func TestFormat_UTC(t *testing.T) {
	got := Format(1560370115565, true)
	if want := "2019-06-12 20:08:35.565Z"; got != want {
		t.Fatalf("Format(utc) = %q, want %q", got, want)
	}
}

func TestFormat_Local(t *testing.T) {
	oldLocal := time.Local
	time.Local = time.FixedZone("TestLocal", 2*60*60)
	defer func() {
		time.Local = oldLocal
	}()

	got := Format(1560370115565, false)
	if want := "2019-06-12 22:08:35.565"; got != want {
		t.Fatalf("Format(local) = %q, want %q", got, want)
	}
}

func TestFormat_PadsMilliseconds(t *testing.T) {
	got := Format(1560370115005, true)
	if want := "2019-06-12 20:08:35.005Z"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_BeforeEpoch(t *testing.T) {
	got := Format(-1, true)
	if want := "1969-12-31 23:59:59.999Z"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}
