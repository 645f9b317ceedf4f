package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"transport_failure": TransportFailure,
		"selector_failure":  SelectorFailure,
		"timing_failure":    TimingFailure,
		"invalid_profile":   InvalidProfile,
		"unknown_profile":   UnknownProfile,
		"bus_in_use":        BusInUse,
		"busy":              Busy,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	cause := errors.New("spi: tx timeout")
	e := &E{C: TransportFailure, Op: "transact", Err: cause}

	if Of(nil) != OK {
		t.Fatal("Of(nil) should be OK")
	}
	if Of(BusInUse) != BusInUse {
		t.Fatal("bare Code not extracted")
	}
	if Of(e) != TransportFailure {
		t.Fatalf("Of(E) = %q", Of(e))
	}
	if Of(fmt.Errorf("bringup: %w", e)) != TransportFailure {
		t.Fatal("wrapped E not extracted")
	}
	if Of(cause) != Error {
		t.Fatal("foreign error should map to Error")
	}
	if !errors.Is(e, cause) {
		t.Fatal("E should unwrap to its cause")
	}
	if !errors.Is(e, TransportFailure) {
		t.Fatal("errors.Is should match the code")
	}
}

func TestErrorString(t *testing.T) {
	e := &E{C: SelectorFailure, Op: "select", Msg: "S1 readback low", Err: nil}
	if got, want := e.Error(), "select: selector_failure: S1 readback low"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFatal(t *testing.T) {
	for _, c := range []Code{TransportFailure, SelectorFailure, TimingFailure} {
		if !Fatal(Wrap(c, "op", nil)) {
			t.Fatalf("%s should be fatal", c)
		}
	}
	if Fatal(Busy) || Fatal(nil) {
		t.Fatal("non bring-up codes must not be fatal")
	}
}
