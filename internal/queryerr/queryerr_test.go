package queryerr

import (
	"errors"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := NotFound("file main.py")
	if !Is(err, KindNotFound) {
		t.Error("Is(NotFound(...), KindNotFound) = false, want true")
	}
	if Is(err, KindTimeout) {
		t.Error("Is(NotFound(...), KindTimeout) = true, want false")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is(Internal(cause), cause) = false, want true")
	}
	if err.Kind() != KindInternal {
		t.Errorf("Kind() = %v, want KindInternal", err.Kind())
	}
}

func TestAsEnvelopeOmitsCause(t *testing.T) {
	err := Wrap(KindInternal, "bad", errors.New("secret detail"))
	env := err.AsEnvelope()
	if env.Kind != KindInternal || env.Message != "bad" {
		t.Errorf("AsEnvelope() = %+v, want {KindInternal bad}", env)
	}
}
