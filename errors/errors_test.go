package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New(PhaseImport, KindNative).
		Path("scene", "meshes[2]").
		Detail("bad vertex count %d", 7).
		Build()

	got := err.Error()
	for _, want := range []string{"[import]", "native", "scene.meshes[2]", "bad vertex count 7"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := Native(PhaseExport, "exporter rejected scene")
	if !stderrors.Is(err, &Error{Phase: PhaseExport, Kind: KindNative}) {
		t.Error("expected Is to match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseImport, Kind: KindNative}) {
		t.Error("expected Is to reject different phase")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("dlopen failed")
	err := Load("open assimp library", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap chain to reach cause")
	}
	if !strings.Contains(err.Error(), "caused by: dlopen failed") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"not found", NotFound(PhaseLoad, "symbol", "aiImportFile"), KindNotFound},
		{"unsupported", Unsupported(PhaseLoad, "platform"), KindUnsupported},
		{"nil pointer", NilPointer(PhaseMarshal, "scene"), KindNilPointer},
		{"out of range", OutOfRange(PhaseUnmarshal, nil, 5, 3), KindOutOfRange},
		{"invalid data", InvalidData(PhaseExport, nil, "empty mesh"), KindInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error string")
			}
		})
	}
}

func TestNativeEmptyDetail(t *testing.T) {
	err := Native(PhaseImport, "")
	if !strings.Contains(err.Error(), "no error message") {
		t.Errorf("Error() = %q, want placeholder detail", err.Error())
	}
}
