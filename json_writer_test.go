package marketrisk

import (
	"errors"
	"math"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{"empty", func(w *jsonObjectWriter) {}, `{}`},
		{"ordered", func(w *jsonObjectWriter) {
			w.Append("z", 1).Append("a", "x").Float("m", 0.5)
		}, `{"z":1,"a":"x","m":0.5}`},
		{"optional", func(w *jsonObjectWriter) {
			w.Optional("zero", 0).Optional("empty", "").Optional("nil", nil).Optional("set", "v")
		}, `{"set":"v"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestJsonObjectWriter_NonFinite(t *testing.T) {
	var w jsonObjectWriter
	w.Float("ok", 1).Float("bad", math.NaN()).Append("after", 2)
	if _, err := w.MarshalJSON(); !errors.Is(err, ErrNonFinite) {
		t.Errorf("MarshalJSON() error = %v, want %v", err, ErrNonFinite)
	}
}
