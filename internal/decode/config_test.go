package decode

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/supernova/internal/snconfig"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{name: "beam", config: Beam(4), want: `{"type":"beam","num_beams":4}`},
		{name: "greedy", config: Greedy(), want: `{"type":"greedy"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.config)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	if _, err := json.Marshal(Config{Type: "sampling"}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := json.Marshal(Config{Type: KindGreedy, NumBeams: 8}); !errors.Is(err, ErrUnexpectedNumBeams) {
		t.Fatalf("expected ErrUnexpectedNumBeams, got %v", err)
	}
	if _, err := yaml.Marshal(Config{Type: KindGreedy, NumBeams: 8}); err == nil {
		t.Fatalf("expected YAML encoding of greedy with beams to fail")
	}
}

func TestGreedyWithBeamsIsNeverPersisted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := snconfig.NewStore(dir)

	_, err := snconfig.SaveIfNotExists(store, Config{Type: KindGreedy, NumBeams: 8})
	if !errors.Is(err, ErrUnexpectedNumBeams) {
		t.Fatalf("expected ErrUnexpectedNumBeams, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sn-config-decode.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no file to be written, stat returned %v", err)
	}

	for _, want := range []Config{Beam(8), Greedy()} {
		store := snconfig.NewStore(t.TempDir())
		if _, err := snconfig.SaveIfNotExists(store, want); err != nil {
			t.Fatalf("SaveIfNotExists(%v) returned error: %v", want, err)
		}
		got, err := snconfig.Load[Config](store)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if got != want {
			t.Fatalf("round trip mismatch: want %v, got %v", want, got)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Config
		wantErr error
	}{
		{name: "beam", input: `{"type":"beam","num_beams":2}`, want: Beam(2)},
		{name: "greedy", input: `{"type":"greedy"}`, want: Greedy()},
		{name: "greedy ignores beams", input: `{"type":"greedy","num_beams":3}`, want: Greedy()},
		{name: "missing beams", input: `{"type":"beam"}`, wantErr: ErrMissingNumBeams},
		{name: "unknown type", input: `{"type":"sampling"}`, wantErr: ErrUnknownKind},
		{name: "missing type", input: `{}`, wantErr: ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Config
			err := json.Unmarshal([]byte(tc.input), &got)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(Beam(6))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := "type: beam\nnum_beams: 6\n"; string(data) != want {
		t.Fatalf("expected %q, got %q", want, data)
	}

	var got Config
	if err := yaml.Unmarshal([]byte("type: greedy\n"), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != Greedy() {
		t.Fatalf("expected greedy, got %v", got)
	}

	if err := yaml.Unmarshal([]byte("type: beam\n"), &got); !errors.Is(err, ErrMissingNumBeams) {
		t.Fatalf("expected ErrMissingNumBeams, got %v", err)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := Beam(4).String(); got != "beam(num_beams=4)" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := Greedy().String(); got != "greedy" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestDefaultsPersistedUnderConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(snconfig.RootEnvVar, dir)
	store := snconfig.NewEnvStore()

	got, err := snconfig.Load[Config](store)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != Beam(4) {
		t.Fatalf("expected default beam(4), got %v", got)
	}

	if err := snconfig.SaveDefaultsIfNotExists[Config](store); err != nil {
		t.Fatalf("SaveDefaultsIfNotExists returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sn-config-decode.json"))
	if err != nil {
		t.Fatalf("read config file: %v", err)
	}
	if want := "{\n  \"type\": \"beam\",\n  \"num_beams\": 4\n}"; string(data) != want {
		t.Fatalf("unexpected file content:\n%s", data)
	}

	reloaded, err := snconfig.Load[Config](store)
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if reloaded != got {
		t.Fatalf("expected %v after reload, got %v", got, reloaded)
	}
}

func TestLoadMalformedDecoderFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sn-config-decode.json")
	if err := os.WriteFile(path, []byte(`{"type":"sampling"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := snconfig.Load[Config](snconfig.NewStore(dir))
	if !errors.Is(err, snconfig.ErrMalformed) || !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected malformed unknown-kind error, got %v", err)
	}
}
