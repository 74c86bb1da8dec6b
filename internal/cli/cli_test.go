package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/observability"
	"github.com/matzehuels/viewport/pkg/viewport"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"compute", "batch", "serve", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestComputeSVG(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: []string{"--viewbox", "0,0,100,50", "--element", "0,0,200,200"},
			want: "matrix(2 0 0 2 0 50)",
		},
		{
			name: "symbol",
			args: []string{"--viewbox", "0,0,100,50", "--element", "0,0,200,200", "--symbol"},
			want: "matrix(2 0 0 2 0 100)",
		},
		{
			name: "slice xMaxYMin",
			args: []string{"--viewbox", "0,0,100,50", "--element", "0,0,200,200", "--align", "xMaxYMin", "--fit", "slice"},
			want: "matrix(4 0 0 4 -200 0)",
		},
		{
			name: "fit none",
			args: []string{"--viewbox", "0,0,400,200", "--element", "0,0,100,100", "--fit", "none"},
			want: "matrix(0.25 0 0 0.25 0 -25)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"compute", "--format", "svg"}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("compute error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("compute = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeJSON(t *testing.T) {
	out, err := execute(t, "compute", "-f", "json", "--viewbox", "0,0,100,50", "--element", "0,0,200,200")
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}

	var got struct {
		Matrix map[string]float64 `json:"matrix"`
		Finite bool               `json:"finite"`
		Params struct {
			Fit string `json:"fit"`
		} `json:"params"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if !got.Finite || got.Matrix["a"] != 2 || got.Matrix["f"] != 50 {
		t.Errorf("output = %+v", got)
	}
	if got.Params.Fit != "meet" {
		t.Errorf("params.fit = %q, want meet", got.Params.Fit)
	}
}

func TestComputeText(t *testing.T) {
	out, err := execute(t, "compute", "--viewbox", "0,0,100,50", "--element", "0,0,200,200")
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	for _, want := range []string{"scale", "2, 2", "translate", "0, 50", "matrix(2 0 0 2 0 50)", "inverse"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestComputeNonFiniteWarns(t *testing.T) {
	out, err := execute(t, "compute", "--viewbox", "0,0,0,50", "--element", "0,0,200,200")
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	if !strings.Contains(out, "not finite") {
		t.Errorf("expected non-finite warning:\n%s", out)
	}
}

func TestComputeJSONNonFiniteInput(t *testing.T) {
	out, err := execute(t, "compute", "-f", "json", "--viewbox", "0,0,NaN,10", "--element", "0,0,10,+Inf")
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}

	var got struct {
		Matrix geom.Matrix     `json:"matrix"`
		Finite bool            `json:"finite"`
		Params viewport.Params `json:"params"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Finite {
		t.Error("finite = true, want false")
	}
	if got.Matrix != (geom.Matrix{}) {
		t.Errorf("matrix = %+v, want zero", got.Matrix)
	}
	if got.Params.ViewBox.Width != 0 || got.Params.Element.Height != 0 {
		t.Errorf("params = %+v, want non-finite sizes zeroed", got.Params)
	}
	if got.Params.Element.Width != 10 {
		t.Errorf("element width = %v, want 10", got.Params.Element.Width)
	}
}

func TestComputeTextSingular(t *testing.T) {
	out, err := execute(t, "compute", "--viewbox", "0,0,100,50", "--element", "0,0,0,200")
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	if !strings.Contains(out, "matrix(0 0 0 0 0 100)") {
		t.Errorf("text output missing transform:\n%s", out)
	}
	if strings.Contains(out, "inverse") {
		t.Errorf("singular transform should have no inverse line:\n%s", out)
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
	}{
		{"short viewbox", []string{"--viewbox", "0,0,100", "--element", "0,0,1,1"}, errors.ErrCodeInvalidRect},
		{"bad fit", []string{"--viewbox", "0,0,1,1", "--element", "0,0,1,1", "--fit", "cover"}, errors.ErrCodeInvalidFit},
		{"bad format", []string{"--viewbox", "0,0,1,1", "--element", "0,0,1,1", "--format", "png"}, errors.ErrCodeInvalidFormat},
		{"strict align", []string{"--viewbox", "0,0,1,1", "--element", "0,0,1,1", "--align", "center", "--strict"}, errors.ErrCodeInvalidAlign},
		{"strict size", []string{"--viewbox", "0,0,0,1", "--element", "0,0,1,1", "--strict"}, errors.ErrCodeInvalidRect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"compute"}, tt.args...)...)
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %q (err %v), want %q", got, err, tt.wantCode)
			}
		})
	}
}

func TestComputeRequiresRects(t *testing.T) {
	if _, err := execute(t, "compute", "--viewbox", "0,0,1,1"); err == nil {
		t.Error("compute without --element should fail")
	}
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.toml")
	data := `
[defaults]
fit = "meet"

[[mapping]]
name = "icon"
view_box = [0, 0, 100, 50]
element = [0, 0, 200, 200]

[[mapping]]
name = "symbol"
view_box = [0, 0, 100, 50]
element = [0, 0, 200, 200]
from_symbol = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "batch", "--format", "svg", path)
	if err != nil {
		t.Fatalf("batch error: %v", err)
	}
	want := "icon\tmatrix(2 0 0 2 0 50)\nsymbol\tmatrix(2 0 0 2 0 100)\n"
	if out != want {
		t.Errorf("batch output = %q, want %q", out, want)
	}

	out, err = execute(t, "batch", path)
	if err != nil {
		t.Fatalf("batch text error: %v", err)
	}
	if !strings.Contains(out, "2 transforms computed") {
		t.Errorf("text output missing summary:\n%s", out)
	}

	out, err = execute(t, "batch", "-f", "json", path)
	if err != nil {
		t.Fatalf("batch json error: %v", err)
	}
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(results) != 2 || results[1]["name"] != "symbol" {
		t.Errorf("json results = %v", results)
	}
}

func TestBatchJSONNonFiniteInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.toml")
	data := `
[[mapping]]
name = "broken"
view_box = [0.0, 0.0, inf, 10.0]
element = [0, 0, 200, 200]

[[mapping]]
name = "icon"
view_box = [0, 0, 100, 50]
element = [0, 0, 200, 200]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "batch", "-f", "json", path)
	if err != nil {
		t.Fatalf("batch json error: %v", err)
	}
	var results []struct {
		Name   string          `json:"name"`
		Finite bool            `json:"finite"`
		Params viewport.Params `json:"params"`
		SVG    string          `json:"svg"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Finite || results[0].Params.ViewBox.Width != 0 {
		t.Errorf("broken = %+v, want finite=false and zeroed width", results[0])
	}
	if !results[1].Finite || results[1].SVG != "matrix(2 0 0 2 0 50)" {
		t.Errorf("icon = %+v", results[1])
	}
}

func TestBatchLogsToCLILogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.toml")
	data := "[[mapping]]\nname = \"icon\"\nview_box = [0, 0, 1, 1]\nelement = [0, 0, 2, 2]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"batch", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("batch error: %v", err)
	}
	if !strings.Contains(logs.String(), "Loading") {
		t.Errorf("CLI logger got %q, want the batch progress", logs.String())
	}
}

type recordingHooks struct {
	sources []string
	errs    []error
}

func (h *recordingHooks) OnRejected(_ context.Context, source string, err error) {
	h.sources = append(h.sources, source)
	h.errs = append(h.errs, err)
}

func (h *recordingHooks) OnTransform(context.Context, string, viewport.Params, geom.Matrix, time.Duration) {
}

func TestBatchMissingFile(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetTransformHooks(hooks)
	defer observability.Reset()

	_, err := execute(t, "batch", filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("batch error = %v, want FILE_NOT_FOUND", err)
	}
	if len(hooks.sources) != 1 || hooks.sources[0] != "batch" {
		t.Fatalf("OnRejected sources = %v, want [batch]", hooks.sources)
	}
	if !errors.Is(hooks.errs[0], errors.ErrCodeFileNotFound) {
		t.Errorf("OnRejected error = %v, want FILE_NOT_FOUND", hooks.errs[0])
	}
}

func TestBatchInvalidTOMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.toml")
	if err := os.WriteFile(path, []byte("[[mapping]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	hooks := &recordingHooks{}
	observability.SetTransformHooks(hooks)
	defer observability.Reset()

	_, err := execute(t, "batch", path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("batch error = %v, want INVALID_CONFIG", err)
	}
	if len(hooks.errs) != 1 {
		t.Errorf("OnRejected calls = %d, want 1", len(hooks.errs))
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "viewport") {
		t.Error("bash completion should mention the command name")
	}
}
