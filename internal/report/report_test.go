package report

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stripANSI removes ANSI escape sequences so assertions hold on a TTY too.
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Result{Operation: "add", Operands: []float64{2, 3}, Value: 5}, "add(2, 3) = 5\n"},
		{Result{Operation: "add", Operands: []float64{2.5, 0.5}, Value: 3}, "add(2.5, 0.5) = 3\n"},
		{Result{Operation: "halve", Operands: []float64{5}, Value: 2.5}, "halve(5) = 2.5\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteText(&buf, tt.r); err != nil {
			t.Fatalf("WriteText() unexpected error: %v", err)
		}
		if got := stripANSI(buf.String()); got != tt.want {
			t.Errorf("WriteText(%s) = %q, want %q", tt.r.Operation, got, tt.want)
		}
	}
}

func TestWriteText_PlainForNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Operation: "add", Operands: []float64{2, 3}, Value: 5}
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("WriteText() unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("WriteText() to a buffer emitted ANSI escapes: %q", buf.String())
	}
	if buf.String() != "add(2, 3) = 5\n" {
		t.Errorf("WriteText() = %q, want %q", buf.String(), "add(2, 3) = 5\n")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	r := Result{Operation: "halve", Operands: []float64{4}, Value: 2}
	if err := WriteJSON(&buf, r, "1.2.3"); err != nil {
		t.Fatalf("WriteJSON() unexpected error: %v", err)
	}

	var parsed JSONReport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput:\n%s", err, buf.String())
	}
	if parsed.Version != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", parsed.Version)
	}
	if parsed.Operation != "halve" || parsed.Value != 2 {
		t.Errorf("parsed = %+v, want halve = 2", parsed)
	}
}

func TestWriteJSON_NilOperands(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Result{Operation: "add"}, "dev"); err != nil {
		t.Fatalf("WriteJSON() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"operands": []`) {
		t.Errorf("expected empty operands array, got:\n%s", buf.String())
	}
}

func TestSchema_ValidatesJSONOutput(t *testing.T) {
	sch, err := jsonschema.UnmarshalJSON(strings.NewReader(Schema))
	if err != nil {
		t.Fatalf("failed to parse schema JSON: %v", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", sch); err != nil {
		t.Fatalf("failed to add schema resource: %v", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		t.Fatalf("failed to compile schema: %v", err)
	}

	for _, r := range []Result{
		{Operation: "add", Operands: []float64{2, 3}, Value: 5},
		{Operation: "halve", Operands: []float64{5}, Value: 2.5},
	} {
		var buf bytes.Buffer
		if err := WriteJSON(&buf, r, "0.1.0"); err != nil {
			t.Fatalf("WriteJSON failed: %v", err)
		}
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if err := compiled.Validate(inst); err != nil {
			t.Errorf("%s output does not conform to schema:\n%v", r.Operation, err)
		}
	}
}
