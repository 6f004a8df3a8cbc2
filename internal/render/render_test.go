package render

import (
	"strings"
	"testing"
)

func TestBytes_EnvOr(t *testing.T) {
	t.Setenv("RENDER_TEST_TRANSPORT", "http")
	out, err := Bytes("test", []byte(`transport: {{ envOr "RENDER_TEST_TRANSPORT" "stdio" }}`))
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if string(out) != "transport: http" {
		t.Errorf("rendered %q", out)
	}
}

func TestBytes_EnvOrDefault(t *testing.T) {
	out, err := Bytes("test", []byte(`transport: {{ envOr "RENDER_TEST_UNSET_VAR" "stdio" }}`))
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if string(out) != "transport: stdio" {
		t.Errorf("rendered %q", out)
	}
}

func TestBytes_MissingEnvReported(t *testing.T) {
	_, err := Bytes("test", []byte(`app: {{ env "RENDER_TEST_DEFINITELY_MISSING" }}`))
	if err == nil {
		t.Fatal("missing env var not reported")
	}
	if !strings.Contains(err.Error(), "RENDER_TEST_DEFINITELY_MISSING") {
		t.Errorf("error does not name the missing variable: %v", err)
	}
}

func TestBytes_ParseError(t *testing.T) {
	if _, err := Bytes("test", []byte(`{{ envOr "x" }}`)); err == nil {
		t.Fatal("malformed template accepted")
	}
}
