package listing

import (
	"strings"
	"testing"

	"skiff/internal/picker"
)

func TestRenderContainerAllLabels(t *testing.T) {
	c := Container{ID: "abc", Names: "web", Image: "nginx:latest", State: "running"}
	out := RenderContainer(c)

	if !strings.HasPrefix(out, "# web\n") {
		t.Errorf("expected title line, got %q", out)
	}
	for _, want := range []string{"**ID**: abc", "**Image**: nginx:latest", "**State**: running"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestRenderMissingFieldKeepsLabel(t *testing.T) {
	// A field absent from the decoded record renders as a labeled empty
	// value, never an error and never a dropped line.
	out := RenderContainer(Container{Names: "web"})
	if !strings.Contains(out, "- **Ports**: \n") {
		t.Errorf("expected empty Ports line, got %q", out)
	}
	if !strings.Contains(out, "- **Status**: \n") {
		t.Errorf("expected empty Status line, got %q", out)
	}
}

func TestRenderVolume(t *testing.T) {
	out := RenderVolume(Volume{Name: "pgdata", Driver: "local", Mountpoint: "/data"})
	if !strings.HasPrefix(out, "# pgdata\n") {
		t.Errorf("expected title line, got %q", out)
	}
	if !strings.Contains(out, "**Mountpoint**: /data") {
		t.Errorf("missing mountpoint in %q", out)
	}
}

func TestRenderImage(t *testing.T) {
	out := RenderImage(Image{Repository: "myapp", Tag: "v2", ID: "sha123"})
	if !strings.HasPrefix(out, "# myapp:v2\n") {
		t.Errorf("expected ref title, got %q", out)
	}
	if !strings.Contains(out, "**ID**: sha123") {
		t.Errorf("missing ID in %q", out)
	}
}

func TestPreviewDispatch(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{Container{Names: "web"}, "# web"},
		{Volume{Name: "pgdata"}, "# pgdata"},
		{Image{Repository: "myapp", Tag: "v2"}, "# myapp:v2"},
		{"something else", ""},
	}
	for _, tt := range tests {
		got := Preview(picker.Entry{Value: tt.value})
		if tt.want == "" {
			if got != "" {
				t.Errorf("expected empty preview for %T, got %q", tt.value, got)
			}
			continue
		}
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("Preview(%T) = %q, want prefix %q", tt.value, got, tt.want)
		}
	}
}
