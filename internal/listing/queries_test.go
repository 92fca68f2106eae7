package listing

import (
	"context"
	"strings"
	"testing"
)

type fakeRunner struct {
	lines []string
	args  []string
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) []string {
	f.args = args
	return f.lines
}

func TestContainersProjection(t *testing.T) {
	r := &fakeRunner{lines: []string{
		`{"ID":"abc123","Names":"web","Command":"nginx","Image":"nginx:latest","State":"running","Status":"Up 2 hours"}`,
	}}

	entries := Containers(context.Background(), r)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Display != "web" {
		t.Errorf("expected display web, got %q", entries[0].Display)
	}
	if entries[0].Ordinal != "abc123 web" {
		t.Errorf("expected ordinal %q, got %q", "abc123 web", entries[0].Ordinal)
	}
	if _, ok := entries[0].Value.(Container); !ok {
		t.Errorf("expected Container value, got %T", entries[0].Value)
	}
	if strings.Join(r.args, " ") != "ps" {
		t.Errorf("expected ps subcommand, got %v", r.args)
	}
}

func TestContainersDropsMalformedLines(t *testing.T) {
	r := &fakeRunner{lines: []string{
		`{"ID":"a1","Names":"web"}`,
		`WARNING: stray daemon output`,
		`{"ID":"b2","Names":"db"}`,
		`{"broken`,
	}}

	entries := Containers(context.Background(), r)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Display != "web" || entries[1].Display != "db" {
		t.Errorf("unexpected entries: %v, %v", entries[0].Display, entries[1].Display)
	}
}

func TestContainersEmptyOutput(t *testing.T) {
	entries := Containers(context.Background(), &fakeRunner{})
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestVolumesProjection(t *testing.T) {
	r := &fakeRunner{lines: []string{
		`{"Name":"pgdata","Driver":"local"}`,
	}}

	entries := Volumes(context.Background(), r)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Display != "pgdata" || entries[0].Ordinal != "pgdata" {
		t.Errorf("unexpected projection: %q / %q", entries[0].Display, entries[0].Ordinal)
	}
	if strings.Join(r.args, " ") != "volume ls" {
		t.Errorf("expected volume ls subcommand, got %v", r.args)
	}
}

func TestImagesProjection(t *testing.T) {
	r := &fakeRunner{lines: []string{
		`{"Repository":"myapp","Tag":"v2","ID":"sha123"}`,
		`{"Repository":"<none>","Tag":"<none>","ID":"dangling1"}`,
	}}

	entries := Images(context.Background(), r)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Display != "myapp:v2" {
		t.Errorf("expected display myapp:v2, got %q", entries[0].Display)
	}
	if entries[0].Ordinal != "myapp:v2 sha123" {
		t.Errorf("unexpected ordinal %q", entries[0].Ordinal)
	}
	// Dangling images fall back to the ID as their identity.
	if entries[1].Display != "dangling1" {
		t.Errorf("expected dangling display dangling1, got %q", entries[1].Display)
	}
	if strings.Join(r.args, " ") != "images" {
		t.Errorf("expected images subcommand, got %v", r.args)
	}
}
