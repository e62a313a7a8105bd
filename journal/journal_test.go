package journal_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/docsift/docsift/journal"
)

func openStore(t *testing.T) *journal.Store {
	t.Helper()
	s, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	runs := []*journal.Record{
		{Name: "file01.pdf", Title: "Application form", DocType: "form", Entries: 0, DurationMS: 12},
		{Name: "file02.pdf", Title: "Overview", DocType: "technical", Entries: 17, DurationMS: 48, OutputPath: "out/file02.json"},
		{Name: "file03.pdf", Title: "RFP: Request", DocType: "rfp", Entries: 39, DurationMS: 95},
	}
	for _, r := range runs {
		if err := s.Record(ctx, r); err != nil {
			t.Fatalf("record %s: %v", r.Name, err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(recent) = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Name != "file03.pdf" || got[2].Name != "file01.pdf" {
		t.Errorf("unexpected order: %q, %q, %q", got[0].Name, got[1].Name, got[2].Name)
	}
	if got[1].Entries != 17 || got[1].OutputPath != "out/file02.json" {
		t.Errorf("record round-trip mismatch: %+v", got[1])
	}
	if got[0].CreatedAt == "" {
		t.Error("created_at not stamped")
	}
}

func TestRecentLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, &journal.Record{Name: "doc.pdf", Title: "t", DocType: "other"}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(recent) = %d, want 2", len(got))
	}
}

func TestRecentEmpty(t *testing.T) {
	s := openStore(t)

	got, err := s.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(recent) = %d, want 0", len(got))
	}
}
