package memory_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clipquiz/internal/domain"
	"clipquiz/internal/infra/memory"
)

func TestCatalogImportAndFirstMatchLookup(t *testing.T) {
	catalog := memory.NewCatalog()
	ctx := context.Background()

	src := strings.Join([]string{
		`{"video_id":"v1","question_id":"q1","question_text":"?","options":["A","B"],"answer_choice":"A","final_category":"Counting"}`,
		`{broken`,
		`{"video_id":"v2","question_id":"q1","question_text":"?","options":["A","B"],"answer_choice":"B","final_category":"Vertical position"}`,
	}, "\n")
	count, err := catalog.Import(ctx, strings.NewReader(src))
	if err != nil || count != 2 {
		t.Fatalf("import: count=%d err=%v", count, err)
	}

	q, err := catalog.Lookup(ctx, "q1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if q.FinalCategory != "Counting" {
		t.Fatalf("expected first record to win, got %q", q.FinalCategory)
	}
}

func TestRegistryDuplicateAndLength(t *testing.T) {
	registry := memory.NewRegistry()
	ctx := context.Background()

	if err := registry.Register(ctx, "alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(ctx, "alice"); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if err := registry.Register(ctx, "al"); !errors.Is(err, domain.ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
}

func TestAnswerLogAnsweredIDs(t *testing.T) {
	log := memory.NewAnswerLog()
	ctx := context.Background()

	if err := log.Record(ctx, "alice", "q1", "A", true); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Record(ctx, "alice", "q1", "B", false); err != nil {
		t.Fatalf("record: %v", err)
	}
	ids, err := log.AnsweredIDs(ctx, "alice")
	if err != nil {
		t.Fatalf("answered ids: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected one distinct id, got %d", len(ids))
	}
	all, err := log.All(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected both rows retained, got %d err=%v", len(all), err)
	}
}

func TestLabelStoreLatestWins(t *testing.T) {
	store := memory.NewLabelStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, "alice", "q1", "Counting", time.Now()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.Upsert(ctx, "alice", "q1", "Vertical position", time.Now()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	all, err := store.All(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected single row, got %d err=%v", len(all), err)
	}
	if all[0].Label != "Vertical position" {
		t.Fatalf("expected latest label, got %q", all[0].Label)
	}
}
