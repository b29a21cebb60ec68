package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"quizzy-backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "quizzy.json"), 5*time.Second)
}

func TestLoad_SeedsDefaultDocumentWhenMissing(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(doc.Questions) == 0 {
		t.Error("expected seed question")
	}
	if len(doc.Quizzes) == 0 {
		t.Error("expected seed quiz")
	}
	if doc.Settings.QuizTimeLimit != 30 || doc.Settings.PassingScore != 70 {
		t.Errorf("expected default settings, got %+v", doc.Settings)
	}
	if doc.SchemaVersion != SchemaVersion {
		t.Errorf("expected schema version %d, got %d", SchemaVersion, doc.SchemaVersion)
	}

	// The default document must also have been persisted.
	if _, err := os.Stat(s.path); err != nil {
		t.Errorf("expected data file to exist after first load: %v", err)
	}
}

func TestLoad_CorruptFileSurfacesError(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}

	// A corrupt file must never be silently replaced.
	data, _ := os.ReadFile(s.path)
	if string(data) != "{not json" {
		t.Error("corrupt file was rewritten")
	}
}

func TestLoad_BackfillsMissingCollections(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.path, []byte(`{"questions":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc.Results == nil || doc.Users == nil || doc.Achievements == nil || doc.AuditLogs == nil {
		t.Error("expected all collections to be non-nil")
	}
	if doc.Settings.FeedbackMode == "" || doc.Settings.GradingScheme == "" {
		t.Errorf("expected settings backfilled from defaults, got %+v", doc.Settings)
	}
}

func TestSaveLoad_RoundTripIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc.Results = append(doc.Results, models.Result{
		ID:             uuid.New().String(),
		StudentName:    "Ann",
		Score:          3,
		TotalQuestions: 4,
		Answers:        []models.Answer{},
		Timestamp:      time.Now().UnixMilli(),
		Completed:      true,
		Percentage:     75,
	})

	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	want, _ := json.Marshal(doc)
	got, _ := json.Marshal(reloaded)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("round trip lost data:\nwant %s\ngot  %s", want, got)
	}
}

func TestUpdate_SerializesConcurrentWriters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	initial, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	preexisting := len(initial.Results)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, func(doc *Document) error {
				doc.Results = append(doc.Results, models.Result{
					ID:             uuid.New().String(),
					StudentName:    "Student",
					Score:          1,
					TotalQuestions: 2,
					Timestamp:      time.Now().UnixMilli(),
				})
				return nil
			})
			if err != nil {
				t.Errorf("Update: %v", err)
			}
		}()
	}
	wg.Wait()

	final, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(final.Results) != preexisting+n {
		t.Errorf("expected %d results, got %d (lost update)", preexisting+n, len(final.Results))
	}

	seen := make(map[string]bool)
	for _, r := range final.Results {
		if seen[r.ID] {
			t.Errorf("duplicate result id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestUpdate_ErrorLeavesDocumentUnchanged(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantErr := errors.New("mutation rejected")
	if _, err := s.Update(ctx, func(doc *Document) error {
		doc.Results = append(doc.Results, models.Result{ID: "should-not-persist"})
		return wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("expected mutation error, got %v", err)
	}

	after, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(after.Results) != len(before.Results) {
		t.Error("rejected mutation was persisted")
	}
}

func TestSerialized_TimesOutWhenLockHeld(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "quizzy.json"), 50*time.Millisecond)

	release := make(chan struct{})
	go s.serialized(context.Background(), func() error {
		<-release
		return nil
	})
	defer close(release)

	// Give the first operation time to take the lock.
	time.Sleep(10 * time.Millisecond)

	err := s.serialized(context.Background(), func() error { return nil })
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}
