package session_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"reelsync/internal/catalog"
	"reelsync/internal/metadata"
	"reelsync/internal/prompt"
	"reelsync/internal/resolve"
	"reelsync/internal/session"
)

type stubCatalog struct {
	entries []catalog.Entry
	err     error
}

func (s *stubCatalog) QueryEntries(context.Context) ([]catalog.Entry, error) {
	return s.entries, s.err
}

type stubResolver struct {
	outcomes map[string]resolve.Outcome
	err      error
}

func (s *stubResolver) Resolve(_ context.Context, entry catalog.Entry) (resolve.Outcome, error) {
	if s.err != nil {
		return resolve.Outcome{}, s.err
	}
	outcome, ok := s.outcomes[entry.Title]
	if !ok {
		return resolve.Outcome{}, errors.New("unexpected entry: " + entry.Title)
	}
	return outcome, nil
}

type stubFetcher struct {
	err error
}

func (s *stubFetcher) Fetch(_ context.Context, entry catalog.Entry, tmdbID int64, correctedTitle string) (metadata.Canonical, error) {
	if s.err != nil {
		return metadata.Canonical{}, s.err
	}
	year := 0
	if entry.Year != nil {
		year = *entry.Year
	}
	return metadata.Canonical{
		TMDBID:         tmdbID,
		EntryID:        entry.ID,
		MediaType:      entry.MediaType,
		Title:          entry.Title,
		OriginalTitle:  entry.Title,
		Year:           year,
		CorrectedTitle: correctedTitle,
	}, nil
}

type recordingWriter struct {
	mu      sync.Mutex
	applied []string
	failOn  map[string]error
}

func (r *recordingWriter) Apply(_ context.Context, meta metadata.Canonical) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failOn[meta.Title]; ok {
		return err
	}
	r.applied = append(r.applied, meta.Title)
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	completed bool
	updated   int
	failed    int
	errored   bool
}

func (r *recordingNotifier) NotifySessionCompleted(_ context.Context, updated, skipped, failed int, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = true
	r.updated = updated
	r.failed = failed
	return nil
}

func (r *recordingNotifier) NotifySessionError(context.Context, error, string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errored = true
	return nil
}

func (r *recordingNotifier) TestNotification(context.Context) error { return nil }

func intPtr(v int) *int { return &v }

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "p1", Title: "Your Name", Year: intPtr(2016), MediaType: catalog.MediaTypeMovie},
		{ID: "p2", Title: "Old Boy", Year: intPtr(2003), MediaType: catalog.MediaTypeMovie},
		{ID: "p3", Title: "Dark", Year: intPtr(2017), MediaType: catalog.MediaTypeSeries},
	}
}

func newSession(cat *stubCatalog, resolver *stubResolver, fetcher *stubFetcher, writer *recordingWriter, prompter *prompt.Script, notifier *recordingNotifier, out *bytes.Buffer) *session.Session {
	return session.New(cat, resolver, fetcher, writer, prompter, notifier, out, nil)
}

func TestRunUpdatesConfirmedEntries(t *testing.T) {
	var out bytes.Buffer
	writer := &recordingWriter{}
	notifier := &recordingNotifier{}
	prompter := &prompt.Script{Confirmations: []bool{true, true}}
	resolver := &stubResolver{outcomes: map[string]resolve.Outcome{
		"Your Name": {TMDBID: 372058},
		"Old Boy":   {Skipped: true},
		"Dark":      {TMDBID: 70523},
	}}

	s := newSession(&stubCatalog{entries: testEntries()}, resolver, &stubFetcher{}, writer, prompter, notifier, &out)
	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Total != 3 || result.Updated != 2 || result.Skipped != 1 || result.Failed != 0 {
		t.Fatalf("result = %+v", result)
	}
	if len(writer.applied) != 2 {
		t.Fatalf("applied = %v", writer.applied)
	}
	if !notifier.completed || notifier.updated != 2 {
		t.Errorf("notifier = %+v", notifier)
	}
	if !strings.Contains(out.String(), "Your Name") {
		t.Error("entry table missing from output")
	}
}

func TestRunEmptyCatalog(t *testing.T) {
	var out bytes.Buffer
	prompter := &prompt.Script{}
	s := newSession(&stubCatalog{}, &stubResolver{}, &stubFetcher{}, &recordingWriter{}, prompter, &recordingNotifier{}, &out)

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Total != 0 || result.Aborted {
		t.Fatalf("result = %+v", result)
	}
	if len(prompter.Messages) != 0 {
		t.Errorf("no prompts expected for an empty catalog, got %v", prompter.Messages)
	}
}

func TestRunDeclinedFirstGateWritesNothing(t *testing.T) {
	var out bytes.Buffer
	writer := &recordingWriter{}
	prompter := &prompt.Script{Confirmations: []bool{false}}
	s := newSession(&stubCatalog{entries: testEntries()}, &stubResolver{}, &stubFetcher{}, writer, prompter, &recordingNotifier{}, &out)

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Aborted {
		t.Fatal("expected aborted result")
	}
	if len(writer.applied) != 0 {
		t.Fatalf("writes happened after declined gate: %v", writer.applied)
	}
}

func TestRunDeclinedSecondGateWritesNothing(t *testing.T) {
	var out bytes.Buffer
	writer := &recordingWriter{}
	prompter := &prompt.Script{Confirmations: []bool{true, false}}
	resolver := &stubResolver{outcomes: map[string]resolve.Outcome{
		"Your Name": {TMDBID: 372058},
		"Old Boy":   {TMDBID: 670},
		"Dark":      {TMDBID: 70523},
	}}
	s := newSession(&stubCatalog{entries: testEntries()}, resolver, &stubFetcher{}, writer, prompter, &recordingNotifier{}, &out)

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Aborted {
		t.Fatal("expected aborted result")
	}
	if len(writer.applied) != 0 {
		t.Fatalf("writes happened after declined gate: %v", writer.applied)
	}
}

func TestRunAllSkippedStopsBeforeSecondGate(t *testing.T) {
	var out bytes.Buffer
	prompter := &prompt.Script{Confirmations: []bool{true}}
	resolver := &stubResolver{outcomes: map[string]resolve.Outcome{
		"Your Name": {Skipped: true},
		"Old Boy":   {Skipped: true},
		"Dark":      {Skipped: true},
	}}
	s := newSession(&stubCatalog{entries: testEntries()}, resolver, &stubFetcher{}, &recordingWriter{}, prompter, &recordingNotifier{}, &out)

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Skipped != 3 || result.Updated != 0 {
		t.Fatalf("result = %+v", result)
	}
	if !strings.Contains(out.String(), "nothing to update") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunResolveFailureAbortsBeforeWrites(t *testing.T) {
	var out bytes.Buffer
	writer := &recordingWriter{}
	notifier := &recordingNotifier{}
	prompter := &prompt.Script{Confirmations: []bool{true}}
	resolver := &stubResolver{err: errors.New("tmdb unreachable")}
	s := newSession(&stubCatalog{entries: testEntries()}, resolver, &stubFetcher{}, writer, prompter, notifier, &out)

	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("expected resolve failure to surface")
	}
	if len(writer.applied) != 0 {
		t.Fatalf("writes happened after failed resolve: %v", writer.applied)
	}
	if !notifier.errored {
		t.Error("expected error notification")
	}
}

func TestRunCollectsWriteFailures(t *testing.T) {
	var out bytes.Buffer
	writer := &recordingWriter{failOn: map[string]error{"Dark": errors.New("validation_error")}}
	notifier := &recordingNotifier{}
	prompter := &prompt.Script{Confirmations: []bool{true, true}}
	resolver := &stubResolver{outcomes: map[string]resolve.Outcome{
		"Your Name": {TMDBID: 372058},
		"Old Boy":   {TMDBID: 670},
		"Dark":      {TMDBID: 70523},
	}}
	s := newSession(&stubCatalog{entries: testEntries()}, resolver, &stubFetcher{}, writer, prompter, notifier, &out)

	result, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("expected aggregate error for failed writes")
	}
	if result == nil {
		t.Fatal("result must accompany the aggregate error")
	}
	if result.Updated != 2 || result.Failed != 1 {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Failures) != 1 || result.Failures[0].Title != "Dark" {
		t.Fatalf("failures = %+v", result.Failures)
	}
	if !notifier.completed || notifier.failed != 1 {
		t.Errorf("notifier = %+v", notifier)
	}
}

func TestRunQueryFailure(t *testing.T) {
	var out bytes.Buffer
	notifier := &recordingNotifier{}
	s := newSession(&stubCatalog{err: errors.New("unauthorized")}, &stubResolver{}, &stubFetcher{}, &recordingWriter{}, &prompt.Script{}, notifier, &out)

	if _, err := s.Run(context.Background()); err == nil {
		t.Fatal("expected query failure to surface")
	}
	if !notifier.errored {
		t.Error("expected error notification")
	}
}
