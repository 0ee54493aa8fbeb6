package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	cerrors "github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/statscard"
)

const annaTOML = `
name = "Anna Example"
total_stars = 1500
total_commits = 320
total_prs = 12
merged_prs_percentage = 75.5

[rank]
level = "A"
percentile = 20.5
`

const bobJSON = `{"total_stars": 3, "total_issues": 2, "rank": {"level": "C", "percentile": 90}}`

func writeRecords(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "anna.toml"), []byte(annaTOML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bob.json"), []byte(bobJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestFileSource(t *testing.T) {
	src := NewFileSource(writeRecords(t))
	ctx := context.Background()

	anna, err := src.Fetch(ctx, "Anna")
	if err != nil {
		t.Fatalf("Fetch(anna): %v", err)
	}
	if anna.Name != "Anna Example" || anna.TotalStars != 1500 || anna.MergedPRsPercentage != 75.5 {
		t.Errorf("anna = %+v", anna)
	}
	if anna.Rank.Level != "A" || anna.Rank.Percentile != 20.5 {
		t.Errorf("anna rank = %+v", anna.Rank)
	}

	bob, err := src.Fetch(ctx, "bob")
	if err != nil {
		t.Fatalf("Fetch(bob): %v", err)
	}
	if bob.TotalIssues != 2 || bob.Rank.Level != "C" {
		t.Errorf("bob = %+v", bob)
	}
}

func TestFileSourceErrors(t *testing.T) {
	src := NewFileSource(writeRecords(t))
	ctx := context.Background()

	if _, err := src.Fetch(ctx, "carol"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch(carol) = %v, want ErrNotFound", err)
	}
	if _, err := src.Fetch(ctx, "../etc/passwd"); !cerrors.Is(err, cerrors.ErrCodeInvalidUsername) {
		t.Errorf("Fetch(traversal) = %v, want invalid username", err)
	}
	if _, err := src.Fetch(ctx, "broken"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch(broken) = %v, want decode error", err)
	}
}

type stubSource struct {
	calls int
	errs  []error
	stats statscard.Stats
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context, username string) (statscard.Stats, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return statscard.Stats{}, err
	}
	return s.stats, nil
}

func TestFetchDefaultsName(t *testing.T) {
	src := &stubSource{stats: statscard.Stats{TotalStars: 1}}
	stats, err := Fetch(context.Background(), src, "anna")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Name != "anna" {
		t.Errorf("Name = %q, want anna", stats.Name)
	}
}

func TestFetchRetries(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	src := &stubSource{errs: []error{Retryable(errors.New("timeout"))}}
	if _, err := Fetch(context.Background(), src, "anna"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("calls = %d, want 2", src.calls)
	}

	src = &stubSource{errs: []error{ErrNotFound}}
	if _, err := Fetch(context.Background(), src, "anna"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch = %v, want ErrNotFound", err)
	}
	if src.calls != 1 {
		t.Errorf("non-retryable error retried: %d calls", src.calls)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	base := errors.New("network")
	err := Retryable(base)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, base) || err.Error() != "network" {
		t.Errorf("wrapped error not preserved: %v", err)
	}
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(errors.New("network"))
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
