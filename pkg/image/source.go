// Package image normalizes image acquisition behind one contract and
// uploads acquired images to the external image host. Acquisition has
// three outcomes: a local reference, a user cancellation, or a denied
// capability; only genuinely unexpected conditions are errors.
package image

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Outcome classifies the result of one Acquire call.
type Outcome int

const (
	// OutcomeAcquired means Ref points at a readable local image.
	OutcomeAcquired Outcome = iota
	// OutcomeCancelled means the user backed out; not an error.
	OutcomeCancelled
	// OutcomeDenied means the host refused the capability grant; the
	// caller should present guidance and continue.
	OutcomeDenied
)

// Acquisition is the result of one acquisition attempt.
type Acquisition struct {
	Ref     string
	Outcome Outcome
}

// Source is one image acquisition strategy.
type Source interface {
	Acquire(ctx context.Context) (Acquisition, error)
}

// Capability reports whether the host grants access to the underlying
// device or directory. Refusal is an outcome, never an error.
type Capability func(ctx context.Context) bool

// AlwaysGranted is the default capability for a terminal client that
// owns its own files.
func AlwaysGranted(context.Context) bool { return true }

// LibrarySource picks an existing image from the local library
// directory. An empty Path means the user selected nothing.
type LibrarySource struct {
	Dir   string
	Path  string
	Grant Capability
}

func (s *LibrarySource) Acquire(ctx context.Context) (Acquisition, error) {
	grant := s.Grant
	if grant == nil {
		grant = AlwaysGranted
	}
	if !grant(ctx) {
		return Acquisition{Outcome: OutcomeDenied}, nil
	}

	path := strings.TrimSpace(s.Path)
	if path == "" {
		return Acquisition{Outcome: OutcomeCancelled}, nil
	}
	if !filepath.IsAbs(path) && s.Dir != "" {
		path = filepath.Join(s.Dir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Acquisition{}, fmt.Errorf("image: library pick %q: %w", path, err)
	}
	if info.IsDir() {
		return Acquisition{}, fmt.Errorf("image: library pick %q is a directory", path)
	}
	return Acquisition{Ref: path, Outcome: OutcomeAcquired}, nil
}

// CameraSource captures a fresh image by running the configured
// capture command with a staging path as its final argument. A capture
// command that exits cleanly without producing the file is treated as
// the user cancelling the shot.
type CameraSource struct {
	Command    string
	StagingDir string
	Grant      Capability
}

func (s *CameraSource) Acquire(ctx context.Context) (Acquisition, error) {
	grant := s.Grant
	if grant == nil {
		grant = AlwaysGranted
	}
	if !grant(ctx) {
		return Acquisition{Outcome: OutcomeDenied}, nil
	}

	if strings.TrimSpace(s.Command) == "" {
		return Acquisition{}, fmt.Errorf("image: no capture command configured")
	}

	staging := s.StagingDir
	if staging == "" {
		staging = os.TempDir()
	}
	out := filepath.Join(staging, uuid.NewString()+".jpg")

	parts := strings.Fields(s.Command)
	args := append(parts[1:], out)
	cmd := exec.CommandContext(ctx, parts[0], args...)
	if err := cmd.Run(); err != nil {
		return Acquisition{}, fmt.Errorf("image: capture command: %w", err)
	}

	if _, err := os.Stat(out); err != nil {
		if os.IsNotExist(err) {
			return Acquisition{Outcome: OutcomeCancelled}, nil
		}
		return Acquisition{}, fmt.Errorf("image: capture output: %w", err)
	}
	return Acquisition{Ref: out, Outcome: OutcomeAcquired}, nil
}
