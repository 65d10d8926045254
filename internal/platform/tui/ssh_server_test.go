package tui

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tumble/internal/registry"
	"github.com/vovakirdan/tumble/internal/storage"
)

func TestDrainSavesBeforeStoreCloses(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s := &SSHServer{store: store, logger: log.New(io.Discard)}

	// A session finishing its game while the server drains.
	err = s.drain(context.Background(), func(context.Context) error {
		if s.store == nil {
			t.Fatal("store closed before sessions drained")
		}
		_, err := store.SaveRun(storage.Run{GameID: "tumble", Score: 5})
		return err
	})
	if err != nil {
		t.Fatalf("drain() failed: %v", err)
	}
	if s.store != nil {
		t.Error("store still open after drain")
	}
	if _, err := store.TopScores("tumble", 1); err == nil {
		t.Error("store should be closed after drain")
	}
}

func TestDrainClosesStoreOnTimeout(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s := &SSHServer{store: store, logger: log.New(io.Discard)}

	err = s.drain(context.Background(), func(context.Context) error {
		return context.DeadlineExceeded
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("drain() error = %v, want DeadlineExceeded", err)
	}
	if s.store != nil {
		t.Error("store still open after a timed-out drain")
	}
}

func TestNewSSHServerRejectsUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no_such_game"
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
	cfg.Logger = log.New(io.Discard)

	_, err := NewSSHServer(cfg)
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("NewSSHServer() error = %v, want ErrUnknownGame", err)
	}
}
