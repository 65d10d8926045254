package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "tumble", Score: 12, Seed: 1, Frames: 900},
		{GameID: "tumble", Score: 7, Seed: 2, Frames: 400},
		{GameID: "tumble", Score: 20, Seed: 3, Frames: 2500},
		{GameID: "tumble_bucket", Score: 30, Seed: 4, Frames: 3000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tumble", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{20, 12, 7}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Seed != 3 || scores[0].Frames != 2500 {
		t.Errorf("run details lost: %+v", scores[0])
	}

	bucket, err := store.TopScores("tumble_bucket", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bucket) != 1 {
		t.Errorf("Expected 1 bucket score, got %d", len(bucket))
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "tumble", Score: (i + 1) * 2})
	}
	store.SaveRun(Run{GameID: "tumble", Score: 10, Frames: 50})

	scores, err := store.TopScores("tumble", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Equal scores rank the shorter run first
	if scores[0].Score != 10 || scores[0].Frames != 0 {
		t.Errorf("scores[0] = %+v, want score 10 with 0 frames", scores[0])
	}
	if scores[1].Score != 10 || scores[1].Frames != 50 {
		t.Errorf("scores[1] = %+v, want score 10 with 50 frames", scores[1])
	}
	if scores[2].Score != 8 {
		t.Errorf("scores[2].Score = %d, want 8", scores[2].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tumble")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "tumble", Score: 9})
	store.SaveRun(Run{GameID: "tumble", Score: 31})
	store.SaveRun(Run{GameID: "tumble", Score: 14})

	high, err = store.HighScore("tumble")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("Expected high score of 31, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "tumble", Score: 5})
	store.SaveRun(Run{GameID: "tumble", Score: 6})
	store.SaveRun(Run{GameID: "tumble_bucket", Score: 7})

	if err := store.ClearScores("tumble"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("tumble", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("tumble_bucket", 10); len(scores) != 1 {
		t.Errorf("Bucket scores should not be affected by clearing tumble")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tumble")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(Run{GameID: "tumble", Score: 4})
	store.SaveRun(Run{GameID: "tumble", Score: 8})

	stats, err := store.GetGameStats("tumble")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.AvgScore != 6 {
		t.Errorf("stats = %+v, want 2 games, high 8, avg 6", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
