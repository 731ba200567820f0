package rostersync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/okian/courtcast/internal/domain/roster"
	"github.com/okian/courtcast/pkg/logger"
)

// File permission constants.
const (
	dataFilePermission = 0o600
)

// datasetMeta is the metadata block written alongside the players.
type datasetMeta struct {
	PlayerCount int   `json:"player_count"`
	SavedAt     int64 `json:"saved_at"`
}

// dataset is the on-disk shape of both the partial and the final file.
type dataset struct {
	Meta    datasetMeta     `json:"meta"`
	Players []roster.Player `json:"players"`
}

// checkpoint records where to resume an interrupted run.
type checkpoint struct {
	NextCursor *int  `json:"next_cursor"`
	SavedAt    int64 `json:"saved_at"`
}

func partialPath(outputPath string) string    { return outputPath + ".partial" }
func checkpointPath(outputPath string) string { return outputPath + ".checkpoint" }

// savePartial writes the players fetched so far plus a resume checkpoint.
// Called after every page so an interrupted run loses at most one page.
func savePartial(byID map[int]roster.Player, nextCursor *int, outputPath string) error {
	if err := writeJSON(partialPath(outputPath), toDataset(byID)); err != nil {
		return fmt.Errorf("save partial: %w", err)
	}
	chk := checkpoint{NextCursor: nextCursor, SavedAt: time.Now().Unix()}
	if err := writeJSON(checkpointPath(outputPath), chk); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

// loadCheckpoint restores a previous partial run. A missing or broken
// checkpoint starts the run fresh rather than erroring.
func loadCheckpoint(ctx context.Context, outputPath string) (*int, map[int]roster.Player) {
	log := logger.Get().Named("rostersync")

	var chk checkpoint
	if err := readJSON(checkpointPath(outputPath), &chk); err != nil {
		return nil, map[int]roster.Player{}
	}
	var ds dataset
	if err := readJSON(partialPath(outputPath), &ds); err != nil {
		log.Warn(ctx, "checkpoint present but partial unreadable; starting fresh", logger.Error(err))
		return nil, map[int]roster.Player{}
	}

	byID := make(map[int]roster.Player, len(ds.Players))
	for _, p := range ds.Players {
		byID[p.ID] = p
	}
	log.Info(ctx, "resuming roster sync",
		logger.Int("players", len(byID)),
		logger.Any("next_cursor", chk.NextCursor),
	)
	return chk.NextCursor, byID
}

// finalize promotes the partial file to the final output and removes
// the checkpoint files.
func finalize(byID map[int]roster.Player, outputPath string) error {
	if err := writeJSON(outputPath, toDataset(byID)); err != nil {
		return fmt.Errorf("finalize dataset: %w", err)
	}
	_ = os.Remove(partialPath(outputPath))
	_ = os.Remove(checkpointPath(outputPath))
	return nil
}

// discardCheckpoint removes any previous partial state (the -fresh flag).
func discardCheckpoint(outputPath string) {
	_ = os.Remove(partialPath(outputPath))
	_ = os.Remove(checkpointPath(outputPath))
}

// toDataset converts the id-keyed map into a stable id-sorted dataset.
func toDataset(byID map[int]roster.Player) dataset {
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	players := make([]roster.Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, byID[id])
	}
	return dataset{
		Meta:    datasetMeta{PlayerCount: len(players), SavedAt: time.Now().Unix()},
		Players: players,
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, dataFilePermission); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
