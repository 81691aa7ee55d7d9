package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID        int
	Evaluator string
	Explore   bool
	Fallback  bool
	Seed      uint64
}

type GameRecord struct {
	Number int
	AgentA int // AgentConfig.ID playing side A
	AgentB int // AgentConfig.ID playing side B
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Number
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Evaluator,
			strconv.FormatBool(config.Explore),
			strconv.FormatBool(config.Fallback),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "evaluator", "explore", "fallback", "seed"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Number),
			record.ID,
			strconv.Itoa(record.AgentA),
			strconv.Itoa(record.AgentB),
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"number", "id", "agent_a", "agent_b", "starting_player", "winner", "reason", "total_moves", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Outcome,
			record.Evaluator,
			strconv.FormatBool(record.Explore),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Evaluations),
			strconv.FormatFloat(record.BestScore, 'f', 4, 64),
			strconv.FormatBool(record.Fallback),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "move", "outcome", "evaluator", "explore", "candidates", "evaluations", "best_score", "fallback", "duration"}
	return w.writeCSV("move_records.csv", header, rows)
}
