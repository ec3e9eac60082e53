package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/bugland/internal/application/system"
)

// Recorder records the transforms applied to a bug
type Recorder struct {
	data      ScriptData
	recording bool
	step      int
}

// NewRecorder creates a new recorder for the bug with the given id
func NewRecorder(bugID string) *Recorder {
	return &Recorder{
		data: ScriptData{
			Version:   ScriptVersion,
			ID:        uuid.NewString(),
			Bug:       bugID,
			StartTime: time.Now().Format(time.RFC3339),
			Steps:     make([]StepRecord, 0, 64),
		},
		recording: true,
	}
}

// RecordStep records a single transform
func (r *Recorder) RecordStep(op system.Op) {
	if !r.recording {
		return
	}

	cfg := op.Config()
	r.data.Steps = append(r.data.Steps, StepRecord{
		F:      r.step,
		Op:     cfg.Op,
		Angle:  cfg.Angle,
		X:      cfg.X,
		Y:      cfg.Y,
		Margin: cfg.Margin,
	})
	r.step++
}

// Data returns a copy of the recorded script
func (r *Recorder) Data() ScriptData {
	data := r.data
	data.Steps = append([]StepRecord(nil), r.data.Steps...)
	return data
}

// Save writes the script to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Steps) == 0 {
		return fmt.Errorf("no steps to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// StepCount returns the number of recorded steps
func (r *Recorder) StepCount() int {
	return len(r.data.Steps)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("script_%s.json", time.Now().Format("20060102_150405"))
}
