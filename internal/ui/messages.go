package ui

import "github.com/cwbudde/goldilocks/internal/pipeline"

// FileStartMsg indicates a new file has started processing
type FileStartMsg struct {
	FileIndex  int
	OutputPath string
}

// ProgressMsg reports frames processed for the current file
type ProgressMsg struct {
	FileIndex int
	Done      int
	Total     int
}

// FileCompleteMsg indicates a file has finished processing
type FileCompleteMsg struct {
	FileIndex int
	Result    pipeline.Result
	Error     error
}

// AllCompleteMsg indicates all files have been processed
type AllCompleteMsg struct{}
