// Package ui provides the Bubbletea progress interface for multi-file runs.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/goldilocks/internal/pipeline"
)

// FileStatus represents the processing state of a single file
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusDenoising
	StatusComplete
	StatusError
)

// FileProgress tracks progress for a single audio file
type FileProgress struct {
	InputPath  string
	OutputPath string
	Status     FileStatus

	Progress  float64 // 0.0 to 1.0
	StartTime time.Time
	Elapsed   time.Duration

	Result pipeline.Result
	Error  error
}

// Model is the Bubbletea model for the processing UI
type Model struct {
	Files          []FileProgress
	CurrentIndex   int
	CompletedFiles int
	FailedFiles    int

	StartTime time.Time
	Done      bool
	Aborted   bool

	Width  int
	Height int

	now func() time.Time
}

// NewModel creates a new UI model with the given input files
func NewModel(inputFiles []string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{InputPath: path, Status: StatusQueued}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1,
		StartTime:    time.Now(),
		now:          time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) valid(index int) bool {
	return index >= 0 && index < len(m.Files)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Aborted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		if !m.valid(msg.FileIndex) {
			return m, nil
		}

		m.CurrentIndex = msg.FileIndex
		f := &m.Files[msg.FileIndex]
		f.Status = StatusDenoising
		f.OutputPath = msg.OutputPath
		f.StartTime = m.now()

	case ProgressMsg:
		if !m.valid(msg.FileIndex) || msg.Total <= 0 {
			return m, nil
		}

		f := &m.Files[msg.FileIndex]
		f.Progress = float64(msg.Done) / float64(msg.Total)
		f.Elapsed = m.now().Sub(f.StartTime)

	case FileCompleteMsg:
		if !m.valid(msg.FileIndex) {
			return m, nil
		}

		f := &m.Files[msg.FileIndex]
		f.Elapsed = m.now().Sub(f.StartTime)
		f.Error = msg.Error

		if msg.Error != nil {
			f.Status = StatusError
			m.FailedFiles++
		} else {
			f.Status = StatusComplete
			f.Progress = 1
			f.Result = msg.Result
			m.CompletedFiles++
		}

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderProcessingView(m)
}

// Results returns the results of all successfully processed files.
func (m Model) Results() []pipeline.Result {
	var out []pipeline.Result

	for _, f := range m.Files {
		if f.Status == StatusComplete {
			out = append(out, f.Result)
		}
	}

	return out
}
