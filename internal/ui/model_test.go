package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/goldilocks/internal/pipeline"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)

	return model, cmd
}

func fixedClock(m Model) Model {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	m.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}

	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel([]string{"a.wav", "b.wav"})

	assert.Len(t, m.Files, 2)
	assert.Equal(t, -1, m.CurrentIndex)
	assert.Equal(t, StatusQueued, m.Files[1].Status)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Queued...")
}

func TestModelFileLifecycle(t *testing.T) {
	m := fixedClock(NewModel([]string{"dir/a.wav", "dir/b.wav"}))

	m, _ = step(t, m, FileStartMsg{FileIndex: 0, OutputPath: "dir/a-denoised.wav"})
	assert.Equal(t, StatusDenoising, m.Files[0].Status)
	assert.Equal(t, 0, m.CurrentIndex)

	m, _ = step(t, m, ProgressMsg{FileIndex: 0, Done: 250, Total: 1000})
	assert.InDelta(t, 0.25, m.Files[0].Progress, 1e-12)
	assert.Equal(t, time.Second, m.Files[0].Elapsed)
	assert.Contains(t, m.View(), "25%")
	assert.Contains(t, m.View(), "a-denoised.wav")

	m, _ = step(t, m, FileCompleteMsg{FileIndex: 0, Result: pipeline.Result{Input: "dir/a.wav", Output: "dir/a-denoised.wav"}})
	assert.Equal(t, StatusComplete, m.Files[0].Status)
	assert.Equal(t, 1, m.CompletedFiles)

	m, _ = step(t, m, FileStartMsg{FileIndex: 1})
	m, _ = step(t, m, FileCompleteMsg{FileIndex: 1, Error: errors.New("audio: invalid WAV file")})
	assert.Equal(t, StatusError, m.Files[1].Status)
	assert.Equal(t, 1, m.FailedFiles)

	m, cmd := step(t, m, AllCompleteMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Done)

	view := m.View()
	assert.Contains(t, view, "Denoising Complete")
	assert.Contains(t, view, "invalid WAV file")
	assert.Contains(t, view, "1 denoised, 1 failed")

	results := m.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "dir/a.wav", results[0].Input)
}

func TestModelIgnoresUnknownIndex(t *testing.T) {
	m := NewModel([]string{"a.wav"})

	m, _ = step(t, m, FileStartMsg{FileIndex: 5})
	m, _ = step(t, m, ProgressMsg{FileIndex: 0, Done: 1, Total: 0})
	m, _ = step(t, m, FileCompleteMsg{FileIndex: -1})

	assert.Equal(t, -1, m.CurrentIndex)
	assert.Zero(t, m.CompletedFiles+m.FailedFiles)
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel([]string{"a.wav"})

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, m.Aborted)

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
}

func TestRenderProgressBar(t *testing.T) {
	assert.Equal(t, "██░░ 50%", renderProgressBar(0.5, 4))
	assert.Equal(t, "████ 100%", renderProgressBar(1.5, 4))
}
