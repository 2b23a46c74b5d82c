package ui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"shellpane/internal/config"
	"shellpane/internal/term"
)

type shellStartedMsg struct{ err error }

type ptyChunkMsg struct{ data []byte }

type ptyClosedMsg struct{ err error }

type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch chan struct{}
}

type settingsChangedMsg struct{ s config.Settings }

func startShellCmd(t *term.Terminal, shell string) tea.Cmd {
	return func() tea.Msg {
		return shellStartedMsg{err: t.Start(shell)}
	}
}

// readPTYOnceCmd schedules a single PTY read; Update re-arms it per chunk.
func readPTYOnceCmd(t *term.Terminal) tea.Cmd {
	return func() tea.Msg {
		buf := make([]byte, 4096)
		n, err := t.Read(buf)
		if n > 0 {
			return ptyChunkMsg{data: buf[:n]}
		}
		if err != nil {
			return ptyClosedMsg{err: err}
		}
		return nil
	}
}

func writePTYCmd(t *term.Terminal, data []byte) tea.Cmd {
	return func() tea.Msg {
		_ = t.Input(data)
		return nil
	}
}

// startWatchCmd watches the config dir so theme/settings edits apply live.
func startWatchCmd() tea.Cmd {
	return func() tea.Msg {
		dir, err := config.Dir()
		if err != nil {
			return nil
		}
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		_ = w.Add(dir)
		_ = w.Add(filepath.Dir(dir))
		ch := make(chan struct{}, 1)
		go func() {
			for {
				select {
				case _, ok := <-w.Events:
					if !ok {
						return
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case _, ok := <-w.Errors:
					if !ok {
						return
					}
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch}
	}
}

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		time.Sleep(120 * time.Millisecond)
		s, err := config.LoadSettings()
		if err != nil {
			return nil
		}
		return settingsChangedMsg{s: s}
	}
}
