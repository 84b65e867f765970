package main

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/config"
	"github.com/grindlemire/go-grid/pkg/gridfile"
)

var showCmd = &cobra.Command{
	Use:   "show <gridfile>",
	Short: "Render the grid live in the terminal",
	Long: `Show renders the solved grid as colored boxes that track the terminal
size. While running, edits to the definition file reload the layout in place.
Press q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	path := args[0]

	def, err := gridfile.Load(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(path, def, cfg), tea.WithAltScreen())

	if cfg.Watch.Enabled {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer watcher.Close()
		// Watch the directory, not the file: editors that write via
		// rename-and-replace would otherwise drop the watch.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		go forwardReloads(watcher, path, cfg.Watch.Debounce(), p)
	}

	_, err = p.Run()
	return err
}

// forwardReloads debounces write events on the definition file and sends the
// reparsed document (or the parse error) to the running program.
func forwardReloads(w *fsnotify.Watcher, path string, debounce time.Duration, p *tea.Program) {
	target := filepath.Clean(path)
	var timer *time.Timer
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				def, err := gridfile.Load(path)
				p.Send(reloadMsg{def: def, err: err})
			})
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}
