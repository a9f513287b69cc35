package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/infrastructure/config"
)

const (
	logFileName      = "docking.log"
	defaultLogsLines = 50
)

var (
	logsFollow bool
	logsLines  int
	logsList   bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View application logs",
	Long: `Show the end of the docking log file.

The demo editor logs to a rotated file in the log directory instead of
the terminal. Rotated files keep a timestamp suffix and may be gzipped.

Examples:
  docking logs            # last 50 lines
  docking logs -n 200     # last 200 lines
  docking logs -f         # follow new lines
  docking logs --list     # list the log file and its backups`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsCmd.Flags().BoolVar(&logsList, "list", false, "list log files")
}

// LogFileInfo describes one file in the log directory.
type LogFileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Current bool
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := config.ResolveLogDir(app.Config)
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}

	if logsList {
		files, err := listLogFiles(logDir)
		if err != nil {
			return err
		}
		fmt.Println(renderLogFiles(files, logDir, app.Theme))
		return nil
	}

	path := filepath.Join(logDir, logFileName)
	if err := showLog(os.Stdout, path, logsLines, app.Theme); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return followLog(ctx, os.Stdout, path, app.Theme)
}

// listLogFiles returns the current log file first, then backups newest first.
func listLogFiles(logDir string) ([]LogFileInfo, error) {
	entries, err := os.ReadDir(logDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []LogFileInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logFileName) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFileInfo{
			Name:    name,
			Path:    filepath.Join(logDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Current: name == logFileName,
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Current != files[j].Current {
			return files[i].Current
		}
		return files[i].Name > files[j].Name
	})
	return files, nil
}

func renderLogFiles(files []LogFileInfo, logDir string, theme *styles.Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%s %s", styles.IconFolder, logDir)))
	b.WriteString("\n")
	if len(files) == 0 {
		b.WriteString(theme.Subtle.Render("  no log files yet"))
		return b.String()
	}
	for _, f := range files {
		name := theme.Normal.Render(f.Name)
		if f.Current {
			name = theme.Highlight.Render(f.Name)
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			name,
			theme.Subtle.Render(formatSize(f.Size)),
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04:05")),
		))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// showLog prints the last lines of the log at path.
func showLog(w io.Writer, path string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintln(w, theme.Subtle.Render("No log file yet: "+path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	// Keep a ring of the last N lines
	tail := make([]string, 0, max(lines, 0))
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if lines <= 0 {
			continue
		}
		if len(tail) == lines {
			tail = tail[1:]
		}
		tail = append(tail, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range tail {
		_, _ = fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended to path until ctx is done. A rotation
// reopens the new file.
func followLog(ctx context.Context, w io.Writer, path string, theme *styles.Theme) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create log watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so rotations and late creation are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	_, _ = fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	var offset int64
	if info, err := os.Stat(path); err == nil {
		offset = info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log directory: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Has(fsnotify.Create) {
				offset = 0
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			offset, err = printFrom(w, path, offset, theme)
			if err != nil {
				return err
			}
		}
	}
}

// printFrom prints complete lines after offset and returns the offset
// past the last complete line.
func printFrom(w io.Writer, path string, offset int64, theme *styles.Theme) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return offset, nil
	}
	defer func() { _ = file.Close() }()

	if info, statErr := file.Stat(); statErr == nil && info.Size() < offset {
		offset = 0 // truncated
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek log file: %w", err)
	}

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// A partial line is printed once it is complete.
			return offset, nil
		}
		offset += int64(len(line))
		_, _ = fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(line, "\n"), theme))
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Message != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format: "15:04:05 INF message key=value"
	switch {
	case strings.Contains(line, " ERR "), strings.Contains(line, " FTL "):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, " DBG "), strings.Contains(line, " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}
