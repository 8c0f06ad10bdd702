package service

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/hollowcheck/hollowcheck/domain"
)

// IsInteractiveEnvironment reports whether stderr is an attached terminal
// and NO_COLOR isn't set — the condition under which progress bars render
// usefully rather than spamming a log file or CI console.
func IsInteractiveEnvironment() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// ProgressManagerImpl implements domain.ProgressManager with interactive
// progress bars over stderr, used for file parsing and dependency probing.
type ProgressManagerImpl struct {
	writer io.Writer
	tasks  []*progressbar.ProgressBar
}

// NewProgressManager returns an interactive progress manager when enabled
// and stderr is a terminal, otherwise a no-op one (domain.NoOpProgressManager).
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return &ProgressManagerImpl{writer: os.Stderr}
	}
	return &domain.NoOpProgressManager{}
}

func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
	pm.tasks = append(pm.tasks, bar)
	return &TaskProgressImpl{bar: bar}
}

func (pm *ProgressManagerImpl) IsInteractive() bool { return true }

func (pm *ProgressManagerImpl) Close() {
	for _, bar := range pm.tasks {
		_ = bar.Finish()
	}
	pm.tasks = nil
}

// TaskProgressImpl implements domain.TaskProgress with a progressbar.
type TaskProgressImpl struct {
	bar *progressbar.ProgressBar
}

func (tp *TaskProgressImpl) Increment(n int)          { _ = tp.bar.Add(n) }
func (tp *TaskProgressImpl) Describe(description string) { tp.bar.Describe(description) }
func (tp *TaskProgressImpl) Complete()                { _ = tp.bar.Finish() }

var _ domain.ProgressManager = (*ProgressManagerImpl)(nil)
