package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/breeze/internal/logging"
	"github.com/yaklabco/breeze/pkg/config"
	"github.com/yaklabco/breeze/pkg/fsutil"
	"github.com/yaklabco/breeze/pkg/langdetect"
	"github.com/yaklabco/breeze/pkg/session"
)

// Runner parses files concurrently.
type Runner struct {
	logger *log.Logger
}

// New creates a Runner. A nil logger means the logger carried by the
// context passed to Run.
func New(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run discovers files under opts.Paths and parses them with a worker pool.
// Outcomes are returned in path order whatever order workers finish in.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	if r.logger == nil {
		r = &Runner{logger: logging.FromContext(ctx)}
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	r.logger.Debug("parsing files", "files", len(files), "jobs", jobs)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, cfg)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker parses files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, cfg *config.Config) {
	for path := range workCh {
		outcome := r.parse(ctx, path, cfg)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) parse(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	buf, err := fsutil.ReadBuffer(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Lines = buf.Lines
	outcome.Language = langdetect.Detect(path, buf.Content)

	parser := session.NewParser(outcome.Language, cfg)
	parser.Feed(buf.Lines)
	if !parser.Success() {
		outcome.ParseErr = parser.Err()
		return outcome
	}

	outcome.Elements = len(parser.Tree().Elements())
	r.logger.Debug("parsed",
		logging.FieldPath, path,
		logging.FieldLanguage, outcome.Language,
		logging.FieldNodes, outcome.Elements)
	return outcome
}
