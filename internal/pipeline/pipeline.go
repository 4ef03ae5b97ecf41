package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ppiankov/cutr/internal/cache"
	"github.com/ppiankov/cutr/internal/extract"
	"github.com/ppiankov/cutr/internal/model"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineBytes      = 64 * 1024 * 1024
)

// Pipeline reads sources in order and writes one extracted line per
// input line or record
type Pipeline struct {
	mode          extract.Mode
	delim         byte
	onlyDelimited bool
	memo          cache.Cache // Optional line memo (nil if disabled)
	limiter       *Limiter    // Optional output throttle (nil if disabled)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Option customises a Pipeline
type Option func(*Pipeline)

// WithStdin sets the reader used for the "-" source
func WithStdin(r io.Reader) Option {
	return func(p *Pipeline) { p.stdin = r }
}

// WithOutput sets where extracted lines are written
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.stdout = w }
}

// WithErrors sets where per-source errors are reported
func WithErrors(w io.Writer) Option {
	return func(p *Pipeline) { p.stderr = w }
}

// WithLogger sets the diagnostics logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a pipeline for the given configuration and mode
func New(cfg *model.Config, mode extract.Mode, opts ...Option) (*Pipeline, error) {
	if mode == nil {
		return nil, model.ConfigErrorf("Must have --fields, --bytes or --chars")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	delim, err := cfg.DelimiterByte()
	if err != nil {
		return nil, err
	}
	if _, ok := mode.(extract.FieldMode); ok {
		if err := CheckRecordDelimiter(delim); err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		mode:          mode,
		delim:         delim,
		onlyDelimited: cfg.OnlyDelimited,
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		logger:        slog.Default(),
	}

	if cfg.Memo.Enabled {
		p.memo = cache.NewMemoryCache(cfg.Memo.TTL, cfg.Memo.CleanupInterval)
	}
	if cfg.RateLimit.LinesPerSecond > 0 {
		p.limiter = NewLimiter(cfg.RateLimit.LinesPerSecond, cfg.RateLimit.Burst)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Stats summarises a run
type Stats struct {
	Sources int // Sources attempted
	Failed  int // Sources skipped because they could not be opened or read
	Lines   int // Lines written
}

// Run processes every source in order. Sources that cannot be opened or
// read are reported on stderr and skipped. Any other error stops the run.
func (p *Pipeline) Run(ctx context.Context, names []string) (Stats, error) {
	var stats Stats
	out := bufio.NewWriter(p.stdout)

	p.logger.Debug("starting run",
		"mode", p.mode.Kind(),
		"positions", p.mode.Positions().String(),
		"sources", len(names),
	)

	for _, name := range names {
		stats.Sources++

		n, err := p.processSource(ctx, name, out)
		stats.Lines += n

		// Flush before reporting so output and errors stay in order
		if flushErr := out.Flush(); flushErr != nil {
			return stats, fmt.Errorf("write output: %w", flushErr)
		}

		var srcErr *SourceError
		if errors.As(err, &srcErr) {
			stats.Failed++
			fmt.Fprintln(p.stderr, srcErr)
			p.logger.Debug("source skipped", "source", name, "err", srcErr.Err)
			continue
		}
		if err != nil {
			return stats, err
		}

		p.logger.Debug("source complete", "source", name, "lines", n)
	}

	if p.memo != nil {
		p.logger.Debug("memo", "entries", p.memo.Len())
	}
	p.logger.Debug("run complete", "sources", stats.Sources, "failed", stats.Failed, "lines", stats.Lines)

	return stats, nil
}

func (p *Pipeline) processSource(ctx context.Context, name string, out *bufio.Writer) (int, error) {
	rc, err := Open(name, p.stdin)
	if err != nil {
		return 0, &SourceError{Name: name, Err: err}
	}
	defer func() { _ = rc.Close() }()

	switch m := p.mode.(type) {
	case extract.FieldMode:
		return p.processRecords(ctx, name, rc, m, out)
	case extract.LineMode:
		return p.processLines(ctx, name, rc, m, out)
	default:
		return 0, fmt.Errorf("unsupported mode %T", p.mode)
	}
}

func (p *Pipeline) processLines(ctx context.Context, name string, r io.Reader, m extract.LineMode, out *bufio.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBytes)

	n := 0
	for scanner.Scan() {
		if err := p.emit(ctx, out, p.extractLine(m, scanner.Text())); err != nil {
			return n, err
		}
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, &SourceError{Name: name, Err: fmt.Errorf("read: %w", err)}
	}

	return n, nil
}

func (p *Pipeline) processRecords(ctx context.Context, name string, r io.Reader, m extract.FieldMode, out *bufio.Writer) (int, error) {
	reader, err := NewRecordReader(r, p.delim)
	if err != nil {
		return 0, err
	}

	n := 0
	for recordNum := 1; ; recordNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, &SourceError{Name: name, Err: fmt.Errorf("read record: %w", err)}
		}

		if p.onlyDelimited && len(record) < 2 {
			continue
		}

		result, err := m.Extract(record, p.delim)
		if err != nil {
			return n, fmt.Errorf("%s: record %d: %w", name, recordNum, err)
		}

		if err := p.emit(ctx, out, result); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// extractLine applies a line mode, consulting the memo when enabled
func (p *Pipeline) extractLine(m extract.LineMode, line string) string {
	if p.memo == nil {
		return m.Extract(line)
	}

	key := cache.Key(line)
	if result, found := p.memo.Get(key); found {
		return result
	}

	result := m.Extract(line)
	p.memo.Set(key, result, 0)
	return result
}

func (p *Pipeline) emit(ctx context.Context, out *bufio.Writer, line string) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	if _, err := out.WriteString(line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.WriteByte('\n'); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
