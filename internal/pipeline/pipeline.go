// Package pipeline drives one image through decode, transform and encode,
// and decides where the result is written.
package pipeline

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/anas-shakeel/bmp-editor/internal/bmp"
	"github.com/anas-shakeel/bmp-editor/internal/utils"
)

// State of a Job. A job only ever moves forward: Loaded -> Transformed -> Persisted.
type State int

const (
	Loaded State = iota
	Transformed
	Persisted
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Transformed:
		return "transformed"
	case Persisted:
		return "persisted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var ErrInvalidState = errors.New("invalid pipeline state")

type Option func(p *Pipeline)

// Writes outputs into dir instead of next to the input file
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) {
		p.outputDir = dir
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Rejects inputs whose header isn't a plain 24-bit BI_RGB bitmap (on by default).
// With strict off, any buffer that is long enough for its width and height is accepted.
func WithStrict(strict bool) Option {
	return func(p *Pipeline) {
		p.strict = strict
	}
}

// Pipeline holds the settings shared by every Job it creates. It has no
// mutable state, so jobs over different files never interact.
type Pipeline struct {
	outputDir string
	strict    bool
	logger    log.FieldLogger
}

func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		strict: true,
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Job is one image moving through the pipeline
type Job struct {
	pipeline *Pipeline
	logger   log.FieldLogger
	state    State
	source   *bmp.BitmapImage // As decoded, never modified
	result   *bmp.BitmapImage
	op       Operation
	output   string
}

// Reads and decodes a bitmap file. The file is closed before Load returns.
func (p *Pipeline) Load(filename string) (*Job, error) {
	source, err := bmp.ReadBitmap(filename)
	if err != nil {
		return nil, err
	}
	return p.newJob(source)
}

// Decodes an in-memory bitmap. name is only used for logging and output naming.
func (p *Pipeline) LoadBytes(name string, buf []byte) (*Job, error) {
	source, err := bmp.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	source.Filename = name
	return p.newJob(source)
}

func (p *Pipeline) newJob(source *bmp.BitmapImage) (*Job, error) {
	if p.strict {
		if err := bmp.Validate(source.BFHeader, source.BIHeader); err != nil {
			return nil, fmt.Errorf("%s: %w", source.Filename, err)
		}
	}

	job := &Job{
		pipeline: p,
		state:    Loaded,
		source:   source,
		logger: p.logger.WithFields(log.Fields{
			"file":   source.Filename,
			"width":  source.Width,
			"height": source.Height,
		}),
	}
	job.logger.Debug("bitmap loaded")

	return job, nil
}

func (j *Job) State() State {
	return j.state
}

// Returns the decoded input image
func (j *Job) Source() *bmp.BitmapImage {
	return j.source
}

// Returns the transformed image (nil before Apply succeeds)
func (j *Job) Result() *bmp.BitmapImage {
	return j.result
}

// Applies op to a copy of the source pixels. On error the job stays Loaded.
func (j *Job) Apply(op Operation) error {
	if j.state != Loaded {
		return fmt.Errorf("%w: apply %s in state %s", ErrInvalidState, op, j.state)
	}

	result := j.source.Copy()
	pixels, err := op.apply(result.Pixels)
	if err != nil {
		return fmt.Errorf("%s: %w", j.source.Filename, err)
	}
	result.Pixels = pixels

	j.result = result
	j.op = op
	j.state = Transformed
	j.logger = j.logger.WithField("op", string(op))
	j.logger.Debug("transform applied")

	return nil
}

// Encodes the transformed image. The header and padding of the input are kept.
func (j *Job) Bytes() ([]byte, error) {
	if j.state == Loaded {
		return nil, fmt.Errorf("%w: encode in state %s", ErrInvalidState, j.state)
	}
	return j.result.Bytes()
}

// Returns where Persist writes (or wrote) the result
func (j *Job) OutputPath() string {
	if j.output != "" {
		return j.output
	}
	return utils.OutputName(string(j.op), j.source.Filename, j.pipeline.outputDir)
}

// Writes the transformed image to "<op>_<input name>" and returns its path
func (j *Job) Persist() (string, error) {
	if j.state != Transformed {
		return "", fmt.Errorf("%w: persist in state %s", ErrInvalidState, j.state)
	}

	output := j.OutputPath()
	if err := j.result.Save(output); err != nil {
		return "", err
	}

	j.output = output
	j.state = Persisted
	j.logger.WithField("output", output).Info("bitmap saved")

	return output, nil
}

// Loads filename, applies op and writes the result. Returns the output path.
// Nothing is written when any step fails.
func (p *Pipeline) TransformFile(filename string, op Operation) (string, error) {
	job, err := p.Load(filename)
	if err != nil {
		return "", err
	}
	if err := job.Apply(op); err != nil {
		return "", err
	}
	return job.Persist()
}

// Decodes buf, applies op and returns the encoded result without touching disk
func (p *Pipeline) TransformBytes(buf []byte, op Operation) ([]byte, error) {
	job, err := p.LoadBytes("<memory>", buf)
	if err != nil {
		return nil, err
	}
	if err := job.Apply(op); err != nil {
		return nil, err
	}
	return job.Bytes()
}
