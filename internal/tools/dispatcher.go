package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/skyport-cloud/skyport-mcp/internal/logger"
	"github.com/skyport-cloud/skyport-mcp/internal/metrics"
	"github.com/skyport-cloud/skyport-mcp/internal/platform"
	"github.com/skyport-cloud/skyport-mcp/internal/sentry"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
	"github.com/skyport-cloud/skyport-mcp/internal/tracing"
)

// MessageDone is the message of a successful call with no payload.
const MessageDone = "Operation completed successfully."

// Result is the envelope every tool call produces.
type Result struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   *Failure `json:"error,omitempty"`
}

// Failure describes why a call failed.
type Failure struct {
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	Details     map[string]any `json:"details,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

// Dispatcher routes tool calls to operations. It is safe for concurrent use.
type Dispatcher struct {
	mode     Mode
	platform *platform.Platform
	catalog  []*Family
	handlers []Handler
	families map[string]*Family
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

type Option func(*Dispatcher)

// WithFamilies replaces the default catalog.
func WithFamilies(families ...*Family) Option {
	return func(d *Dispatcher) {
		d.catalog = families
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New returns a Dispatcher exposing the catalog in mode.
func New(mode Mode, p *platform.Platform, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		mode:     mode,
		platform: p,
		catalog:  Catalog(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.families = make(map[string]*Family, len(d.catalog))
	for _, f := range d.catalog {
		d.handlers = append(d.handlers, f)
		d.families[f.Name] = f
	}

	return d
}

func (d *Dispatcher) Mode() Mode {
	return d.mode
}

// Dispatch runs the tool name with args. Every failure, including panics, is
// returned as an unsuccessful Result.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (result *Result) {
	callID := ulid.Make().String()
	started := time.Now()

	action, _ := args[ActionArg].(string)
	if d.mode == Individual {
		action = ""
	}

	ctx, span := tracing.StartToolSpan(ctx, name, action)
	defer span.End()

	ctx = logger.NewContext(ctx, d.logger)
	d.logger.Debugf("[%s] call %s %s", callID, name, describe(action))

	defer func() {
		if r := recover(); r != nil {
			err := pkgerrors.Errorf("panic in tool %s: %v", name, r)
			sentry.CaptureException(err, sentry.WithTag("tool", name))
			result = failure(err)
		}

		outcome := metrics.OutcomeSuccess
		if !result.Success {
			outcome = metrics.OutcomeError
			tracing.RecordError(span, errors.New(result.Error.Message), result.Error.Code)
			d.logger.Warnf("[%s] %s failed after %s: %s: %s", callID, name, time.Since(started).Round(time.Millisecond), result.Error.Code, result.Error.Message)
		} else {
			d.logger.Debugf("[%s] %s succeeded after %s", callID, name, time.Since(started).Round(time.Millisecond))
		}
		d.metrics.ObserveToolCall(name, outcome, time.Since(started))
	}()

	data, err := d.call(ctx, name, action, args)
	if err != nil {
		if !toolerr.IsCoded(err) {
			sentry.CaptureException(err,
				sentry.WithTag("tool", name),
				sentry.WithContext("call", map[string]interface{}{"id": callID, "action": action}),
			)
		}
		return failure(err)
	}

	return success(data)
}

func (d *Dispatcher) call(ctx context.Context, name, action string, args map[string]any) (any, error) {
	if d.mode == Consolidated {
		family, ok := d.families[name]
		if !ok {
			return nil, &toolerr.UnknownToolError{Tool: name}
		}
		if action == "" {
			return nil, toolerr.NewValidationError(ActionArg, toolerr.CodeMissingRequiredField,
				"action is required",
				fmt.Sprintf("Valid actions for %s: %s", family.Name, joinActions(family)),
			)
		}
		return family.Perform(ctx, d.platform, action, args)
	}

	for _, h := range d.handlers {
		out, err := h.Handle(ctx, d.platform, name, args)
		if errors.Is(err, ErrNotHandled) {
			continue
		}
		return out, err
	}

	return nil, &toolerr.UnknownToolError{Tool: name}
}

func success(data any) *Result {
	switch v := data.(type) {
	case nil:
		return &Result{Success: true, Message: MessageDone}
	case string:
		return &Result{Success: true, Message: v}
	default:
		return &Result{Success: true, Data: v}
	}
}

// failure turns err into a Result. The message comes from the outermost coded
// error in the chain so wrapping does not leak into the envelope.
func failure(err error) *Result {
	message := err.Error()

	var coded toolerr.ErrorCode
	if errors.As(err, &coded) {
		message = coded.Error()
	}

	return &Result{
		Success: false,
		Error: &Failure{
			Code:        toolerr.GetErrorCode(err),
			Message:     message,
			Details:     toolerr.GetErrorDetails(err),
			Suggestions: toolerr.GetErrorSuggestions(err),
		},
	}
}

func describe(action string) string {
	if action == "" {
		return ""
	}
	return "action=" + action
}
