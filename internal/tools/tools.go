// Package tools maps MCP tool calls onto platform operations. Operations are
// grouped into resource families and exposed either as one tool per
// operation or as one tool per family taking an "action" argument.
package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
	"github.com/skyport-cloud/skyport-mcp/internal/toolerr"
)

// Mode selects how operations are exposed as tools.
type Mode int

const (
	// Individual exposes one tool per operation, e.g. list_apps.
	Individual Mode = iota
	// Consolidated exposes one tool per family, e.g. apps with action=list.
	Consolidated
)

func (m Mode) String() string {
	if m == Consolidated {
		return "consolidated"
	}
	return "individual"
}

// ModeFor returns Consolidated when consolidated is set.
func ModeFor(consolidated bool) Mode {
	if consolidated {
		return Consolidated
	}
	return Individual
}

// Argument types understood by the schema builder.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// ActionArg is the argument naming the operation of a consolidated tool.
const ActionArg = "action"

// Arg represents an argument of an operation.
type Arg struct {
	Description string
	Required    bool
	Type        string
	Enum        []string
}

// RunFunc performs an operation with the raw argument bag of a call.
type RunFunc func(ctx context.Context, p *platform.Platform, args map[string]any) (any, error)

// Operation represents one callable platform operation.
type Operation struct {
	// ToolName is the tool name in individual mode.
	ToolName string
	// Action is the action name in consolidated mode.
	Action string

	Description string
	ToolArgs    map[string]Arg

	ReadOnly    bool
	Destructive bool

	Run RunFunc
}

// Family is a group of operations over one kind of resource.
type Family struct {
	Name        string
	Description string
	Operations  []Operation
}

// ErrNotHandled is returned by a Handler declining a tool name.
var ErrNotHandled = errors.New("tool not handled")

// Handler serves individual mode tool calls. Handle returns ErrNotHandled for
// tool names it does not own.
type Handler interface {
	Handle(ctx context.Context, p *platform.Platform, tool string, args map[string]any) (any, error)
}

// Handle runs the operation whose ToolName is tool.
func (f *Family) Handle(ctx context.Context, p *platform.Platform, tool string, args map[string]any) (any, error) {
	for _, op := range f.Operations {
		if op.ToolName == tool {
			return op.Run(ctx, p, args)
		}
	}
	return nil, ErrNotHandled
}

// Perform runs the operation whose Action is action.
func (f *Family) Perform(ctx context.Context, p *platform.Platform, action string, args map[string]any) (any, error) {
	op, ok := lo.Find(f.Operations, func(op Operation) bool {
		return op.Action == action
	})
	if !ok {
		return nil, &toolerr.UnknownActionError{Tool: f.Name, Action: action, Actions: f.Actions()}
	}
	return op.Run(ctx, p, args)
}

// Actions lists the family's actions in declaration order.
func (f *Family) Actions() []string {
	return lo.Map(f.Operations, func(op Operation, _ int) string {
		return op.Action
	})
}

// run adapts a typed operation to a RunFunc. The argument bag is decoded into
// In using the json tags of its fields.
func run[In any](fn func(ctx context.Context, p *platform.Platform, in In) (any, error)) RunFunc {
	return func(ctx context.Context, p *platform.Platform, args map[string]any) (any, error) {
		var in In
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return fn(ctx, p, in)
	}
}

func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook:       wholeNumbers,
		Result:           out,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(args); err != nil {
		return toolerr.NewValidationError("arguments", toolerr.CodeInvalidArguments,
			"invalid arguments: "+err.Error(),
			"Check the argument types against the tool's input schema",
		)
	}

	return nil
}

// wholeNumbers rejects fractional numbers bound for integer fields, which
// weak decoding would otherwise truncate.
func wholeNumbers(from, to reflect.Type, data any) (any, error) {
	for to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	var f float64
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f = reflect.ValueOf(data).Float()
	default:
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}
