package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
)

// Tools returns the tool definitions for the dispatcher's mode.
func (d *Dispatcher) Tools() []mcp.Tool {
	if d.mode == Consolidated {
		return lo.Map(d.catalog, func(f *Family, _ int) mcp.Tool {
			return familyTool(f)
		})
	}

	var tools []mcp.Tool
	for _, f := range d.catalog {
		for _, op := range f.Operations {
			tools = append(tools, operationTool(op))
		}
	}
	return tools
}

func operationTool(op Operation) mcp.Tool {
	options := []mcp.ToolOption{
		mcp.WithDescription(op.Description),
		mcp.WithReadOnlyHintAnnotation(op.ReadOnly),
		mcp.WithDestructiveHintAnnotation(op.Destructive),
	}

	for _, name := range sortedArgs(op.ToolArgs) {
		options = append(options, property(name, op.ToolArgs[name]))
	}

	return mcp.NewTool(op.ToolName, options...)
}

// familyTool merges the arguments of every operation of f into one schema.
// Only action is required; an argument's description names the actions that
// need it.
func familyTool(f *Family) mcp.Tool {
	merged := map[string]Arg{}
	requiredBy := map[string][]string{}

	for _, op := range f.Operations {
		for name, arg := range op.ToolArgs {
			if _, seen := merged[name]; !seen {
				merged[name] = arg
			}
			if arg.Required {
				requiredBy[name] = append(requiredBy[name], op.Action)
			}
		}
	}

	readOnly := lo.EveryBy(f.Operations, func(op Operation) bool { return op.ReadOnly })
	destructive := lo.SomeBy(f.Operations, func(op Operation) bool { return op.Destructive })

	options := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("%s\n\nActions: %s", strings.TrimSpace(f.Description), joinActions(f))),
		mcp.WithReadOnlyHintAnnotation(readOnly),
		mcp.WithDestructiveHintAnnotation(destructive),
		mcp.WithString(ActionArg,
			mcp.Required(),
			mcp.Description("Operation to perform"),
			mcp.Enum(f.Actions()...),
		),
	}

	for _, name := range sortedArgs(merged) {
		arg := merged[name]
		arg.Required = false
		if actions := requiredBy[name]; len(actions) > 0 {
			arg.Description = fmt.Sprintf("%s (required for: %s)", arg.Description, strings.Join(actions, ", "))
		}
		options = append(options, property(name, arg))
	}

	return mcp.NewTool(f.Name, options...)
}

func property(name string, arg Arg) mcp.ToolOption {
	options := []mcp.PropertyOption{
		mcp.Description(arg.Description),
	}
	if arg.Required {
		options = append(options, mcp.Required())
	}
	if len(arg.Enum) > 0 {
		options = append(options, mcp.Enum(arg.Enum...))
	}

	switch arg.Type {
	case TypeNumber:
		return mcp.WithNumber(name, options...)
	case TypeBoolean:
		return mcp.WithBoolean(name, options...)
	case TypeObject:
		return mcp.WithObject(name, options...)
	case TypeArray:
		return mcp.WithArray(name, append(options, mcp.WithStringItems())...)
	default:
		return mcp.WithString(name, options...)
	}
}

func sortedArgs(args map[string]Arg) []string {
	names := lo.Keys(args)
	sort.Strings(names)
	return names
}

func joinActions(f *Family) string {
	return strings.Join(f.Actions(), ", ")
}
