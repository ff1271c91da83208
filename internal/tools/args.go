package tools

import (
	"maps"

	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
)

// Arguments shared across families. Decoding targets embed these so the
// same json names are used everywhere.

type pageArgs struct {
	pagination.Request
}

type appArgs struct {
	App string `json:"app"`
}

var (
	argApp = Arg{Description: "Name of the app", Required: true, Type: TypeString}

	pagingArgs = map[string]Arg{
		pagination.KeyPage:    {Description: "Page number to return", Type: TypeNumber},
		pagination.KeyPerPage: {Description: "Number of items per page", Type: TypeNumber},
		pagination.KeyOffset:  {Description: "Number of items to skip; ignored when page is set", Type: TypeNumber},
		pagination.KeyLimit:   {Description: "Maximum number of items; ignored when perPage is set", Type: TypeNumber},
	}
)

// withPaging returns args plus the paging arguments.
func withPaging(args map[string]Arg) map[string]Arg {
	out := maps.Clone(pagingArgs)
	maps.Copy(out, args)
	return out
}

func required(description string) Arg {
	return Arg{Description: description, Required: true, Type: TypeString}
}

func optional(description string) Arg {
	return Arg{Description: description, Type: TypeString}
}
