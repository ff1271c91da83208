package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type databaseArgs struct {
	Database string `json:"database"`
}

type resizeDatabaseArgs struct {
	databaseArgs
	Plan string `json:"plan"`
}

var argDatabase = required("Database ID or hostname")

func databasesFamily() *Family {
	lifecycle := func(verb, description string, fn func(s *platform.DatabaseService, ctx context.Context, database string) (any, error)) Operation {
		return Operation{
			ToolName:    verb + "_database",
			Action:      verb,
			Description: description,
			ToolArgs:    map[string]Arg{"database": argDatabase},
			Run: run(func(ctx context.Context, p *platform.Platform, in databaseArgs) (any, error) {
				return fn(p.Databases, ctx, in.Database)
			}),
		}
	}

	return &Family{
		Name: "databases",
		Description: heredoc.Doc(`
			Manage managed databases. Databases can be addressed by their
			24 character ID or by hostname.
		`),
		Operations: []Operation{
			{
				ToolName:    "list_databases",
				Action:      "list",
				Description: "List the databases of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Databases.List(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_database",
				Action:      "get",
				Description: "Get the details of a database",
				ToolArgs:    map[string]Arg{"database": argDatabase},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in databaseArgs) (any, error) {
					return p.Databases.Get(ctx, in.Database)
				}),
			},
			{
				ToolName:    "create_database",
				Action:      "create",
				Description: "Create a managed database",
				ToolArgs: map[string]Arg{
					"name":    required("Name of the database"),
					"engine":  {Description: "Database engine", Required: true, Type: TypeString, Enum: []string{"postgres", "mysql", "mongodb", "redis"}},
					"version": optional("Engine version"),
					"plan":    optional("Plan of the database"),
					"region":  optional("Region to create the database in"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in platform.CreateDatabaseInput) (any, error) {
					return p.Databases.Create(ctx, in)
				}),
			},
			{
				ToolName:    "delete_database",
				Action:      "delete",
				Description: "Permanently delete a database and its data",
				ToolArgs:    map[string]Arg{"database": argDatabase},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in databaseArgs) (any, error) {
					return p.Databases.Delete(ctx, in.Database)
				}),
			},
			lifecycle("start", "Start a stopped database", (*platform.DatabaseService).Start),
			lifecycle("stop", "Stop a running database", (*platform.DatabaseService).Stop),
			lifecycle("restart", "Restart a database", (*platform.DatabaseService).Restart),
			{
				ToolName:    "resize_database",
				Action:      "resize",
				Description: "Move a database to another plan",
				ToolArgs: map[string]Arg{
					"database": argDatabase,
					"plan":     required("Plan to move the database to"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in resizeDatabaseArgs) (any, error) {
					return p.Databases.Resize(ctx, in.Database, in.Plan)
				}),
			},
			{
				ToolName:    "get_database_credentials",
				Action:      "credentials",
				Description: "Get the connection credentials of a database",
				ToolArgs:    map[string]Arg{"database": argDatabase},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in databaseArgs) (any, error) {
					return p.Databases.Credentials(ctx, in.Database)
				}),
			},
		},
	}
}
