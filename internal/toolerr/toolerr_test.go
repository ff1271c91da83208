package toolerr

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetErrorCode(t *testing.T) {
	verr := NewValidationError("name", "APP_NAME_TOO_SHORT", "too short", "use more characters")

	assert.Equal(t, "APP_NAME_TOO_SHORT", GetErrorCode(verr))
	assert.Equal(t, "APP_NAME_TOO_SHORT", GetErrorCode(fmt.Errorf("creating app: %w", verr)))
	assert.Equal(t, "APP_NAME_TOO_SHORT", GetErrorCode(pkgerrors.Wrap(verr, "creating app")))
	assert.Equal(t, CodeInternal, GetErrorCode(errors.New("boom")))
	assert.Equal(t, CodeUnknownTool, GetErrorCode(&UnknownToolError{Tool: "nope"}))
}

func TestValidationErrorAccessors(t *testing.T) {
	err := error(NewValidationError("key", "INVALID_ENV_KEY", "bad key", "one", "two"))

	assert.Equal(t, "bad key", err.Error())
	assert.Equal(t, []string{"one", "two"}, GetErrorSuggestions(err))
	assert.Equal(t, map[string]any{"field": "key"}, GetErrorDetails(err))
	assert.True(t, IsCoded(err))
}

func TestUnknownActionError(t *testing.T) {
	err := &UnknownActionError{Tool: "apps", Action: "explode", Actions: []string{"list", "get"}}

	assert.Equal(t, `unknown action "explode" for tool apps`, err.Error())
	assert.Equal(t, CodeUnknownAction, GetErrorCode(err))
	assert.Equal(t, []string{"Valid actions for apps: list, get"}, err.Suggestions())
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Code: "DATABASE_NOT_FOUND", Resource: "database", Identifier: "db.example.com"}

	assert.Equal(t, `database "db.example.com" not found`, err.Error())
	assert.Equal(t, "DATABASE_NOT_FOUND", GetErrorCode(err))
	assert.Nil(t, GetErrorSuggestions(errors.New("plain")))
}
