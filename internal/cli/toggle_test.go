package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeepies/leagues/internal/ir"
)

func TestToggleFlipsState(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("toggle", idCutLog)
	assert.Equal(t, "[x] Cut a log  da0cbc46\n", out)

	out = env.mustRun("toggle", idCutLog)
	assert.Equal(t, "[ ] Cut a log  da0cbc46\n", out)
}

func TestToggleByPrefix(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("toggle", "DA0C", "189e")
	assert.Equal(t, "[x] Cut a log  da0cbc46\n[x] Enter the Kalphite Lair  189e2ae9\n", out)
}

func TestToggleJSON(t *testing.T) {
	env := newCLIEnv(t)

	var results []ToggleResult
	resp := decodeResponse(t, env.mustRun("toggle", idPetCat, idKillCow, "--format", "json"), &results)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []ToggleResult{
		{ID: idPetCat, Label: "Pet the cat", Completed: true, Seq: 1},
		{ID: idKillCow, Label: "Kill a cow", Completed: true, Seq: 2},
	}, results)
}

func TestToggleDoneAndUndone(t *testing.T) {
	env := newCLIEnv(t)

	assert.Equal(t, "[x] Pet the cat  fc2e086c\n", env.mustRun("toggle", "--done", idPetCat))
	assert.Equal(t, "[x] Pet the cat  fc2e086c\n", env.mustRun("toggle", "--done", idPetCat))
	assert.Equal(t, "[ ] Pet the cat  fc2e086c\n", env.mustRun("toggle", "--undone", idPetCat))

	_, _, err := env.run("toggle", "--done", "--undone", idPetCat)
	assert.Error(t, err)
}

func TestToggleUnknownID(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run("toggle", "ffffffff")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), `no task with id "ffffffff"`)
}

func TestToggleAmbiguousPrefixWritesNothing(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run("toggle", idCutLog, "4", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out, nil)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeAmbiguousItem, resp.Error.Code)

	// The valid id before the ambiguous one was not toggled either.
	var result QueryResult
	decodeResponse(t, env.mustRun("query", "completed", "--format", "json"), &result)
	assert.Equal(t, 0, result.Matched)
}

func TestResolveItem(t *testing.T) {
	items := []ir.Item{
		{ID: "45ec4819", Label: "Kill a cow"},
		{ID: "49161b8e", Label: "Mine iron ore"},
		{ID: "4", Label: "Short id"},
		{ID: "da0cbc46", Label: "Cut a log"},
		{ID: "da0cbc46", Label: "Cut a log (copy)"},
	}

	tests := []struct {
		name      string
		ref       string
		wantLabel string
		wantCode  string
	}{
		{"exact id wins over prefix", "4", "Short id", ""},
		{"unique prefix", "45", "Kill a cow", ""},
		{"upper case", "49161B8E", "Mine iron ore", ""},
		{"identical records count once", "da0c", "Cut a log", ""},
		{"unknown", "ff", "", ErrCodeUnknownItem},
		{"blank", "  ", "", ErrCodeUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := resolveItem(items, tt.ref)
			if tt.wantCode != "" {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantCode, err.code)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.wantLabel, item.Label)
		})
	}

	_, err := resolveItem(items[:2], "4")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeAmbiguousItem, err.code)
	assert.Equal(t, []string{"45ec4819", "49161b8e"}, err.matches)
}
