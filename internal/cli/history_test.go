package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeepies/leagues/internal/store"
)

func TestHistoryEmpty(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("history")
	assert.Equal(t, "No completion changes recorded.\n", out)
}

func TestHistoryText(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("toggle", idCutLog)
	env.mustRun("toggle", idKalphite)
	env.mustRun("toggle", idCutLog)

	out := env.mustRun("history")

	g := newGoldie(t)
	g.Assert(t, "history", []byte(out))
}

func TestHistoryForOneItem(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("toggle", idCutLog)
	env.mustRun("toggle", idKalphite)
	env.mustRun("toggle", idCutLog)

	var entries []HistoryEntry
	resp := decodeResponse(t, env.mustRun("history", "da0c", "--format", "json"), &entries)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []HistoryEntry{
		{ToggleEvent: store.ToggleEvent{ID: "evt-01", ItemID: idCutLog, Completed: true, Seq: 1}, Label: "Cut a log"},
		{ToggleEvent: store.ToggleEvent{ID: "evt-03", ItemID: idCutLog, Completed: false, Seq: 3}, Label: "Cut a log"},
	}, entries)
}

func TestHistoryOutlivesDatasetEdits(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("toggle", idPetCat)

	// The task is gone from the new dataset; its history is still there.
	env.dataset = writeDataset(t, "tasks.json", `[{"task": "Something else", "points": 1}]`)

	var entries []HistoryEntry
	decodeResponse(t, env.mustRun("history", idPetCat, "--format", "json"), &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, idPetCat, entries[0].ItemID)
	assert.Equal(t, labelMissing, entries[0].Label)
}

func TestHistoryAmbiguousPrefix(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run("history", "4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
