package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeepies/leagues/internal/store"
)

// Item IDs of testdata/tasks.json.
const (
	idCutLog     = "da0cbc46"
	idKillCow    = "45ec4819"
	idMineIron   = "49161b8e"
	idPetCat     = "fc2e086c"
	idKalphite   = "189e2ae9"
	sampleTotal  = 5
	sampleDBName = "leagues.db"
)

// cliEnv runs commands against a private database, config dir and the
// sample dataset.
type cliEnv struct {
	t       *testing.T
	db      string
	dataset string
	gen     *store.FixedGenerator
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	dataset, err := filepath.Abs(filepath.Join("testdata", "tasks.json"))
	require.NoError(t, err)

	ids := make([]string, 32)
	for i := range ids {
		ids[i] = fmt.Sprintf("evt-%02d", i+1)
	}

	return &cliEnv{
		t:       t,
		db:      filepath.Join(dir, "data", sampleDBName),
		dataset: dataset,
		gen:     store.NewFixedGenerator(ids...),
	}
}

// run executes one command line and returns its stdout and stderr.
func (e *cliEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	opts := &RootOptions{
		StoreOptions: []store.Option{store.WithIDGenerator(e.gen)},
	}
	cmd := newRootCommand(opts)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--db", e.db, "--dataset", e.dataset))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustRun is run that fails the test on error.
func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, stderr, err := e.run(args...)
	require.NoError(e.t, err, "stderr: %s", stderr)
	return out
}

// decodeResponse parses a JSON envelope and decodes its data into v.
func decodeResponse(t *testing.T, out string, v any) CLIResponse {
	t.Helper()
	var raw struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), "output: %s", out)
	if v != nil {
		require.NoError(t, json.Unmarshal(raw.Data, v))
	}
	return raw.CLIResponse
}

// writeDataset writes content to a file in a temp dir and returns its path.
func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
