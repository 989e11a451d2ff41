package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// cliEnv is an isolated config and data directory pair.
type cliEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// result captures one CLI invocation.
type result struct {
	stdout string
	stderr string
	code   int
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	for _, key := range []string{"PANTRY_BACKEND", "PANTRY_FILE", "PANTRY_LOW_STOCK_THRESHOLD", "PANTRY_LOG_LEVEL", "PANTRY_DATA_DIR", "PANTRY_CONFIG_DIR"} {
		t.Setenv(key, "")
	}
	root := t.TempDir()
	return &cliEnv{
		t:         t,
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

func (e *cliEnv) run(args ...string) result {
	e.t.Helper()
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	var stdout, stderr bytes.Buffer
	code := Run(full, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func (e *cliEnv) mustRun(args ...string) result {
	e.t.Helper()
	r := e.run(args...)
	require.Equal(e.t, exitSuccess, r.code, "pantry %v failed: %s", args, r.stderr)
	return r
}

func (e *cliEnv) inventoryFile() string {
	return filepath.Join(e.dataDir, types.DefaultFile)
}

func TestCLI_DemoScenario(t *testing.T) {
	env := newCLIEnv(t)

	assert.Equal(t, "apple: 10\n", env.mustRun("add", "apple", "10").stdout)
	env.mustRun("add", "banana", "2")
	assert.Equal(t, "apple: 7\n", env.mustRun("remove", "apple", "3").stdout)

	r := env.run("remove", "orange", "1")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "item not found")

	assert.Equal(t, "apple: 7\n", env.mustRun("get", "apple").stdout)
	assert.Equal(t, "orange: 0\n", env.mustRun("get", "orange").stdout)
	assert.Equal(t, "banana\n", env.mustRun("low").stdout)
}

func TestCLI_FileFormat(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "banana", "2")
	env.mustRun("add", "apple", "7")

	data, err := os.ReadFile(env.inventoryFile())
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"apple\": 7,\n    \"banana\": 2\n}\n", string(data))
}

func TestCLI_RemoveToZeroDeletesItem(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", "3")
	assert.Equal(t, "apple: 0\n", env.mustRun("remove", "apple", "3").stdout)

	data, err := os.ReadFile(env.inventoryFile())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
	assert.Equal(t, "Items Report\n", env.mustRun("report").stdout)
}

func TestCLI_InvalidQuantities(t *testing.T) {
	env := newCLIEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "non-integer add", args: []string{"add", "apple", "ten"}, wantErr: "must be an integer"},
		{name: "negative add", args: []string{"add", "--", "apple", "-1"}, wantErr: "invalid argument"},
		{name: "zero remove", args: []string{"remove", "apple", "0"}, wantErr: "item not found"},
		{name: "missing args", args: []string{"add", "apple"}, wantErr: "accepts 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := env.run(tt.args...)
			assert.Equal(t, exitUserError, r.code)
			assert.Contains(t, r.stderr, tt.wantErr)
		})
	}

	_, err := os.Stat(env.inventoryFile())
	assert.True(t, os.IsNotExist(err), "failed commands must not write the inventory file")
}

func TestCLI_RemoveZeroFromStockedItem(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", "3")

	r := env.run("remove", "apple", "0")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "invalid argument")
	assert.Equal(t, "apple: 3\n", env.mustRun("get", "apple").stdout)
}

func TestCLI_MissingFileStartsEmpty(t *testing.T) {
	env := newCLIEnv(t)

	r := env.mustRun("get", "apple")
	assert.Equal(t, "apple: 0\n", r.stdout)
	assert.Contains(t, r.stderr, "level=WARN")
	assert.NotContains(t, r.stderr, "level=ERROR")
}

func TestCLI_MalformedFileIsNotOverwritten(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.MkdirAll(env.dataDir, 0o755))
	require.NoError(t, os.WriteFile(env.inventoryFile(), []byte("{not json"), 0o644))

	r := env.run("add", "apple", "1")
	assert.Equal(t, exitSysError, r.code)
	assert.Contains(t, r.stderr, "malformed data")
	assert.Contains(t, r.stderr, "level=ERROR")

	data, err := os.ReadFile(env.inventoryFile())
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestCLI_JSONOutput(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", "10")
	env.mustRun("add", "banana", "2")

	var item itemJSON
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "get", "apple").stdout), &item))
	assert.Equal(t, itemJSON{Item: "apple", Quantity: 10}, item)

	var low []string
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "low").stdout), &low))
	assert.Equal(t, []string{"banana"}, low)

	var stock types.Stock
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "report").stdout), &stock))
	assert.Equal(t, types.Stock{"apple": 10, "banana": 2}, stock)
}

func TestCLI_LowThreshold(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", "10")
	env.mustRun("add", "banana", "2")

	assert.Equal(t, "apple\nbanana\n", env.mustRun("low", "--threshold", "11").stdout)
	assert.Equal(t, "", env.mustRun("low", "--threshold", "2").stdout)
	assert.Equal(t, "", env.mustRun("low", "--threshold", "0").stdout)

	r := env.run("low", "--threshold=-3")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "invalid threshold -3")
	assert.Empty(t, r.stdout)
}

func TestCLI_AddOverflowIsRejected(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", strconv.Itoa(math.MaxInt))

	r := env.run("add", "apple", "1")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "invalid argument")

	assert.Equal(t, fmt.Sprintf("apple: %d\n", math.MaxInt), env.mustRun("get", "apple").stdout)
	env.mustRun("remove", "apple", "1")
	assert.Equal(t, fmt.Sprintf("apple: %d\n", math.MaxInt-1), env.mustRun("get", "apple").stdout)
}

func TestCLI_WarningLogLevel(t *testing.T) {
	env := newCLIEnv(t)

	r := env.mustRun("--log-level", "warning", "add", "apple", "1")
	assert.NotContains(t, r.stderr, "level=INFO")

	r = env.run("--log-level", "warning", "remove", "orange", "1")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "level=WARN")
}

func TestCLI_HistoryUnreadableJournal(t *testing.T) {
	env := newCLIEnv(t)
	journal := filepath.Join(env.dataDir, "journal.jsonl")
	require.NoError(t, os.MkdirAll(journal, 0o755))

	r := env.run("history")
	assert.Equal(t, exitSysError, r.code)
	assert.Contains(t, r.stderr, journal)
}

func TestCLI_ConfigThreshold(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	cfg := "backend: json\nlow_stock_threshold: 11\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte(cfg), 0o644))

	env.mustRun("add", "apple", "10")
	assert.Equal(t, "apple\n", env.mustRun("low").stdout)
}

func TestCLI_InvalidConfig(t *testing.T) {
	env := newCLIEnv(t)

	r := env.run("--backend", "postgres", "get", "apple")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "unknown backend")
}

func TestCLI_SQLiteBackend(t *testing.T) {
	env := newCLIEnv(t)

	env.mustRun("--backend", "sqlite", "--file", "inventory.db", "add", "apple", "10")
	env.mustRun("--backend", "sqlite", "--file", "inventory.db", "remove", "apple", "4")
	assert.Equal(t, "apple: 6\n", env.mustRun("--backend", "sqlite", "--file", "inventory.db", "get", "apple").stdout)

	_, err := os.Stat(filepath.Join(env.dataDir, "inventory.db"))
	assert.NoError(t, err)
}

func TestCLI_History(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", "10")
	env.run("remove", "orange", "1")
	env.mustRun("remove", "apple", "3")

	lines := strings.Split(strings.TrimSpace(env.mustRun("history").stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "Added 10 of apple"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "Removed 3 of apple"), lines[1])

	last := env.mustRun("history", "--limit", "1").stdout
	assert.Contains(t, last, "Removed 3 of apple")
	assert.NotContains(t, last, "Added")
}

func TestCLI_Snapshots(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("add", "apple", "10")

	assert.Equal(t, "Saved snapshot monday (1 items)\n", env.mustRun("snapshot", "save", "monday").stdout)
	env.mustRun("add", "banana", "4")
	assert.Equal(t, "monday\n", env.mustRun("snapshot", "list").stdout)

	env.mustRun("snapshot", "restore", "monday")
	assert.Equal(t, "banana: 0\n", env.mustRun("get", "banana").stdout)
	assert.Equal(t, "apple: 10\n", env.mustRun("get", "apple").stdout)

	r := env.run("snapshot", "restore", "tuesday")
	assert.Equal(t, exitUserError, r.code)
	assert.Contains(t, r.stderr, "snapshot not found")

	env.mustRun("snapshot", "delete", "monday")
	assert.Equal(t, "", env.mustRun("snapshot", "list").stdout)
}

func TestCLI_Demo(t *testing.T) {
	env := newCLIEnv(t)

	r := env.mustRun("demo")
	assert.Equal(t, "Apple stock: 7\nLow items: [banana]\nItems Report\napple -> 7\nbanana -> 2\n", r.stdout)
	assert.Contains(t, r.stderr, "Inventory demo completed successfully.")

	data, err := os.ReadFile(env.inventoryFile())
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"apple\": 7,\n    \"banana\": 2\n}\n", string(data))
}

func TestCLI_Init(t *testing.T) {
	env := newCLIEnv(t)

	r := env.mustRun("init")
	assert.Contains(t, r.stdout, "Pantry initialized successfully")

	data, err := os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: json")
	assert.Contains(t, string(data), "low_stock_threshold: 5")

	info, err := os.Stat(env.dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// A second init leaves the existing config alone.
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte("backend: sqlite\n"), 0o644))
	env.mustRun("init")
	data, err = os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "backend: sqlite\n", string(data))
}

func TestCLI_Version(t *testing.T) {
	env := newCLIEnv(t)
	r := env.mustRun("version")
	assert.Contains(t, r.stdout, "pantry v")
	assert.Contains(t, r.stdout, modulePath)
}
