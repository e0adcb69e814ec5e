package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ancestry/builder"
)

const familyYAML = `name: family
root: root
edges:
  - {from: root, to: "1"}
  - {from: root, to: "2"}
  - {from: "1", to: "3"}
  - {from: "1", to: "4"}
  - {from: "2", to: "5"}
  - {from: "2", to: "6"}
queries:
  - {a: "1", b: "5"}
  - {a: "6", b: "5"}
  - {a: "3", b: "4"}
`

const pipelineTOML = `
[[edges]]
from = "1"
to = "2"
[[edges]]
from = "2"
to = "3"
[[edges]]
from = "2"
to = "4"
[[edges]]
from = "3"
to = "5"
[[edges]]
from = "4"
to = "6"
[[edges]]
from = "5"
to = "7"
[[edges]]
from = "6"
to = "7"
[[edges]]
from = "7"
to = "8"
`

const cyclicYAML = `edges:
  - {from: a, to: b}
  - {from: b, to: c}
  - {from: c, to: a}
`

// writeDoc stores body under name in a temp dir and returns its path.
func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// run executes the CLI and returns stdout, the log output and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func TestTreeCommand(t *testing.T) {
	out, _, err := run(t, "tree", "--values", "3,1,2,4,5,6", "4", "6")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, _, err = run(t, "tree", "--values", "3,1,2,4,5,6", "--dump", "2", "4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3\n  L: 1\n"))
	assert.True(t, strings.HasSuffix(out, "\n3\n"))

	_, _, err = run(t, "tree", "--values", "1,2,3", "1", "9")
	assert.ErrorContains(t, err, "no common ancestor")

	_, _, err = run(t, "tree", "1", "x")
	assert.ErrorContains(t, err, "invalid value")
}

func TestGraphCommand(t *testing.T) {
	path := writeDoc(t, "family.yaml", familyYAML)

	out, _, err := run(t, "graph", "-f", path, "6", "5")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, "graph", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "lca(1, 5) = root\nlca(6, 5) = 2\nlca(3, 4) = 1\n", out)

	out, _, err = run(t, "graph", "-f", path, "--root", "2", "5", "6")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, _, err = run(t, "graph", "-f", path, "--root", "1", "3", "5")
	assert.ErrorContains(t, err, "no common ancestor")

	_, _, err = run(t, "graph", "-f", path, "3")
	assert.ErrorContains(t, err, "needs two vertices")
}

func TestGraphCommand_NoRoot(t *testing.T) {
	path := writeDoc(t, "p.toml", pipelineTOML)

	_, _, err := run(t, "graph", "-f", path, "7", "5")
	assert.ErrorIs(t, err, errNoRoot)

	out, _, err := run(t, "graph", "-f", path, "--root", "1", "7", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestGraphCommand_Strict(t *testing.T) {
	body := familyYAML + "  - {a: \"5\", b: \"6\"}\n"
	body = strings.Replace(body, "queries:", "  - {from: \"3\", to: \"7\"}\n  - {from: \"7\", to: \"3\"}\nqueries:", 1)
	path := writeDoc(t, "cyc.yaml", body)

	out, _, err := run(t, "graph", "-f", path, "5", "6")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, _, err = run(t, "graph", "-f", path, "--strict", "5", "6")
	assert.ErrorContains(t, err, "cycle")
}

func TestDAGCommand(t *testing.T) {
	path := writeDoc(t, "p.toml", pipelineTOML)

	for _, tc := range []struct{ a, b, want string }{
		{"1", "8", "1"}, {"7", "5", "5"}, {"3", "8", "3"},
	} {
		out, _, err := run(t, "dag", "-f", path, tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want+"\n", out)
	}

	_, _, err := run(t, "dag", "-f", path)
	assert.ErrorIs(t, err, errNoPairs)

	cyc := writeDoc(t, "c.yaml", cyclicYAML)
	_, _, err = run(t, "dag", "-f", cyc, "a", "b")
	assert.ErrorContains(t, err, "cycle")
}

func TestDAGCommand_PartialFailure(t *testing.T) {
	body := familyYAML + "  - {a: \"3\", b: ghost}\n"
	path := writeDoc(t, "f.yaml", body)

	out, _, err := run(t, "dag", "-f", path)
	assert.ErrorContains(t, err, "1 of 4 queries")
	assert.Contains(t, out, "lca(6, 5) = 2\n")
	assert.Contains(t, out, "lca(3, ghost): no common ancestor")
}

func TestTopoCommand(t *testing.T) {
	out, _, err := run(t, "topo", "-f", writeDoc(t, "p.toml", pipelineTOML))
	require.NoError(t, err)
	assert.Equal(t, "1 2 4 6 3 5 7 8\n", out)

	_, _, err = run(t, "topo", "-f", writeDoc(t, "c.yaml", cyclicYAML))
	assert.EqualError(t, err, "graph is cyclic: a → b → c → a")
}

func TestRenderCommand(t *testing.T) {
	path := writeDoc(t, "family.yaml", familyYAML)

	out, _, err := run(t, "render", "-f", path, "--pair", "6,5")
	require.NoError(t, err)
	assert.Contains(t, out, `"2" [label="2", fillcolor=gold];`)
	assert.Contains(t, out, `"2" -> "6" [penwidth=3];`)

	dotPath := filepath.Join(t.TempDir(), "g.dot")
	_, logs, err := run(t, "render", "-f", path, "-o", dotPath)
	require.NoError(t, err)
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph G {"))
	assert.Contains(t, logs, "Wrote "+dotPath)

	_, _, err = run(t, "render", "-f", path, "--pair", "6")
	assert.ErrorContains(t, err, "invalid pair")

	dag := writeDoc(t, "p.toml", pipelineTOML)
	out, _, err = run(t, "render", "-f", dag, "--pair", "7,5")
	require.NoError(t, err)
	assert.Contains(t, out, `"5" [label="5", fillcolor=gold];`)
}

func TestVerboseLogsRejection(t *testing.T) {
	path := writeDoc(t, "family.yaml", familyYAML)

	_, logs, err := run(t, "-v", "graph", "-f", path, "--root", "1", "3", "5")
	require.Error(t, err)
	assert.Contains(t, logs, "target unreachable from root")

	_, logs, _ = run(t, "graph", "-f", path, "--root", "1", "3", "5")
	assert.NotContains(t, logs, "target unreachable")
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.SetLevel(log.DebugLevel)
	newProgress(l).done("Loaded")
	assert.Contains(t, buf.String(), "Loaded (")
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "tree.toml")

	_, _, err := run(t, "gen", "--shape", "tree", "--depth", "3", "-o", tree)
	require.NoError(t, err)
	out, _, err := run(t, "graph", "-f", tree, "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = run(t, "gen", "--shape", "path", "--n", "3", "--prefix", "v")
	require.NoError(t, err)
	assert.Contains(t, out, "root: v0")
	assert.Contains(t, out, "from: v1")

	dag := filepath.Join(dir, "dag.yaml")
	_, _, err = run(t, "gen", "--shape", "dag", "--n", "12", "--p", "0.3", "--seed", "3", "-o", dag)
	require.NoError(t, err)
	_, _, err = run(t, "topo", "-f", dag)
	assert.NoError(t, err)

	_, _, err = run(t, "gen", "--shape", "cycle", "--n", "3", "-o", filepath.Join(dir, "c.yaml"))
	require.NoError(t, err)
	_, _, err = run(t, "topo", "-f", filepath.Join(dir, "c.yaml"))
	assert.EqualError(t, err, "graph is cyclic: 0 → 1 → 2 → 0")

	_, _, err = run(t, "gen", "--shape", "hexagon")
	assert.ErrorContains(t, err, "unknown shape")

	_, _, err = run(t, "gen", "--shape", "dag", "--p", "2")
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}
