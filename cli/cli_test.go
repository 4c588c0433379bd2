package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectilinear/cli"
	"github.com/katalvlaran/rectilinear/config"
	"github.com/katalvlaran/rectilinear/shapes"
	"github.com/katalvlaran/rectilinear/vertex"
)

const sample = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`

// run executes one command tree with the given stdin and arguments.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loop.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, sample, "solve")
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)
}

func TestSolve_Any(t *testing.T) {
	out, _, err := run(t, sample, "solve", "--any")
	require.NoError(t, err)
	assert.Equal(t, "50\n", out)
}

func TestSolve_FileWithWorkers(t *testing.T) {
	path := writeInput(t, sample)
	for _, args := range [][]string{
		{"solve", path},
		{"solve", "--workers", "3", path},
		{"solve", "--no-prune", path},
		{"solve", "--workers", "8", "--no-prune", path},
	} {
		out, _, err := run(t, "", args...)
		require.NoError(t, err, args)
		assert.Equal(t, "24\n", out, args)
	}
}

func TestSolve_LenientSkipsGarbage(t *testing.T) {
	out, errOut, err := run(t, "oops\n"+sample+"1,x\n", "solve")
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)
	assert.Contains(t, errOut, "malformed records skipped")
}

func TestSolve_StrictFails(t *testing.T) {
	_, _, err := run(t, sample+"oops\n", "solve", "--strict")
	require.Error(t, err)
	var le *vertex.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 9, le.Line)
	assert.ErrorIs(t, err, vertex.ErrMalformedRecord)
}

func TestSolve_NoRectangle(t *testing.T) {
	for name, in := range map[string]string{"single": "3,4\n", "empty": "", "collinear": "0,0\n5,0\n"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, in, "solve")
			require.NoError(t, err)
			assert.Equal(t, "0\n", out)
		})
	}
}

func TestSolve_NoRectangleLogsWarning(t *testing.T) {
	_, errOut, err := run(t, "3,4\n", "solve")
	require.NoError(t, err)
	assert.Contains(t, errOut, "no qualifying rectangle")
	assert.Contains(t, errOut, "run=")
}

func TestSolve_BadWorkers(t *testing.T) {
	_, _, err := run(t, sample, "solve", "--workers", "0")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestSolve_PNG(t *testing.T) {
	png := filepath.Join(t.TempDir(), "best.png")
	out, _, err := run(t, sample, "solve", "--png", png)
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSolve_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "solve", filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, sample, "inspect")
	require.NoError(t, err)

	want := strings.Join([]string{
		"vertices  8",
		"grid      3x3",
		"interior  6",
		"area      30",
		"regions   1",
		"bounds    2,1 11,7",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestInspect_Empty(t *testing.T) {
	_, _, err := run(t, "", "inspect")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "", "generate", "rectangle", "0", "0", "5", "3")
	require.NoError(t, err)
	assert.Equal(t, "0,0\n5,0\n5,3\n0,3\n", out)

	out, _, err = run(t, "", "generate", "--transpose", "--dx", "1", "rectangle", "0", "0", "5", "3")
	require.NoError(t, err)
	assert.Equal(t, "1,0\n1,5\n4,5\n4,0\n", out)
}

func TestGenerate_MatchesShapes(t *testing.T) {
	out, _, err := run(t, "", "generate", "random", "7", "6", "9")
	require.NoError(t, err)

	want, err := shapes.Random(7, 6, 9)
	require.NoError(t, err)
	res, err := vertex.ParseLines(strings.Split(strings.TrimSpace(out), "\n"), vertex.Strict)
	require.NoError(t, err)
	assert.Equal(t, want, res.Vertices)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "hexagon")
	assert.ErrorIs(t, err, cli.ErrUnknownShape)

	_, _, err = run(t, "", "generate", "cross", "2")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "", "generate", "cross", "2", "wide")
	assert.ErrorIs(t, err, cli.ErrUsage)

	_, _, err = run(t, "", "generate", "rectangle", "5", "0", "0", "3")
	assert.ErrorIs(t, err, shapes.ErrInvalidParameter)
}

func TestGenerateThenSolve(t *testing.T) {
	loop, _, err := run(t, "", "generate", "cross", "2", "1")
	require.NoError(t, err)

	out, _, err := run(t, loop, "solve")
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)
}

func TestConfigFileAndLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "r.yaml")
	logPath := filepath.Join(dir, "run.log")
	body := "search:\n  workers: 2\nlog:\n  level: debug\n  file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	out, errOut, err := run(t, sample, "--config", cfgPath, "solve")
	require.NoError(t, err)
	assert.Equal(t, "24\n", out)
	assert.Contains(t, errOut, "parsed")

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"message":"solved"`)

	_, errOut, err = run(t, sample, "--config", cfgPath, "--log-level", "error", "solve")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "solved")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, sample, "--log-level", "loud", "solve")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
