package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-twmerge/internal/pkg/config"
	"github.com/FACorreiaa/go-twmerge/pkg/twmerge"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	return &config.Config{
		Merge:    config.MergeConfig{CacheSize: 500, Separator: ":"},
		LogLevel: "warn",
	}
}

// execute runs the command tree with a silent logger and returns stdout and stderr.
func execute(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, string, error) {
	t.Helper()
	a := &app{cfg: cfg, logger: zap.NewNop()}
	cmd := newRootCommand(a)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeCommandArgs(t *testing.T) {
	out, _, err := execute(t, testConfig(), "", "merge", "px-2 py-1 bg-red-500", "p-3 bg-blue-500")
	require.NoError(t, err)
	assert.Equal(t, "p-3 bg-blue-500\n", out)
}

func TestMergeCommandStdin(t *testing.T) {
	var in, want strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&in, "p-%d m-1 p-%d\n", i, i+1)
		fmt.Fprintf(&want, "m-1 p-%d\n", i+1)
	}
	in.WriteString("\n")
	want.WriteString("\n")

	out, _, err := execute(t, testConfig(), in.String(), "merge", "--jobs", "4")
	require.NoError(t, err)
	if diff := cmp.Diff(want.String(), out); diff != "" {
		t.Errorf("merge output mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeCommandRejectsZeroJobs(t *testing.T) {
	_, _, err := execute(t, testConfig(), "p-2\n", "merge", "--jobs", "0")
	assert.ErrorContains(t, err, "--jobs must be positive")
}

func TestMergeCommandFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"prefix", []string{"--prefix", "tw-", "merge", "tw-p-2 tw-p-3 p-1"}, "tw-p-3 p-1\n"},
		{"separator", []string{"--separator", "__", "merge", "hover__p-2 hover__p-3"}, "hover__p-3\n"},
		{"cache disabled", []string{"--cache-size", "0", "merge", "p-2 p-3"}, "p-3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, testConfig(), "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMergeCommandEnvironmentDefaults(t *testing.T) {
	cfg := testConfig()
	cfg.Merge.Prefix = "tw-"

	out, _, err := execute(t, cfg, "", "merge", "tw-p-2 tw-p-3")
	require.NoError(t, err)
	assert.Equal(t, "tw-p-3\n", out)

	out, _, err = execute(t, cfg, "", "--prefix", "", "merge", "tw-p-2 tw-p-3")
	require.NoError(t, err)
	assert.Equal(t, "tw-p-2 tw-p-3\n", out, "an explicit flag overrides the environment")
}

func TestMergeCommandExtensionFile(t *testing.T) {
	path := writeFile(t, "twmerge.yaml", `
extend:
  classGroups:
    btn: [{btn: [primary, secondary]}]
  conflictingClassGroups:
    btn: [display]
`)

	out, _, err := execute(t, testConfig(), "", "--config", path, "merge", "block btn-primary")
	require.NoError(t, err)
	assert.Equal(t, "btn-primary\n", out)

	cfg := testConfig()
	cfg.Merge.ExtensionFile = path
	out, _, err = execute(t, cfg, "", "merge", "btn-primary btn-secondary")
	require.NoError(t, err)
	assert.Equal(t, "btn-secondary\n", out)
}

func TestMergeCommandExtensionFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, testConfig(), "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "merge", "p-2")
		assert.ErrorContains(t, err, "open extension file")
	})

	t.Run("invalid document", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "extend:\n  classGroups:\n    btn: [[a]]\n")
		_, _, err := execute(t, testConfig(), "", "--config", path, "merge", "p-2")
		require.Error(t, err)
		assert.True(t, errors.Is(err, twmerge.ErrInvalidConfig), err.Error())
	})

	t.Run("invalid separator", func(t *testing.T) {
		_, _, err := execute(t, testConfig(), "", "--separator", "", "merge", "p-2")
		require.Error(t, err)
		assert.True(t, errors.Is(err, twmerge.ErrInvalidConfig), err.Error())
	})
}

func TestLogLevelFlag(t *testing.T) {
	_, _, err := execute(t, testConfig(), "", "--log-level", "loud", "merge", "p-2")
	assert.ErrorContains(t, err, "log level")
}

func TestStatsFlag(t *testing.T) {
	out, stderr, err := execute(t, testConfig(), "", "--stats", "merge", "p-2 p-3")
	require.NoError(t, err)
	assert.Equal(t, "p-3\n", out)
	assert.Contains(t, stderr, "twmerge_merges_total")
	assert.Contains(t, stderr, "twmerge_classes_dropped_total")
	assert.Contains(t, stderr, `cache="merge"`)
}

func TestHTMLCommand(t *testing.T) {
	doc := `<!DOCTYPE html><html><head></head><body>` +
		`<div id="card" class="p-2 bg-red-500 p-4"><span class="text-red-500 text-blue-500">hi</span>` +
		`<p class="custom">ok</p><b>plain</b></div></body></html>`

	out, _, err := execute(t, testConfig(), doc, "html")
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="card" class="bg-red-500 p-4">`)
	assert.Contains(t, out, `<span class="text-blue-500">hi</span>`)
	assert.Contains(t, out, `<p class="custom">ok</p>`)
	assert.Contains(t, out, `<b>plain</b>`)
}

func TestHTMLCommandSelector(t *testing.T) {
	doc := `<div class="p-2 p-4"><span class="m-1 m-2">x</span></div>`

	out, _, err := execute(t, testConfig(), doc, "html", "--selector", "span")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="p-2 p-4">`)
	assert.Contains(t, out, `<span class="m-2">x</span>`)
}

func TestGroupCommand(t *testing.T) {
	out, _, err := execute(t, testConfig(), "", "group", "p-2", "hover:text-lg", "my-card")
	require.NoError(t, err)
	assert.Equal(t, "p-2\tp\nhover:text-lg\tfont-size\nmy-card\t-\n", out)

	_, _, err = execute(t, testConfig(), "", "group")
	assert.Error(t, err)
}
