package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGuideCommandFilters(t *testing.T) {
	out, err := execute(t, "guide", "--plain", "분배")
	require.NoError(t, err)
	require.Contains(t, out, "비례율 분석")
	require.NotContains(t, out, "조감도 생성")
}

func TestGuideCommandListsAll(t *testing.T) {
	out, err := execute(t, "guide", "--plain")
	require.NoError(t, err)
	require.Contains(t, out, "## 비례율 분석")
	require.Contains(t, out, "조감도 생성")
	require.Equal(t, 4, strings.Count(out, "\n## "))
}

func TestGuideCommandRendersMarkdown(t *testing.T) {
	out, err := execute(t, "guide", "분배")
	require.NoError(t, err)
	require.Contains(t, out, "조합원 분배")
	require.NotContains(t, out, "조감도 생성")
}

func TestGuideCommandNoMatch(t *testing.T) {
	out, err := execute(t, "guide", "--plain", "zzzzzz")
	require.NoError(t, err)
	require.Contains(t, out, "검색 결과가 없습니다.")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "rebuildhelper dev\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "--config", path, "config", "init")
	require.Error(t, err)

	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, `ui.timezone = "Asia/Seoul"`)
	require.Contains(t, out, "ui.width = 48")
}

func TestUnknownStartScreen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	_, err := execute(t, "--config", path, "--screen", "nowhere")
	require.Error(t, err)
}
