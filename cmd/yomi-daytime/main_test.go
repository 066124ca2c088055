package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/yomi-daytime/internal/config"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	missing := filepath.Join(t.TempDir(), "absent.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	// Reset the package-level flag target to a missing default file
	configPath = missing
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderAt(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"local date-time",
			[]string{"render", "--at", "2023-04-07T09:05:03", "--tz", "UTC"},
			"ni-sen ni-juu san nen shi gatsu nanoka kin youbi ku ji go hun san byou\n",
		},
		{
			"RFC 3339 converted to Tokyo",
			[]string{"render", "--at", "2023-04-07T00:05:03Z", "--tz", "Asia/Tokyo"},
			"ni-sen ni-juu san nen shi gatsu nanoka kin youbi ku ji go hun san byou\n",
		},
		{
			"date only",
			[]string{"render", "--at", "1858-07-29", "--tz", "UTC"},
			"sen happyaku go-juu hachi nen shichi gatsu ni-juu ku nichi moku youbi rei ji rei hun rei byou\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := runCLI(t, "render", "--at", "someday", "--tz", "UTC")
	assert.Error(t, err)

	_, err = runCLI(t, "render", "--tz", "Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestServeRejectsBadAddress(t *testing.T) {
	_, err := runCLI(t, "serve", "localhost")
	assert.Error(t, err)

	_, err = runCLI(t, "not-an-address")
	assert.Error(t, err)
}

func TestExplicitMissingConfigFails(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(os.TempDir(), "yomi-daytime-does-not-exist.yaml"), "render")
	assert.Error(t, err)
}

func TestResolveAddrPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: 127.0.0.1:1313\n"), 0o644))
	t.Setenv("YOMI_SERVER_ADDR", "127.0.0.1:2424")

	loaded, err := config.Load(path, true)
	require.NoError(t, err)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"env beats file", nil, "127.0.0.1:2424", false},
		{"positional beats env", []string{"127.0.0.1:3535"}, "127.0.0.1:3535", false},
		{"invalid positional", []string{"localhost"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAddr(loaded, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
