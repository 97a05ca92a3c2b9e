// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(abs))
}

func TestFromCommand(t *testing.T) {
	chdir(t, "testdata/valid")

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	// Before PreRunLoad
	assert.Nil(t, FromCommand(cmd))

	// After PreRunLoad
	require.NoError(t, PreRunLoad(cmd, nil))
	zctx := FromCommand(cmd)
	require.NotNil(t, zctx)
	assert.Equal(t, []string{"schemas", "/abs/schema.json"}, zctx.Config.Inputs)
}

func TestRequireFromCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  string // testdata path, empty means no setup needed
		loadFirst bool   // whether to call PreRunLoad before RequireFromCommand
		wantErr   bool
	}{
		{
			name:      "not loaded",
			setupDir:  "",
			loadFirst: false,
			wantErr:   true,
		},
		{
			name:      "loaded",
			setupDir:  "testdata/valid",
			loadFirst: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupDir != "" {
				chdir(t, tt.setupDir)
			}

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			if tt.loadFirst {
				require.NoError(t, PreRunLoad(cmd, nil))
			}

			zctx, err := RequireFromCommand(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, zctx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "gen/schemas.ts", zctx.Config.Output)
		})
	}
}

func TestPreRunLoadOptional(t *testing.T) {
	tests := []struct {
		name       string
		dir        string
		wantErr    error
		wantLoaded bool
	}{
		{name: "missing config is fine", dir: ""},
		{name: "invalid config fails", dir: "testdata/invalid-config", wantErr: ErrInvalidConfig},
		{name: "valid config loads", dir: "testdata/valid", wantLoaded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dir == "" {
				chdir(t, t.TempDir())
			} else {
				chdir(t, tt.dir)
			}

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			err := PreRunLoadOptional(cmd, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLoaded, FromCommand(cmd) != nil)
		})
	}
}
