/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twine-rs/twine/core"
)

const testConfig = `
[core]
log_level = "DEBUG"

[store]
backend = "sqlite"
path = "/tmp/datasets.db"

[dataset]
network_name_prefix = "Lab"
channels = [15, 20, 25]
strict = true
`

func TestConfigGetters(t *testing.T) {
	require.NoError(t, core.LoadConfigString(testConfig))
	defer core.ResetConfig()

	assert.Equal(t, "DEBUG", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.Equal(t, "sqlite", core.GetConfigStringDefault("store.backend", "bolt"))
	assert.Equal(t, "Lab", core.GetConfigStringDefault("dataset.network_name_prefix", "Twine"))
	assert.Equal(t, []int{15, 20, 25}, core.GetConfigArrayInt("dataset.channels"))
	assert.True(t, core.GetConfigBoolDefault("dataset.strict", false))

	// Missing keys and wrong types fall back to the defaults.
	assert.Equal(t, 7, core.GetConfigIntDefault("table.max_datasets", 7))
	assert.Equal(t, 7, core.GetConfigIntDefault("store.path", 7))
	assert.Equal(t, "x", core.GetConfigStringDefault("dataset.channels", "x"))
	assert.Nil(t, core.GetConfigArrayString("dataset.channels"))
	assert.Nil(t, core.GetConfigArrayInt("store.path"))
}

func TestConfigReset(t *testing.T) {
	require.NoError(t, core.LoadConfigString(testConfig))
	core.ResetConfig()

	assert.Equal(t, "bolt", core.GetConfigStringDefault("store.backend", "bolt"))
	assert.Nil(t, core.GetConfigArrayInt("dataset.channels"))
	assert.False(t, core.GetConfigBoolDefault("dataset.strict", false))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twine.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	require.NoError(t, core.LoadConfig(path))
	defer core.ResetConfig()
	assert.Equal(t, "/tmp/datasets.db", core.GetConfigStringDefault("store.path", ""))

	assert.Error(t, core.LoadConfig(filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, core.LoadConfigString("[core\n"))
}
