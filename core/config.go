/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

var config *toml.Tree

// LoadConfig loads the configuration from the specified TOML file.
func LoadConfig(file string) error {
	tree, err := toml.LoadFile(file)
	if err != nil {
		return errors.Wrapf(err, "unable to load configuration file %s", file)
	}
	config = tree
	return nil
}

// LoadConfigString loads the configuration from TOML text.
func LoadConfigString(content string) error {
	tree, err := toml.Load(content)
	if err != nil {
		return errors.Wrap(err, "unable to parse configuration")
	}
	config = tree
	return nil
}

// ResetConfig drops any loaded configuration so every getter returns its default.
func ResetConfig() {
	config = nil
}

func configGet(key string) interface{} {
	if config == nil {
		return nil
	}
	return config.Get(key)
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	val, ok := configGet(key).(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	if val, ok := configGet(key).(string); ok {
		return val
	}
	return def
}

// GetConfigBoolDefault returns the boolean configuration value at the specified key or the specified default value if it does not exist.
func GetConfigBoolDefault(key string, def bool) bool {
	if val, ok := configGet(key).(bool); ok {
		return val
	}
	return def
}

// GetConfigArrayString returns the configuration array value at the specified key or nil if it does not exist.
func GetConfigArrayString(key string) []string {
	if config == nil {
		return nil
	}
	if val, ok := config.GetArray(key).([]string); ok {
		return val
	}
	return nil
}

// GetConfigArrayInt returns the integer configuration array at the specified key or nil if it does not exist.
func GetConfigArrayInt(key string) []int {
	if config == nil {
		return nil
	}
	raw, ok := config.GetArray(key).([]int64)
	if !ok {
		return nil
	}
	vals := make([]int, 0, len(raw))
	for _, v := range raw {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil
		}
		vals = append(vals, int(v))
	}
	return vals
}
