/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"strconv"

	"github.com/twine-rs/twine/core"
)

// maxDatasets bounds the number of networks a DatasetTable tracks. Zero means unbounded.
var maxDatasets = 64

// Datasets is the process-wide dataset table.
var Datasets = NewDatasetTable()

// Configure reads the table settings and resets the process-wide table.
func Configure() {
	maxDatasets = core.GetConfigIntDefault("table.max_datasets", 64)
	if maxDatasets < 0 {
		core.LogWarn("DatasetTable", "Ignoring negative table.max_datasets="+strconv.Itoa(maxDatasets))
		maxDatasets = 0
	}
	Datasets = NewDatasetTable()
	core.LogDebug("DatasetTable", "Configured with max_datasets="+strconv.Itoa(maxDatasets))
}
