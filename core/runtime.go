/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of twine.
var Version string

// BuildTime contains the timestamp of when the version of twine was built.
var BuildTime string

// StartTimestamp is the time the process was started.
var StartTimestamp time.Time
