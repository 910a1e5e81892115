// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Janko Höner

package server

import "errors"

var errNoServerAddress = errors.New("no HTTP server address configured")
