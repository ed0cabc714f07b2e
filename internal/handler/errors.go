// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no listen address, so no transport would be served.
var errNoHandlersAreCreated = errors.New("no handlers are created")
