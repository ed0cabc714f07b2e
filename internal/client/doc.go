// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the process lifecycle: the UI runs until the
// user quits or the process is interrupted.
package client
