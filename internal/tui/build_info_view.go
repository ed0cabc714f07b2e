// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package tui

import (
	"strings"

	"github.com/akwaabahomes/passcheck/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, server models.VersionResponse) string {
	var b strings.Builder

	b.WriteString("Application: passcheck\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString("Server version: ")
	b.WriteString(valueOrNA(server.Version))
	b.WriteString("\n")
	b.WriteString("Server commit: ")
	b.WriteString(valueOrNA(server.BuildCommit))

	return renderPage("ABOUT", b.String(), "esc: back")
}
