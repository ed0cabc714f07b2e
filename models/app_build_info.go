// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package models

const notAvailable = "N/A"

// AppBuildInfo holds the values injected with -ldflags at build time.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo replaces empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
