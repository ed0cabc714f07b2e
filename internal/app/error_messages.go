// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

// Package app contains human-readable messages shared by the server handlers
// and the terminal client.
//
// Messages written into HTTP response bodies are matched by the client, so
// both sides take them from here.
package app

const (
	// MsgInvalidLoginPassword answers every authentication failure, whether
	// the login is unknown or the password is wrong.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTooManyRequests answers requests refused by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgInvalidGzipBody answers a request whose gzip body cannot be read.
	MsgInvalidGzipBody = "invalid gzip data"
)

// Messages shown by the terminal client.
const (
	MsgServerUnavailable   = "network unavailable or server is down"
	MsgFieldsRequired      = "all fields are required"
	MsgPasswordsDoNotMatch = "passwords do not match"
	MsgPasswordTooWeak     = "password does not meet the password policy"
	MsgPasswordReused      = "this password was used recently, choose another one"
	MsgLoginAlreadyExists  = "an account with this email already exists"
	MsgLoginRequired       = "log in first to change your password"
	MsgPasswordExpired     = "your password has expired, choose a new one"
	MsgRateLimited         = "too many attempts, try again later"
	MsgCopied              = "copied to clipboard"
)
