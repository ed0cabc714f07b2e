// Package ratelimit caps how often a single client may call the password
// endpoints.
//
// Two backends are provided. RedisLimiter keeps a fixed-window counter per key
// in Redis so that every server replica shares the same budget. MemoryLimiter
// keeps a token bucket per key in process and is used when no Redis URL is
// configured.
package ratelimit
