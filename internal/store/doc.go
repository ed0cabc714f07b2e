// Package store implements persistence for passcheck: the PostgreSQL user
// and password-history repositories, and the sources an extended password
// denylist can be loaded from (local file or S3 object).
package store
