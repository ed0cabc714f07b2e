// Package strength evaluates candidate passwords against a [Policy].
//
// Evaluation is pure computation: it performs no I/O, keeps no state between
// calls and is safe to use from any number of goroutines. The only shared data
// are the denylist and pattern tables held by a [Dictionary], which are built
// once and never mutated afterwards.
//
// The package also provides a secure password generator ([GenerateSecurePassword])
// and presentation helpers ([Label], [ColorToken]) for strength meters.
//
// Callers must never pass the evaluated password or the feedback strings of a
// [Result] to a logging or analytics sink: both reveal password structure.
package strength
