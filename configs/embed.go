// Package configs provides embedded configuration templates for matchql.
//
// Templates are embedded at build time using Go's //go:embed directive so
// they ship inside the binary regardless of how it was installed.
package configs

import _ "embed"

// MatchConfigTemplate is the annotated match configuration template.
// Written out by `matchql config init`; every key carries its default so
// a generated file documents the full surface.
//
//go:embed match.example.yaml
var MatchConfigTemplate string
