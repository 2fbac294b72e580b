// Package feature holds the closed registry of installable features and
// their handlers. A feature is a self-contained addition to a generated
// project: it installs packages through the resolved package manager and
// writes template files at paths derived from the detected project layout.
package feature

import "errors"

// ErrUnknownFeature indicates a feature name not present in the registry.
var ErrUnknownFeature = errors.New("feature: unknown feature")
