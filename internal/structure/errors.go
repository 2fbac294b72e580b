package structure

import "errors"

// ErrNotDetected indicates neither app/ nor src/ exists at the project root.
var ErrNotDetected = errors.New("structure: could not detect project structure, neither 'app' nor 'src' directory found")
