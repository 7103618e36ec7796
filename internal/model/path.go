// Package model defines the data structures shared by the devr workflows.
package model

// Path represents a file system path.
type Path string

// Environment is an isolated Python environment on disk.
type Environment struct {
	// Dir is the environment root directory.
	Dir Path
	// Interpreter is the python executable inside Dir.
	Interpreter Path
}

// String returns the environment directory.
func (e Environment) String() string {
	return string(e.Dir)
}
