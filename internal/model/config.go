package model

// Formatter selects the code formatter.
type Formatter string

const (
	// FormatterRuff formats with `ruff format`.
	FormatterRuff Formatter = "ruff"
	// FormatterBlack formats with black (ruff still lints).
	FormatterBlack Formatter = "black"
)

// Formatters lists the recognized formatters.
var Formatters = []Formatter{FormatterRuff, FormatterBlack}

// TypeChecker selects the static type checker.
type TypeChecker string

const (
	// TypeCheckerMypy runs mypy.
	TypeCheckerMypy TypeChecker = "mypy"
	// TypeCheckerPyright runs pyright.
	TypeCheckerPyright TypeChecker = "pyright"
)

// TypeCheckers lists the recognized type checkers.
var TypeCheckers = []TypeChecker{TypeCheckerMypy, TypeCheckerPyright}

// Defaults for Config.
const (
	DefaultVenvPath       = ".venv"
	DefaultFormatter      = FormatterRuff
	DefaultTypeChecker    = TypeCheckerMypy
	DefaultCoverageMin    = 85
	DefaultCoverageBranch = true
	DefaultRunTests       = true
)

// Config is the validated `[tool.devr]` section of pyproject.toml.
type Config struct {
	VenvPath       string
	Formatter      Formatter
	TypeChecker    TypeChecker
	CoverageMin    int
	CoverageBranch bool
	RunTests       bool
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		VenvPath:       DefaultVenvPath,
		Formatter:      DefaultFormatter,
		TypeChecker:    DefaultTypeChecker,
		CoverageMin:    DefaultCoverageMin,
		CoverageBranch: DefaultCoverageBranch,
		RunTests:       DefaultRunTests,
	}
}
