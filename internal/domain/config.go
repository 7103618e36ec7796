package domain

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"devr.dev/pkg/devr/internal/adapter"
	m "devr.dev/pkg/devr/internal/model"
)

// LoadConfig reads `[tool.devr]` from the project's pyproject.toml. A
// missing file, a decode error, or a missing section all yield the defaults.
func LoadConfig(reader adapter.PyprojectAdapter, root m.Path) m.Config {
	doc, err := reader.Read(m.Path(joinRoot(root, adapter.PyprojectFileName)))
	if err != nil {
		slog.Debug("using default config", "root", root, "error", err)
		return m.DefaultConfig()
	}

	section, ok := adapter.Table(doc, "tool", "devr")
	if !ok {
		return m.DefaultConfig()
	}

	return ParseConfig(section)
}

// ParseConfig normalizes a raw `[tool.devr]` table. Unrecognized or
// out-of-range values are treated as absent.
func ParseConfig(raw map[string]any) m.Config {
	return m.Config{
		VenvPath:       parseVenvPath(raw["venv_path"]),
		Formatter:      ParseFormatter(raw["formatter"]),
		TypeChecker:    ParseTypeChecker(raw["typechecker"]),
		CoverageMin:    parseBoundedInt(raw["coverage_min"], m.DefaultCoverageMin, 0, 100),
		CoverageBranch: parseBool(raw["coverage_branch"], m.DefaultCoverageBranch),
		RunTests:       parseBool(raw["run_tests"], m.DefaultRunTests),
	}
}

// ParseFormatter maps raw input onto a recognized formatter, or the default.
func ParseFormatter(value any) m.Formatter {
	return parseChoice(value, m.Formatters, m.DefaultFormatter)
}

// ParseTypeChecker maps raw input onto a recognized type checker, or the default.
func ParseTypeChecker(value any) m.TypeChecker {
	return parseChoice(value, m.TypeCheckers, m.DefaultTypeChecker)
}

func parseChoice[T ~string](value any, allowed []T, def T) T {
	s, ok := value.(string)
	if !ok {
		return def
	}

	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, choice := range allowed {
		if string(choice) == normalized {
			return choice
		}
	}

	return def
}

func parseVenvPath(value any) string {
	if s, ok := value.(string); ok {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}

	return m.DefaultVenvPath
}

// parseBoundedInt accepts integers, integral-looking strings and floats
// (truncated toward zero). Booleans are never numbers here.
func parseBoundedInt(value any, def, lo, hi int) int {
	var parsed int64

	switch v := value.(type) {
	case int64:
		parsed = v
	case int:
		parsed = int64(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}

		parsed = int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return def
		}

		parsed = n
	default:
		return def
	}

	if parsed < int64(lo) || parsed > int64(hi) {
		return def
	}

	return int(parsed)
}

func parseBool(value any, def bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	case int64:
		if v == 0 || v == 1 {
			return v == 1
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1
		}
	}

	return def
}
