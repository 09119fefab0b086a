package internal

import (
	"fmt"
	"strings"
)

// Parser reads subscription files into subscription records.
type Parser interface {
	Parse(path string) ([]Subscription, error)
}

// ParserFunc is a function that implements Parser
type ParserFunc func(path string) ([]Subscription, error)

func (f ParserFunc) Parse(path string) ([]Subscription, error) {
	return f(path)
}

// parsers is the registry of available parsers
var parsers = map[string]Parser{}

// RegisterParser registers a parser with the given name
func RegisterParser(name string, p Parser) {
	parsers[name] = p
}

// GetParser returns the parser for the given format name
func GetParser(format string) (Parser, error) {
	p, ok := parsers[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (available: %v)", format, AvailableFormats())
	}
	return p, nil
}

// AvailableFormats returns a list of registered format names
func AvailableFormats() []string {
	var formats []string
	for name := range parsers {
		formats = append(formats, name)
	}
	return formats
}

// IsKnownParser returns true if the name is a registered parser
func IsKnownParser(name string) bool {
	_, ok := parsers[name]
	return ok
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "simple-json:subs.json" → ("simple-json", "subs.json")
// Example: "subs.json" → ("", "subs.json")
// Example: "C:\path\subs.xlsx" → ("", "C:\path\subs.xlsx") // Windows path
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownParser(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg // Not a known parser, treat whole thing as path
}

// DetectFormat guesses a format from the file extension. Defaults to
// simple-json.
func DetectFormat(path string) string {
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return "yaml"
	case strings.HasSuffix(path, ".xlsx"):
		return "xlsx"
	default:
		return "simple-json"
	}
}

// LoadLedger parses a subscription file and loads the records into a fresh
// ledger, preserving file order.
func LoadLedger(fileArg string) (*Ledger, error) {
	format, path := ParseFileArg(fileArg)
	if format == "" {
		format = DetectFormat(path)
	}

	parser, err := GetParser(format)
	if err != nil {
		return nil, err
	}

	subs, err := parser.Parse(path)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger()
	for _, sub := range subs {
		if err := ledger.AddRecord(sub); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}
