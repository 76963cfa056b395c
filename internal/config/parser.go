package config

import (
	"context"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/AveryLindqvistMarsh/drivermatch/internal/platform"
)

// Parser parses Lua config files with platform information available to
// the config code.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a config parser with the given platform detector. A
// nil detector skips platform table injection.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseError represents a config parsing error with a friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Load reads and parses the config file at path. A missing file returns
// Default() without error.
func (p *Parser) Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return p.ParseString(ctx, string(data))
}

// ParseString parses a Lua config from a string.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	L := newSandboxedVM()
	defer L.Close()

	// Detect platform and inject platform table
	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// extractConfig extracts the config from a Lua state. It expects a global
// "drivermatch" table with the config structure.
func extractConfig(L *lua.LState) (*Config, error) {
	rootValue := L.GetGlobal("drivermatch")
	if rootValue.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'drivermatch' table",
			Detail:  fmt.Sprintf("expected table, got %s", rootValue.Type()),
		}
	}

	config := Default()
	table := rootValue.(*lua.LTable)

	if urlVal := table.RawGetString("catalog_url"); urlVal.Type() == lua.LTString {
		config.CatalogURL = urlVal.String()
	}

	if dirVal := table.RawGetString("dir"); dirVal.Type() == lua.LTString {
		config.Dir = dirVal.String()
	}

	if strictVal := table.RawGetString("strict"); strictVal.Type() == lua.LTBool {
		config.Strict = bool(strictVal.(lua.LBool))
	}

	if browserVal := table.RawGetString("browser"); browserVal.Type() == lua.LTTable {
		browserTable := browserVal.(*lua.LTable)

		if commandsVal := browserTable.RawGetString("commands"); commandsVal.Type() == lua.LTTable {
			config.BrowserCommands = extractStrings(commandsVal.(*lua.LTable))
		}

		if pathsVal := browserTable.RawGetString("paths"); pathsVal.Type() == lua.LTTable {
			config.BrowserPaths = extractStrings(pathsVal.(*lua.LTable))
		}
	}

	if err := config.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}

	return config, nil
}

// extractStrings extracts a string array from a Lua table. It filters out
// nil values from platform conditionals like:
//
//	platform.is_linux and "chromium" or nil
func extractStrings(table *lua.LTable) []string {
	var values []string

	table.ForEach(func(key, value lua.LValue) {
		if value.Type() != lua.LTString {
			return
		}
		values = append(values, value.String())
	})

	return values
}
