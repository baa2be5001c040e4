package schema

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/internal/trace"
)

// LoadFile reads and parses the schema file at path. See Load for the
// format and failure modes.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Wrap(core.KindSchemaParse, err, "cannot open schema file %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load parses the declarative, sectioned key-value schema text format
// from r.
//
// Top-level sections are:
//
//	[metadata]            name, script_type, has_implicit_a, target_hub, aliases
//	[mappings.<category>] one "source = canonical" pair per line
//	[codegen]             opaque key = value hints
//
// Lines starting with '#' or ';' and blank lines are ignored. Every
// string value is normalized to NFC before being stored. Numeric-looking
// values (e.g. digit mappings) are kept as strings, never parsed as
// integers, preserving leading zeros and script-specific digit
// codepoints.
//
// Load fails with a core.KindSchemaParse error on syntax errors and a
// core.KindSchemaInvalid error on invariant violations: an empty source
// key, a duplicate source key anywhere in the schema, or a malformed
// boolean/enum field.
func Load(r io.Reader) (*Schema, error) {
	s := &Schema{
		Mappings:     make(map[Category][]Entry),
		CodegenHints: make(map[string]string),
	}
	seenKeys := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, core.Wrap(core.KindSchemaParse, nil,
					"line %d: unterminated section header %q", lineNo, line)
			}
			section = norm.NFC.String(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, core.Wrap(core.KindSchemaParse, nil,
				"line %d: expected \"key = value\", got %q", lineNo, line)
		}
		key := norm.NFC.String(strings.TrimSpace(line[:eq]))
		val := norm.NFC.String(strings.TrimSpace(line[eq+1:]))

		switch {
		case section == "metadata":
			if err := applyMetadata(s, key, val); err != nil {
				return nil, err
			}
		case section == "codegen":
			s.CodegenHints[key] = val
		case strings.HasPrefix(section, "mappings."):
			cat := canonicalCategory(Category(strings.TrimPrefix(section, "mappings.")))
			if key == "" {
				return nil, core.Wrap(core.KindSchemaInvalid, nil,
					"line %d: empty source key in category %s", lineNo, cat)
			}
			if seenKeys[key] {
				return nil, core.Wrap(core.KindSchemaInvalid, nil,
					"line %d: duplicate source key %q", lineNo, key)
			}
			seenKeys[key] = true
			explicit := false
			if strings.HasSuffix(val, "*") {
				explicit = true
				val = strings.TrimSpace(strings.TrimSuffix(val, "*"))
			}
			s.Mappings[cat] = append(s.Mappings[cat], Entry{
				Key: key, Canonical: val, ExplicitPreferred: explicit,
			})
		default:
			trace.T().Debugf("schema loader: ignoring key %q in unrecognized section %q", key, section)
			// Unknown top-level sections carry no builder-relevant data
			// and are silently skipped.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.Wrap(core.KindSchemaParse, err, "error scanning schema")
	}
	if s.Name == "" {
		return nil, core.New(core.KindSchemaInvalid, "schema missing required [metadata] name")
	}
	if s.ScriptType == "" {
		return nil, core.New(core.KindSchemaInvalid, "schema %s missing required script_type", s.Name)
	}
	s.ComputePreferences()
	return s, nil
}

func canonicalCategory(c Category) Category {
	if c == categoryDependentVowels {
		return CategoryVowelSigns
	}
	return c
}

func applyMetadata(s *Schema, key, val string) error {
	switch key {
	case "name":
		s.Name = val
	case "aliases":
		for _, a := range strings.Split(val, ",") {
			a = strings.TrimSpace(a)
			if a != "" {
				s.Aliases = append(s.Aliases, a)
			}
		}
	case "script_type":
		switch ScriptType(val) {
		case Abugida, Roman:
			s.ScriptType = ScriptType(val)
		default:
			return core.Wrap(core.KindSchemaInvalid, nil, "unknown script_type %q", val)
		}
	case "has_implicit_a":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return core.Wrap(core.KindSchemaInvalid, err, "has_implicit_a must be true/false, got %q", val)
		}
		s.HasImplicitA = b
	case "target_hub":
		switch HubSide(val) {
		case HubDevanagari, HubPhonemic:
			s.TargetHub = HubSide(val)
		default:
			return core.Wrap(core.KindSchemaInvalid, nil, "unknown target_hub %q", val)
		}
	default:
		return core.Wrap(core.KindSchemaParse, nil, "unknown metadata field %q", key)
	}
	return nil
}
