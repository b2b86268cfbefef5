package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/flatabi/internal/common"
)

// Manifest selects what a header declares.
type Manifest struct {
	Guard    string   `yaml:"guard"`
	Elements []string `yaml:"elements"`
	// Owning emits StableVec and StableString. Leave it off for builds
	// tagged flatabi_noalloc.
	Owning *bool `yaml:"owning"`
}

func (m *Manifest) owning() bool { return m.Owning == nil || *m.Owning }

func loadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, errors.Wrap(err, "read manifest")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return m, errors.Wrapf(err, "parse manifest %s", path)
	}
	return m, nil
}

type headerCommand struct {
	manifest *string
	elements *[]string
	guard    *string
	noOwning *bool
	out      *string
}

func (cmd *headerCommand) run(*kingpin.ParseContext) error {
	var m Manifest
	if *cmd.manifest != "" {
		var err error
		if m, err = loadManifest(*cmd.manifest); err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "loaded manifest", "path", *cmd.manifest, "elements", len(m.Elements))
	}
	m.Elements = append(m.Elements, *cmd.elements...)
	if *cmd.guard != "" {
		m.Guard = *cmd.guard
	}
	if *cmd.noOwning {
		off := false
		m.Owning = &off
	}

	src, err := renderHeader(m)
	if err != nil {
		return err
	}
	return writeOutput(*cmd.out, src)
}

func renderHeader(m Manifest) ([]byte, error) {
	guard := m.Guard
	if guard == "" {
		guard = "FLATABI_H"
	}

	var scalars []common.Scalar
	seen := map[string]bool{}
	complexUsed := false
	for _, name := range m.Elements {
		s, ok := common.LookupScalar(strings.TrimSpace(name))
		if !ok {
			return nil, errors.Errorf("element %q has no C declaration", name)
		}
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		complexUsed = complexUsed || strings.HasSuffix(s.CType, "_Complex")
		scalars = append(scalars, s)
	}

	var b bytes.Buffer
	b.WriteString("/* Code generated by flatgen header; DO NOT EDIT. */\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <stdbool.h>\n#include <stdint.h>\n")
	if complexUsed {
		b.WriteString("#include <complex.h>\n")
	}
	b.WriteString("\n")

	b.WriteString("typedef struct { uint8_t const *ptr; uintptr_t len; } SharedStr;\n")
	b.WriteString("typedef struct { uint8_t *ptr; uintptr_t len; } UniqueStr;\n")
	if m.owning() {
		b.WriteString("typedef struct { uint8_t *ptr; uintptr_t len; uintptr_t cap; } StableString;\n")
	}

	for _, s := range scalars {
		b.WriteString("\n")
		fmt.Fprintf(&b, "typedef struct { %s const *ptr; uintptr_t len; } SharedSlice_%s;\n", s.CType, s.Name)
		fmt.Fprintf(&b, "typedef struct { %s *ptr; uintptr_t len; } UniqueSlice_%s;\n", s.CType, s.Name)
		if m.owning() {
			fmt.Fprintf(&b, "typedef struct { %s *ptr; uintptr_t len; uintptr_t cap; } StableVec_%s;\n", s.CType, s.Name)
		}
	}

	fmt.Fprintf(&b, "\n#endif /* %s */\n", guard)
	return b.Bytes(), nil
}

func addHeaderCommand(app *kingpin.Application) {
	cmd := &headerCommand{}
	header := app.Command("header", "Render C typedefs for the flat records.").Action(cmd.run)
	cmd.manifest = header.Flag("manifest", "YAML manifest listing element types.").ExistingFile()
	cmd.elements = header.Flag("elem", "Element type to declare, may be repeated.").Strings()
	cmd.guard = header.Flag("guard", "Include guard macro.").String()
	cmd.noOwning = header.Flag("no-owning", "Omit the owning record types.").Bool()
	cmd.out = header.Flag("out", "Output file, - for stdout.").Short('o').Default("-").String()
}
