package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/rawbytedev/flatabi/internal/common"
)

// maxUnionTerms is the type checker's cap on a flattened union.
const maxUnionTerms = 100

// typesCommand renders the Array constraint of package flatabi.
type typesCommand struct {
	out *string
}

func (cmd *typesCommand) run(*kingpin.ParseContext) error {
	src, err := renderArrayConstraint(common.Scalars, common.ArrayLengths)
	if err != nil {
		return err
	}
	return writeOutput(*cmd.out, src)
}

func renderArrayConstraint(scalars []common.Scalar, lengths []int) ([]byte, error) {
	// Scalar and Pointer each contribute one term per scalar plus one.
	terms := len(scalars)*len(lengths) + 2*(len(scalars)+1)
	if terms > maxUnionTerms {
		return nil, errors.Errorf("Layout would have %d union terms, limit is %d", terms, maxUnionTerms)
	}
	level.Debug(logger).Log("msg", "rendering array constraint", "lengths", len(lengths), "terms", terms)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by flatgen types; DO NOT EDIT.\n\n")
	buf.WriteString("package flatabi\n\n")
	buf.WriteString("// Array admits short fixed-size arrays of scalar elements.\n")
	buf.WriteString("type Array interface {\n")
	for i, n := range lengths {
		row := make([]string, 0, len(scalars))
		for _, s := range scalars {
			row = append(row, fmt.Sprintf("~[%d]%s", n, s.Name))
		}
		buf.WriteString("\t" + strings.Join(row, " | "))
		if i < len(lengths)-1 {
			buf.WriteString(" |")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	return src, errors.Wrap(err, "format generated source")
}

func addTypesCommand(app *kingpin.Application) {
	cmd := &typesCommand{}
	types := app.Command("types", "Render the Array constraint of package flatabi.").Action(cmd.run)
	cmd.out = types.Flag("out", "Output file, - for stdout.").Short('o').Default("-").String()
}
