// Package palette loads and formats HCL palette files. A palette file has
// one palette block of flat name = "#hex" attributes and an optional meta
// block:
//
//	meta {
//	  name   = "rose"
//	  author = "someone"
//	}
//
//	palette {
//	  love = "#eb6f92"
//	  gold = "#f6c177"
//	  foam = red
//	}
//
// The named colors from the tinycolor package (white, black, red, ...) are
// available as variables inside the palette block.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/amitmaish/tinycolor"
)

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
}

// Entry is one named color in declaration order.
type Entry struct {
	Name  string
	Color tinycolor.SRGB
}

// Palette is a fully parsed palette file.
type Palette struct {
	Meta    Meta
	Entries []Entry
}

// Get returns the color with the given name.
func (p *Palette) Get(name string) (tinycolor.SRGB, bool) {
	for _, e := range p.Entries {
		if e.Name == name {
			return e.Color, true
		}
	}
	return tinycolor.SRGB{}, false
}

type paletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

type rawConfig struct {
	Meta    *Meta         `hcl:"meta,block"`
	Palette *paletteBlock `hcl:"palette,block"`
}

// Load reads and parses a palette file.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses palette HCL source. The filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw rawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}

	if raw.Palette == nil {
		return nil, fmt.Errorf("no palette block found")
	}

	body, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
	}

	entries, err := parsePaletteBody(body, buildEvalContext())
	if err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}

	p := &Palette{Entries: entries}
	if raw.Meta != nil {
		p.Meta = *raw.Meta
	}
	return p, nil
}

// parsePaletteBody evaluates the flat color attributes, keeping the order
// they appear in the source.
func parsePaletteBody(body *hclsyntax.Body, ctx *hcl.EvalContext) ([]Entry, error) {
	if len(body.Blocks) > 0 {
		return nil, fmt.Errorf("palette.%s: nested blocks are not allowed", body.Blocks[0].Type)
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].NameRange.Start.Line < attrs[j].NameRange.Start.Line
	})

	entries := make([]Entry, 0, len(attrs))
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating palette.%s: %s", attr.Name, diags.Error())
		}
		if val.Type() != cty.String {
			return nil, fmt.Errorf("palette.%s: expected a color string", attr.Name)
		}
		c, err := tinycolor.ParseHex(val.AsString())
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", attr.Name, err)
		}
		entries = append(entries, Entry{Name: attr.Name, Color: c})
	}
	return entries, nil
}

// buildEvalContext exposes the package's named colors as hex strings so
// palette files can reference them directly.
func buildEvalContext() *hcl.EvalContext {
	named := map[string]tinycolor.SRGB{
		"white":  tinycolor.White,
		"black":  tinycolor.Black,
		"red":    tinycolor.Red,
		"yellow": tinycolor.Yellow,
		"green":  tinycolor.Green,
		"aqua":   tinycolor.Aqua,
		"blue":   tinycolor.Blue,
		"purple": tinycolor.Purple,
	}

	vars := make(map[string]cty.Value, len(named))
	for name, c := range named {
		vars[name] = cty.StringVal(c.Hex())
	}
	return &hcl.EvalContext{Variables: vars}
}
