package cmdline

import (
	"fmt"
	"sort"
	"strings"
)

type usageConfig struct {
	gap          int
	showDefaults bool
}

// UsageOption adjusts usage-string formatting.
type UsageOption func(*usageConfig)

// UsageColumnGap sets the minimum spacing between the argument column and
// its description. Values below one are ignored.
func UsageColumnGap(n int) UsageOption {
	return func(c *usageConfig) {
		if n >= 1 {
			c.gap = n
		}
	}
}

// UsageNoDefaults suppresses "(default: ...)" annotations.
func UsageNoDefaults() UsageOption {
	return func(c *usageConfig) { c.showDefaults = false }
}

// Usage renders a usage string for the declaration set under the given
// application name. It is a pure function over the immutable declarations:
// flags, valued options and positional arguments are listed in separate
// sections, sorted by name, with descriptions aligned in a single column.
func (a *Args) Usage(appName string, opts ...UsageOption) string {
	cfg := usageConfig{gap: 3, showDefaults: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var flags, valued, positionals []*Arg
	for i := range a.decls {
		d := &a.decls[i]
		switch d.kind {
		case KindFlag:
			flags = append(flags, d)
		case KindValue:
			valued = append(valued, d)
		case KindPositional:
			positionals = append(positionals, d)
		}
	}
	sortByName(flags)
	sortByName(valued)
	// Positionals keep declaration order; that is the order they bind in.

	var b strings.Builder
	b.WriteString("Usage:\n  ")
	b.WriteString(appName)
	if len(flags) > 0 {
		b.WriteString(" [FLAGS]")
	}
	if len(valued) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	for _, d := range positionals {
		if d.required {
			fmt.Fprintf(&b, " <%s>", d.name)
		} else {
			fmt.Fprintf(&b, " [%s]", d.name)
		}
	}
	b.WriteString("\n")

	width := 0
	for i := range a.decls {
		if w := len(usageColumn(&a.decls[i])); w > width {
			width = w
		}
	}

	writeSection(&b, "Flags:", flags, width, cfg)
	writeSection(&b, "Options:", valued, width, cfg)
	writeSection(&b, "Arguments:", positionals, width, cfg)

	return b.String()
}

func sortByName(decls []*Arg) {
	sort.Slice(decls, func(i, j int) bool { return decls[i].name < decls[j].name })
}

// usageColumn builds the left-hand column for one declaration.
func usageColumn(d *Arg) string {
	switch d.kind {
	case KindPositional:
		return "  " + d.name
	case KindFlag:
		if d.letter != "" {
			return fmt.Sprintf("  --%s, -%s", d.name, d.letter)
		}
		return "  --" + d.name
	default:
		if d.letter != "" {
			return fmt.Sprintf("  --%s, -%s value", d.name, d.letter)
		}
		return fmt.Sprintf("  --%s value", d.name)
	}
}

func writeSection(b *strings.Builder, title string, decls []*Arg, width int, cfg usageConfig) {
	if len(decls) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	for _, d := range decls {
		col := usageColumn(d)
		b.WriteString(col)
		b.WriteString(strings.Repeat(" ", width-len(col)+cfg.gap))
		b.WriteString(d.description)
		if len(d.values) > 0 {
			fmt.Fprintf(b, " (one of: %s)", strings.Join(d.values, ", "))
		}
		if d.required {
			b.WriteString(" (required)")
		}
		if cfg.showDefaults && d.hasDefault {
			fmt.Fprintf(b, " (default: %s)", d.def)
		}
		b.WriteString("\n")
	}
}
