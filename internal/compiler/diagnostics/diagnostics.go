package diagnostics

import "fmt"

// Warning is a non-fatal advisory produced during parsing. Warnings never
// abort a parse; they accumulate on the Collector regardless of whether the
// parse itself ultimately succeeds.
type Warning struct {
	Message string
}

// Collector accumulates warnings for one compilation run. The caller
// creates it, hands it to the parser, and drains it after parsing; it is
// never global and never reset mid-parse.
type Collector struct {
	warnings []Warning
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Warnf(format string, args ...any) {
	c.warnings = append(c.warnings, Warning{Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the accumulated warnings without clearing them.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Drain returns the accumulated warnings and empties the collector.
func (c *Collector) Drain() []Warning {
	w := c.warnings
	c.warnings = nil
	return w
}
