package matchers

import "github.com/toejough/eventmon"

// Printer demonstrates recorders asserted with gomega matchers instead of the fluent chain.
type Printer struct {
	Printed eventmon.Event[func(sender any, pages int, duplex bool)]
	Jammed  eventmon.Event[func(sender any, page int)]
}

// Print prints pages one sheet at a time, jamming on page jamAt when it is positive.
func (p *Printer) Print(pages int, duplex bool, jamAt int) {
	for page := 1; page <= pages; page++ {
		if page == jamAt {
			for _, handler := range p.Jammed.Handlers() {
				handler(p, page)
			}

			return
		}
	}

	for _, handler := range p.Printed.Handlers() {
		handler(p, pages, duplex)
	}
}
