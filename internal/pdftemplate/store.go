// Package pdftemplate holds the built-in catalog of quotation HTML
// templates. Companies keep a resolved copy of one of these documents;
// the catalog is only consulted at company creation and as a render
// fallback, so editing a template here never rewrites saved companies.
package pdftemplate

import "sort"

const (
	Modelo1 = "modelo1"
	Modelo2 = "modelo2"
	Modelo3 = "modelo3"
)

var catalog = map[string]string{
	Modelo1: modelo1HTML,
	Modelo2: modelo2HTML,
	Modelo3: modelo3HTML,
}

// Default returns the HTML of the default quotation template.
func Default() string {
	return modelo1HTML
}

// Lookup returns the template HTML for name.
func Lookup(name string) (string, bool) {
	html, ok := catalog[name]
	return html, ok
}

// Names lists the catalog template names in stable order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
