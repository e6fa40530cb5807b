// Package form loads form documents and builds river panel trees from them.
//
// A form is a flat or nested list of components, each with a kind, an
// optional text and a river constraint string:
//
//	title = "Login"
//
//	[[component]]
//	id = "user-label"
//	kind = "label"
//	text = "User"
//
//	[[component]]
//	id = "user"
//	kind = "field"
//	columns = 20
//	constraints = "tab hfill"
//
//	[[component]]
//	id = "ok"
//	kind = "button"
//	text = "Sign in"
//	constraints = "p center"
//
// Documents are TOML or JSON, chosen by file extension. [Build] validates a
// form, measures every leaf with [Metrics] and returns the panel tree
// together with an index of [Element] values for reporting and export.
//
// # Measurement
//
// Text is measured in character cells using East Asian width rules, so wide
// characters take two cells. Each cell is [Metrics.CharWidth] pixels wide and
// each line [Metrics.LineHeight] pixels tall. Explicit width and height keys
// override the measured size per axis.
package form
