package sink

import (
	"bytes"
	"encoding/xml"
)

// Style is the look of one element kind.
type Style struct {
	Fill    string // "" for no fill
	Stroke  string
	Text    string
	Radius  float64
	Dashed  bool
	Centred bool // centre the text instead of left-aligning it
}

const (
	backgroundColor = "#fafafa"
	frameColor      = "#9e9e9e"
	rowColor        = "#64b5f6"
	fontSize        = 11.0
	textInset       = 4.0
)

var kindStyles = map[string]Style{
	"label":  {Stroke: "#cfd8dc", Text: "#263238", Dashed: true},
	"field":  {Fill: "#ffffff", Stroke: "#78909c", Text: "#90a4ae", Radius: 2},
	"area":   {Fill: "#ffffff", Stroke: "#78909c", Text: "#90a4ae", Radius: 2},
	"button": {Fill: "#eceff1", Stroke: "#546e7a", Text: "#263238", Radius: 4, Centred: true},
	"box":    {Fill: "#e0e0e0", Stroke: "#757575", Text: "#616161"},
	"panel":  {Stroke: "#8d6e63", Text: "#5d4037", Radius: 3},
}

// StyleFor returns the style for an element kind. Unknown kinds get the box
// style.
func StyleFor(kind string) Style {
	if s, ok := kindStyles[kind]; ok {
		return s
	}
	return kindStyles["box"]
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
