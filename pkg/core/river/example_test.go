package river_test

import (
	"fmt"

	"github.com/matzehuels/river/pkg/core/river"
)

func ExamplePanel() {
	// A two-field form with a centered button below it
	p := river.NewPanel()
	p.Add(river.NewBox("name", 40, 10), "")
	p.Add(river.NewBox("field", 100, 20), "tab hfill")
	p.Add(river.NewBox("mail", 30, 10), "br")
	p.Add(river.NewBox("mailField", 100, 20), "tab hfill")
	p.Add(river.NewBox("ok", 50, 20), "p center")

	pref := p.PreferredSize()
	fmt.Printf("Preferred: %dx%d\n", pref.Width, pref.Height)

	p.SetSize(pref)
	p.DoLayout()
	for _, c := range p.Components() {
		fmt.Printf("%-9s %+v\n", c, c.Bounds())
	}
	// Output:
	// Preferred: 170x90
	// name      {X:10 Y:10 Width:40 Height:10}
	// field     {X:60 Y:5 Width:100 Height:20}
	// mail      {X:10 Y:35 Width:30 Height:10}
	// mailField {X:60 Y:30 Width:100 Height:20}
	// ok        {X:60 Y:65 Width:50 Height:20}
}

func ExampleParseConstraints() {
	// Unknown tokens are dropped; the rest print in canonical order
	s := "hfill  tab br bogus"
	fmt.Println(river.ParseConstraints(s))
	fmt.Println("Unknown:", river.UnknownTokens(s))
	// Output:
	// br tab hfill
	// Unknown: [bogus]
}

func ExampleRuler() {
	var r river.Ruler
	r.SetTab(0, 10)
	r.SetTab(1, 25)
	r.SetTab(0, 20)
	fmt.Println(r.String())
	// Output:
	// Ruler{20,35}
}
