package jsonbridge_test

import (
	"fmt"

	"github.com/katalvlaran/selkit/jsonbridge"
)

// ExampleFromJSONText parses a record and reattaches behavior through an
// explicit capability template: the parsed fields stay plain data, while
// the template contributes the computed "area" operation.
func ExampleFromJSONText() {
	tmpl := &jsonbridge.Template{
		Ops: map[string]jsonbridge.Capability{
			"area": func(d *jsonbridge.Document) (interface{}, error) {
				w, _ := d.Field("width").(float64)
				h, _ := d.Field("height").(float64)
				return w * h, nil
			},
		},
	}

	doc, err := jsonbridge.FromJSONText(tmpl, `{"height":20,"width":10}`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	area, err := doc.Call("area")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(doc.Field("width"), doc.Field("height"), area)
	// Output:
	// 10 20 200
}

// ExampleToJSONText shows the canonical compact encoding of a map value
// (keys sorted by encoding/json).
func ExampleToJSONText() {
	text, err := jsonbridge.ToJSONText(map[string]int{"width": 10, "height": 20})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(text)
	// Output:
	// {"height":20,"width":10}
}
