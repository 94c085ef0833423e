package openapi_test

import (
	"fmt"

	v "github.com/Gobd/fieldrules"
	"github.com/Gobd/fieldrules/openapi"
)

type Item struct {
	Name *string `json:"name"`
	SKU  string  `json:"sku"`
}

func (it *Item) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&it.Name, v.Required("name is required"), v.MaxLength(200, "name is too long")),
		v.Field(&it.SKU, v.Pattern(`^[A-Z]{3}-[0-9]+$`, "bad sku")),
	}
}

func ExampleAddSchema() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.AddSchemaMust(doc, "Item", Item{})

	item := doc.Components.Schemas["Item"].Value
	fmt.Println(item.Required)
	fmt.Println(*item.Properties["name"].Value.MaxLength)
	fmt.Println(item.Properties["sku"].Value.Pattern)
	// Output:
	// [name]
	// 200
	// ^[A-Z]{3}-[0-9]+$
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}
