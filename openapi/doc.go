// Package openapi assembles OpenAPI 3 documents from record types that
// implement [fieldrules.Ruler]. Each record becomes a component schema with
// its field rules documented as required, minLength, maxLength and pattern.
//
//	doc := openapi.DocBase("students", "Student records", "1.0")
//	if err := openapi.AddSchema(doc, "Student", student.Student{}); err != nil {
//	    return err
//	}
package openapi
