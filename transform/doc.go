// Package transform rewrites the string fields of a record in place. It is
// meant for [fieldrules.Normalizer] implementations that clean up decoded
// input before its rules are checked.
package transform
