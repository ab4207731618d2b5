// Package transform provides in-place transformations of extracted field
// values, typically applied between [fieldvalidation.ExtractRequest] and
// [fieldvalidation.Validator.Validate].
package transform
