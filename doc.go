// Package fieldvalidation validates maps of field values, such as submitted
// HTML forms, against composable per-field rules and reports readable
// messages for the fields that fail.
//
// Configure a [Validator] with rules per field:
//
//	v := fieldvalidation.MustNew(
//	    fieldvalidation.Field("name", fieldvalidation.NotNull(), fieldvalidation.StringLength().SetMaxLength(100)),
//	    fieldvalidation.Field("age", fieldvalidation.Integer().SetMinValue(18).SetMaxValue(33)),
//	    fieldvalidation.Field("email", fieldvalidation.AnyOf(
//	        fieldvalidation.Not(fieldvalidation.NotNull()),
//	        fieldvalidation.Email(),
//	    )),
//	)
//
// Then validate a map, or an HTTP request with [Validator.ValidateRequest]:
//
//	if !v.Validate(data) {
//	    for field, msgs := range v.Errors() {
//	        // ...
//	    }
//	}
//
// Rules run in order and the first failing rule of a field ends its
// validation. [List], [AnyOf], [Not] and [When] combine rules; any type
// implementing [Rule] can be used next to the built-in ones.
//
// Messages are templates with {{ key }} placeholders, see [Render].
//
// Sub-packages:
//   - openapi – OpenAPI documents for form endpoints
//   - transform – in-place transformations of extracted field values
package fieldvalidation
