// Package formenc flattens nested Go values into the ordered multipart
// field names the Canvas LMS API expects.
//
// Canvas encodes nested request parameters with bracketed path names, e.g.
//
//	rubric[criteria][criterion_1][ratings][0][points] = 5
//
// Sequences of scalars use the append form, where the field name is
// repeated once per element with a trailing empty bracket pair:
//
//	appointment_group[new_appointments][0][] = 2024-01-01T10:00:00+00:00
//	appointment_group[new_appointments][0][] = 2024-01-01T11:00:00+00:00
//
// while sequences of structures get explicit numeric indices:
//
//	quiz[questions][0][question_text] = Q1
//	quiz[questions][1][question_text] = Q2
//
// Flatten reproduces both conventions. Nil values and empty containers are
// elided entirely; they never produce a field.
package formenc
