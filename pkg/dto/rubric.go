package dto

import (
	"github.com/edukit/go-canvas/pkg/formenc"
)

// RubricDTO builds the payload for creating or updating a rubric.
//
// Criteria is a mapping keyed by criterion ID (any string, commonly
// "criterion_1" style) whose values are themselves mappings with
// description, points and a ratings sequence. A plain sequence is also
// accepted, in which case criteria render under their 0-based position.
type RubricDTO struct {
	// Title of the rubric.
	Title *string `json:"title"`

	// FreeFormCriterionComments enables free-form comments per criterion
	// instead of ratings.
	FreeFormCriterionComments *bool `json:"free_form_criterion_comments"`

	// SkipUpdatingPointsPossible leaves the associated assignment's
	// points untouched on update.
	SkipUpdatingPointsPossible *bool `json:"skip_updating_points_possible"`

	// Criteria is the rubric's criteria, keyed by ID or positional.
	Criteria any `json:"criteria"`

	// RubricAssociationID identifies an existing association to update.
	// Canvas reads this at top level, outside the rubric prefix.
	RubricAssociationID *int64 `json:"rubric_association_id"`

	// Association describes the object the rubric is attached to
	// (association_id, association_type, use_for_grading, purpose).
	// Emitted under its own rubric_association root.
	Association any `json:"rubric_association"`
}

// NewRubricDTO constructs a RubricDTO from a mapping with snake_case or
// camelCase keys. Unknown keys are ignored.
func NewRubricDTO(in map[string]any) (*RubricDTO, error) {
	d := &RubricDTO{}
	if err := decode(in, d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetCriterion assigns one criterion under id, preserving the order
// criteria were added in.
func (d *RubricDTO) SetCriterion(id string, criterion any) *RubricDTO {
	vals, ok := d.Criteria.(*formenc.Values)
	if !ok || vals == nil {
		vals = formenc.NewValues()
		d.Criteria = vals
	}
	vals.Set(id, criterion)
	return d
}

// Fields emits every set property under its own name, unprefixed.
func (d *RubricDTO) Fields() []formenc.Field {
	var fields []formenc.Field
	fields = append(fields, formenc.Flatten("title", d.Title, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("free_form_criterion_comments", d.FreeFormCriterionComments, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("skip_updating_points_possible", d.SkipUpdatingPointsPossible, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("criteria", d.Criteria, formenc.BoolNumeric)...)
	return fields
}

// APIFields emits the rubric-prefixed payload, with rubric_association_id
// at top level and the association under its own rubric_association root.
func (d *RubricDTO) APIFields() ([]formenc.Field, error) {
	fields := wrap("rubric", d.Fields())
	fields = append(fields, formenc.Flatten("rubric_association_id", d.RubricAssociationID, formenc.BoolNumeric)...)
	fields = append(fields, formenc.Flatten("rubric_association", d.Association, formenc.BoolNumeric)...)
	return fields, nil
}
