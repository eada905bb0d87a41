package run

import "github.com/kailas-cloud/runstore/internal/domain/value"

// Direct scalar field names addressable by field paths.
const (
	FieldID           = "id"
	FieldProjectID    = "projectId"
	FieldExperimentID = "experimentId"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldOwner        = "owner"
	FieldCodeVersion  = "codeVersion"
	FieldDateCreated  = "dateCreated"
	FieldDateUpdated  = "dateUpdated"
	FieldStartTime    = "startTime"
	FieldEndTime      = "endTime"
)

// Scalar describes a direct run field.
type Scalar struct {
	Name     string
	Kind     value.Kind
	Nullable bool
}

var scalars = []Scalar{
	{Name: FieldID, Kind: value.KindString},
	{Name: FieldProjectID, Kind: value.KindString},
	{Name: FieldExperimentID, Kind: value.KindString},
	{Name: FieldName, Kind: value.KindString},
	{Name: FieldDescription, Kind: value.KindString},
	{Name: FieldOwner, Kind: value.KindString},
	{Name: FieldCodeVersion, Kind: value.KindString},
	{Name: FieldDateCreated, Kind: value.KindNumber},
	{Name: FieldDateUpdated, Kind: value.KindNumber},
	{Name: FieldStartTime, Kind: value.KindNumber, Nullable: true},
	{Name: FieldEndTime, Kind: value.KindNumber, Nullable: true},
}

var scalarIndex = func() map[string]Scalar {
	m := make(map[string]Scalar, len(scalars))
	for _, s := range scalars {
		m[s.Name] = s
	}
	return m
}()

// LookupScalar returns the descriptor of a direct field.
func LookupScalar(name string) (Scalar, bool) {
	s, ok := scalarIndex[name]
	return s, ok
}

// Scalars returns all direct field descriptors.
func Scalars() []Scalar {
	out := make([]Scalar, len(scalars))
	copy(out, scalars)
	return out
}
