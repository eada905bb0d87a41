package db

// IndexBuilder is a fluent builder for secondary index definitions.
type IndexBuilder struct {
	def IndexDefinition
}

// NewIndex starts building an index definition.
func NewIndex(name string) *IndexBuilder {
	return &IndexBuilder{def: IndexDefinition{Name: name}}
}

// On sets the collection or table the index covers.
func (b *IndexBuilder) On(collection string) *IndexBuilder {
	b.def.Collection = collection
	return b
}

// Asc adds an ascending key.
func (b *IndexBuilder) Asc(name string) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, IndexField{Name: name})
	return b
}

// Desc adds a descending key.
func (b *IndexBuilder) Desc(name string) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, IndexField{Name: name, Descending: true})
	return b
}

// Unique marks the index as unique.
func (b *IndexBuilder) Unique() *IndexBuilder {
	b.def.Unique = true
	return b
}

// Build validates and returns the index definition.
func (b *IndexBuilder) Build() (*IndexDefinition, error) {
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	return &b.def, nil
}

// MustBuild calls Build and panics on error.
func (b *IndexBuilder) MustBuild() *IndexDefinition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}
