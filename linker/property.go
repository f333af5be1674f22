package linker

// Property is a computed attribute: a getter and an optional setter.
type Property struct {
	get   func(self Instance) (any, error)
	set   func(self Instance, value any) error
	doc   string
	owner Accessor
}

// NewProperty creates a property. A nil set makes it read-only.
func NewProperty(
	get func(self Instance) (any, error),
	set func(self Instance, value any) error,
	doc string,
) *Property {
	return &Property{get: get, set: set, doc: doc}
}

// Get evaluates the property for self.
func (p *Property) Get(self Instance) (any, error) {
	return p.get(self)
}

// Set writes value through the property.
func (p *Property) Set(self Instance, value any) error {
	if p.set == nil {
		return ErrReadOnly
	}

	return p.set(self, value)
}

// ReadOnly reports whether the property has no setter.
func (p *Property) ReadOnly() bool {
	return p.set == nil
}

// Doc returns the property documentation.
func (p *Property) Doc() string {
	return p.doc
}

// Owner returns the accessor that built the property, nil for properties
// made with NewProperty.
func (p *Property) Owner() Accessor {
	return p.owner
}
