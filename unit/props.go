package unit

// PropError is the conventional property key under which error views
// receive the failure that triggered them.
const PropError = "error"

// Props are the properties a unit is mounted with. They are written once by
// the parent and treated as read-only by the mounted unit.
//
// All accessors are nil-receiver safe, so a nil *Props behaves like an
// empty set of properties.
type Props struct {
	m map[string]any
}

// NewProps creates an empty property set.
func NewProps() *Props {
	return &Props{m: make(map[string]any)}
}

// Set stores a property and returns p for chaining.
func (p *Props) Set(key string, value any) *Props {
	if p.m == nil {
		p.m = make(map[string]any)
	}
	p.m[key] = value
	return p
}

// Get retrieves a property.
func (p *Props) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.m[key]
	return v, ok
}

// GetString retrieves a string property.
func (p *Props) GetString(key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetError retrieves an error property.
func (p *Props) GetError(key string) (error, bool) {
	v, ok := p.Get(key)
	if !ok {
		return nil, false
	}
	err, ok := v.(error)
	return err, ok
}

// Len reports the number of properties.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.m)
}
