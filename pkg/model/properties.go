package model

// Properties is an insertion-ordered set of ModelProperty keyed by name. The
// zero value is ready to use.
type Properties struct {
	order []string
	index map[string]int
	items []ModelProperty
}

// Set stores prop under prop.Name. Re-setting an existing name replaces the
// value but keeps its original position.
func (p *Properties) Set(prop ModelProperty) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if pos, ok := p.index[prop.Name]; ok {
		p.items[pos] = prop
		return
	}
	p.index[prop.Name] = len(p.items)
	p.order = append(p.order, prop.Name)
	p.items = append(p.items, prop)
}

// Get returns the property registered under name.
func (p Properties) Get(name string) (ModelProperty, bool) {
	pos, ok := p.index[name]
	if !ok {
		return ModelProperty{}, false
	}
	return p.items[pos], true
}

// Len returns the number of properties.
func (p Properties) Len() int {
	return len(p.items)
}

// Names returns the property names in insertion order.
func (p Properties) Names() []string {
	return append([]string(nil), p.order...)
}

// Values returns a copy of the properties in insertion order.
func (p Properties) Values() []ModelProperty {
	return append([]ModelProperty(nil), p.items...)
}

// Each calls fn for every property in insertion order until fn returns
// false.
func (p Properties) Each(fn func(ModelProperty) bool) {
	for _, item := range p.items {
		if !fn(item) {
			return
		}
	}
}
