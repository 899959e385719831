package markupweaver

// attr is a single name/value pair destined for the next tag to open.
type attr struct {
	name  string
	value string
}

// attrList holds the attributes of the pending tag in insertion order.
// Setting a name twice updates the value in place, so the attribute keeps
// its original position in the emitted tag.
type attrList []attr

func (l *attrList) set(name, value string) {
	for i := range *l {
		if (*l)[i].name == name {
			(*l)[i].value = value
			return
		}
	}
	*l = append(*l, attr{name: name, value: value})
}

func (l *attrList) reset() { *l = (*l)[:0] }
