package model

// IsHidden reports the unconditional hide flag
func (e *Element) IsHidden() bool { return e.Hidden }

// VisibilityLogic returns the element's visibility group, nil when unset
func (e *Element) VisibilityLogic() *LogicGroup { return e.Visibility }

// IsHidden reports the unconditional hide flag
func (s *Section) IsHidden() bool { return s.Hidden }

// VisibilityLogic returns the section's visibility group, nil when unset
func (s *Section) VisibilityLogic() *LogicGroup { return s.Visibility }

// IsEmpty reports whether the group has no conditions and no sub-groups
func (g *LogicGroup) IsEmpty() bool {
	return len(g.Conditions) == 0 && len(g.Groups) == 0
}

// AllElements returns every element of the process in document order
func (p *Process) AllElements() []Element {
	var elements []Element
	for _, stage := range p.Stages {
		for _, section := range stage.Sections {
			elements = append(elements, section.Elements...)
		}
	}
	return elements
}

// FindElement looks up an element by identifier
func (p *Process) FindElement(id string) (*Element, bool) {
	for si := range p.Stages {
		for ci := range p.Stages[si].Sections {
			section := &p.Stages[si].Sections[ci]
			for ei := range section.Elements {
				if section.Elements[ei].ID == id {
					return &section.Elements[ei], true
				}
			}
		}
	}
	return nil, false
}

// FindStage looks up a stage by identifier
func (p *Process) FindStage(id string) (*Stage, bool) {
	for i := range p.Stages {
		if p.Stages[i].ID == id {
			return &p.Stages[i], true
		}
	}
	return nil, false
}
