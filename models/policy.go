package models

// Policy is the curation policy stored at ai/policy.yml. It is versioned in
// the repo so every change to the review rules shows up in history.
type Policy struct {
	Categories         []string `yaml:"categories"`
	Lenses             []string `yaml:"lenses"`
	RejectionCriteria  []string `yaml:"rejection_criteria"`
	AcceptanceCriteria []string `yaml:"acceptance_criteria"`
	MaxDescriptionLen  int      `yaml:"max_description_length"`
	MaxLenses          int      `yaml:"max_lenses"`
}

// CategoryAllowed reports whether name is in the allowed category list.
func (p *Policy) CategoryAllowed(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// LensAllowed reports whether name is in the allowed lens list.
func (p *Policy) LensAllowed(name string) bool {
	for _, l := range p.Lenses {
		if l == name {
			return true
		}
	}
	return false
}
