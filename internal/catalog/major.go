package catalog

// Category is a requirement category of a major
type Category string

const (
	LowerDivision Category = "lower_division"
	UpperDivision Category = "upper_division"
	Breadth       Category = "breadth"
)

// Categories is the fixed order in which requirement categories are walked
var Categories = []Category{LowerDivision, UpperDivision, Breadth}

// ParseCategory validates a category name
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Title renders the category for display, e.g. "Lower Division"
func (c Category) Title() string {
	switch c {
	case LowerDivision:
		return "Lower Division"
	case UpperDivision:
		return "Upper Division"
	case Breadth:
		return "Breadth"
	}
	return string(c)
}

// RequirementGroup is a named bundle of course identifiers
type RequirementGroup struct {
	Name        string   `json:"name"`
	Courses     []string `json:"courses"`
	Units       int      `json:"units"`
	Description string   `json:"description"`
}

// Requirements holds a major's requirement groups by category
type Requirements struct {
	LowerDivision []RequirementGroup `json:"lower_division"`
	UpperDivision []RequirementGroup `json:"upper_division"`
	Breadth       []RequirementGroup `json:"breadth"`
}

// Groups returns the groups of one category in listed order
func (r Requirements) Groups(c Category) []RequirementGroup {
	switch c {
	case LowerDivision:
		return r.LowerDivision
	case UpperDivision:
		return r.UpperDivision
	case Breadth:
		return r.Breadth
	}
	return nil
}

// Group finds a group by category and name
func (r Requirements) Group(c Category, name string) (RequirementGroup, bool) {
	for _, g := range r.Groups(c) {
		if g.Name == name {
			return g, true
		}
	}
	return RequirementGroup{}, false
}

// CourseIDs lists every identifier in category order, duplicates included
func (r Requirements) CourseIDs() []string {
	var ids []string
	for _, c := range Categories {
		for _, g := range r.Groups(c) {
			ids = append(ids, g.Courses...)
		}
	}
	return ids
}

func (r Requirements) clone() Requirements {
	return Requirements{
		LowerDivision: cloneGroups(r.LowerDivision),
		UpperDivision: cloneGroups(r.UpperDivision),
		Breadth:       cloneGroups(r.Breadth),
	}
}

func cloneGroups(groups []RequirementGroup) []RequirementGroup {
	if groups == nil {
		return nil
	}
	out := make([]RequirementGroup, len(groups))
	for i, g := range groups {
		g.Courses = append([]string(nil), g.Courses...)
		out[i] = g
	}
	return out
}

// Major is a degree program with its requirement structure
type Major struct {
	Name         string       `json:"name"`
	College      string       `json:"college"`
	TotalUnits   int          `json:"total_units"`
	Requirements Requirements `json:"requirements"`
}

// College groups major names under the college that awards them
type College struct {
	Name   string   `json:"name"`
	Majors []string `json:"majors"`
}

// MajorTable is the read-only major catalog built once at startup
type MajorTable struct {
	names  []string
	majors map[string]Major
}

// NewMajorTable builds a table from majors in authored order
func NewMajorTable(majors []Major) *MajorTable {
	t := &MajorTable{
		names:  make([]string, 0, len(majors)),
		majors: make(map[string]Major, len(majors)),
	}
	for _, m := range majors {
		if _, dup := t.majors[m.Name]; !dup {
			t.names = append(t.names, m.Name)
		}
		t.majors[m.Name] = m
	}
	return t
}

// Get returns a copy of the named major
func (t *MajorTable) Get(name string) (Major, bool) {
	m, ok := t.majors[name]
	if !ok {
		return Major{}, false
	}
	m.Requirements = m.Requirements.clone()
	return m, true
}

// Has reports whether the major exists
func (t *MajorTable) Has(name string) bool {
	_, ok := t.majors[name]
	return ok
}

// Names returns major names in authored order
func (t *MajorTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of majors
func (t *MajorTable) Len() int {
	return len(t.names)
}

// Colleges lists colleges in first-seen order with their majors
func (t *MajorTable) Colleges() []College {
	var out []College
	index := make(map[string]int)
	for _, name := range t.names {
		college := t.majors[name].College
		i, ok := index[college]
		if !ok {
			i = len(out)
			index[college] = i
			out = append(out, College{Name: college})
		}
		out[i].Majors = append(out[i].Majors, name)
	}
	return out
}
