package catalog

import (
	"strings"
)

// DefaultTotalUnits is the unit requirement shared by every major
const DefaultTotalUnits = 120

// DefaultCollege is assigned to majors not listed under another college
const DefaultCollege = "College of Letters and Science"

var majorNames = []string{
	// Letters and Science: arts and humanities
	"Ancient Greek and Roman Studies", "Art History", "Art Practice", "Celtic Studies",
	"Comparative Literature", "Dutch Studies", "East Asian Languages and Cultures",
	"English", "Film and Media", "French", "German", "Italian Studies",
	"Middle Eastern Languages and Cultures", "Music", "Near Eastern Civilizations",
	"Philosophy", "Rhetoric", "Scandinavian", "Slavic", "South and Southeast Asian Studies",
	"Spanish and Portuguese", "Theater, Dance, and Performance Studies",

	// Letters and Science: biological sciences
	"Integrative Biology", "Molecular and Cell Biology", "Neuroscience", "Public Health",
	"Robinson Life Science, Business, and Entrepreneurship Program",

	// Letters and Science: interdisciplinary studies
	"American Studies", "Interdisciplinary Studies", "Legal Studies", "Media Studies",

	// Letters and Science: mathematical and physical sciences
	"Analytics", "Astrophysics", "Chemistry", "Earth and Planetary Science",
	"Mathematics", "Physics",

	// Letters and Science: social sciences
	"African American Studies", "Anthropology", "Asian American and Asian Diaspora Studies",
	"Chicano Studies", "Chicanx Latinx Studies", "Cognitive Science", "Economics",
	"Educational Sciences", "Ethnic Studies", "Gender and Women's Studies", "Geography",
	"Global Studies", "History", "Linguistics", "Native American Studies",
	"Political Economy", "Political Science", "Psychology", "Social Welfare", "Sociology",

	// Computing, Data Science, and Society
	"Computer Science", "Data Science", "Statistics",

	// Chemistry
	"Chemical Biology", "Chemical Engineering",

	// Engineering
	"Aerospace Engineering", "Bioengineering", "Civil Engineering",
	"Electrical and Computer Engineering", "Environmental Engineering Sciences",
	"Energy Engineering", "Engineering Mathematics and Statistics", "Engineering Physics",
	"Environmental Engineering Science", "Industrial Engineering and Operations Research",
	"Materials Science and Engineering", "Mechanical Engineering", "Nuclear Engineering",

	// Environmental Design
	"Architecture", "Landscape Architecture", "Sustainable Environmental Design", "Urban Studies",

	// Natural Resources
	"Conservation and Resource Studies", "Ecosystem Management and Forestry",
	"Environmental Economics and Policy", "Environmental Sciences", "Genetics and Plant Biology",
	"Microbial Biology", "Molecular Environmental Biology", "Nutrition & Metabolic Biology",
	"Society and Environment",

	// Business
	"Business Administration",
}

// collegeMembers maps a college to the majors it awards. Majors not listed
// here belong to DefaultCollege.
var collegeMembers = []struct {
	college string
	majors  []string
}{
	{
		college: "College of Computing, Data Science, and Society",
		majors:  []string{"Computer Science", "Data Science", "Statistics"},
	},
	{
		college: "College of Chemistry",
		majors:  []string{"Chemical Biology", "Chemical Engineering"},
	},
	{
		college: "College of Engineering",
		majors: []string{
			"Aerospace Engineering", "Bioengineering", "Civil Engineering",
			"Electrical and Computer Engineering", "Environmental Engineering Sciences",
			"Energy Engineering", "Engineering Mathematics and Statistics", "Engineering Physics",
			"Environmental Engineering Science", "Industrial Engineering and Operations Research",
			"Materials Science and Engineering", "Mechanical Engineering", "Nuclear Engineering",
		},
	},
	{
		college: "College of Environmental Design",
		majors:  []string{"Architecture", "Landscape Architecture", "Sustainable Environmental Design", "Urban Studies"},
	},
	{
		college: "Rausser College of Natural Resources",
		majors: []string{
			"Conservation and Resource Studies", "Ecosystem Management and Forestry",
			"Environmental Economics and Policy", "Environmental Sciences", "Genetics and Plant Biology",
			"Microbial Biology", "Molecular Environmental Biology", "Nutrition & Metabolic Biology",
			"Society and Environment",
		},
	},
	{
		college: "Haas School of Business",
		majors:  []string{"Business Administration"},
	},
}

// CollegeFor classifies a major name into its college
func CollegeFor(major string) string {
	for _, entry := range collegeMembers {
		for _, m := range entry.majors {
			if m == major {
				return entry.college
			}
		}
	}
	return DefaultCollege
}

// PlaceholderSubject derives the placeholder subject used by skeleton
// upper-division groups: upper-cased, spaces removed, first 8 characters.
func PlaceholderSubject(major string) string {
	runes := []rune(strings.ReplaceAll(strings.ToUpper(major), " ", ""))
	if len(runes) > 8 {
		runes = runes[:8]
	}
	return string(runes)
}

func skeletonMajor(name string) Major {
	subject := PlaceholderSubject(name)
	return Major{
		Name:       name,
		College:    CollegeFor(name),
		TotalUnits: DefaultTotalUnits,
		Requirements: Requirements{
			LowerDivision: []RequirementGroup{{
				Name:        "Core Requirements",
				Courses:     []string{"MATH 1A", "ENGLISH 1A"},
				Units:       8,
				Description: "Core mathematics and composition courses",
			}},
			UpperDivision: []RequirementGroup{{
				Name:        "Major Requirements",
				Courses:     []string{subject + " 100", subject + " 101"},
				Units:       8,
				Description: "Upper division " + name + " courses",
			}},
			Breadth: []RequirementGroup{{
				Name:        "General Education",
				Courses:     []string{"HISTORY 1A", "PHYSICS 7A"},
				Units:       8,
				Description: "Breadth requirements",
			}},
		},
	}
}

func programmingAndCalculus() []RequirementGroup {
	return []RequirementGroup{
		{
			Name:        "Programming Fundamentals",
			Courses:     []string{"COMPSCI 61A", "COMPSCI 61B"},
			Units:       8,
			Description: "Core programming courses",
		},
		{
			Name:        "Mathematics",
			Courses:     []string{"MATH 1A", "MATH 1B"},
			Units:       8,
			Description: "Calculus sequence",
		},
	}
}

func humanitiesBreadth() []RequirementGroup {
	return []RequirementGroup{{
		Name:        "Humanities",
		Courses:     []string{"ENGLISH 1A"},
		Units:       4,
		Description: "Humanities breadth requirement",
	}}
}

// detailedMajors replace the generated skeleton of the same name entirely
func detailedMajors() []Major {
	return []Major{
		{
			Name:       "Computer Science",
			College:    "College of Engineering",
			TotalUnits: DefaultTotalUnits,
			Requirements: Requirements{
				LowerDivision: programmingAndCalculus(),
				UpperDivision: []RequirementGroup{{
					Name:        "Advanced Computer Science",
					Courses:     []string{"COMPSCI 170", "COMPSCI 188"},
					Units:       8,
					Description: "Upper division CS courses",
				}},
				Breadth: humanitiesBreadth(),
			},
		},
		{
			Name:       "Data Science",
			College:    "College of Computing, Data Science, and Society",
			TotalUnits: DefaultTotalUnits,
			Requirements: Requirements{
				LowerDivision: programmingAndCalculus(),
				UpperDivision: []RequirementGroup{{
					Name:        "Data Science Core",
					Courses:     []string{"DATA 100", "DATA 102"},
					Units:       8,
					Description: "Core data science courses",
				}},
				Breadth: humanitiesBreadth(),
			},
		},
	}
}

// LoadMajors builds the major catalog: a skeleton for every known major,
// then the detailed majors overlaid on top.
func LoadMajors() *MajorTable {
	majors := make([]Major, 0, len(majorNames))
	position := make(map[string]int, len(majorNames))
	for _, name := range majorNames {
		position[name] = len(majors)
		majors = append(majors, skeletonMajor(name))
	}

	for _, detailed := range detailedMajors() {
		if i, ok := position[detailed.Name]; ok {
			majors[i] = detailed
		}
	}

	return NewMajorTable(majors)
}
