package catalog

// SampleCourses is the built-in course set used when no course file loads
func SampleCourses() []Course {
	fs := []Term{TermFall, TermSpring}
	fss := []Term{TermFall, TermSpring, TermSummer}

	return []Course{
		{Subject: "COMPSCI", Number: "61A", Title: "The Structure and Interpretation of Computer Programs", Units: 4, Terms: fs, Department: "Computer Science"},
		{Subject: "COMPSCI", Number: "61B", Title: "Data Structures", Units: 4, Terms: fs, Department: "Computer Science"},
		{Subject: "COMPSCI", Number: "61C", Title: "Great Ideas of Computer Architecture", Units: 4, Terms: fs, Department: "Computer Science"},
		{Subject: "COMPSCI", Number: "70", Title: "Discrete Mathematics and Probability Theory", Units: 4, Terms: fs, Department: "Computer Science"},
		{Subject: "COMPSCI", Number: "170", Title: "Efficient Algorithms and Intractable Problems", Units: 4, Terms: fs, Department: "Computer Science"},
		{Subject: "COMPSCI", Number: "188", Title: "Introduction to Artificial Intelligence", Units: 4, Terms: fs, Department: "Computer Science"},
		{Subject: "DATA", Number: "8", Title: "Foundations of Data Science", Units: 4, Terms: fss, Department: "Data Science"},
		{Subject: "DATA", Number: "100", Title: "Principles and Techniques of Data Science", Units: 4, Terms: fs, Department: "Data Science"},
		{Subject: "DATA", Number: "102", Title: "Data, Inference, and Decisions", Units: 4, Terms: fs, Department: "Data Science"},
		{Subject: "MATH", Number: "1A", Title: "Calculus", Units: 4, Terms: fss, Department: "Mathematics"},
		{Subject: "MATH", Number: "1B", Title: "Calculus", Units: 4, Terms: fss, Department: "Mathematics"},
		{Subject: "MATH", Number: "54", Title: "Linear Algebra and Differential Equations", Units: 4, Terms: fss, Department: "Mathematics"},
		{Subject: "PHYSICS", Number: "7A", Title: "Physics for Scientists and Engineers", Units: 4, Terms: fs, Department: "Physics"},
		{Subject: "ENGLISH", Number: "1A", Title: "Reading and Composition", Units: 4, Terms: fss, Department: "English"},
		{Subject: "HISTORY", Number: "1A", Title: "Introduction to World History", Units: 4, Terms: fs, Department: "History"},
		{Subject: "CHEM", Number: "1A", Title: "General Chemistry", Units: 4, Terms: fss, Department: "Chemistry"},
		{Subject: "PSYCH", Number: "1", Title: "General Psychology", Units: 3, Terms: fss, Department: "Psychology"},
		{Subject: "ECON", Number: "1", Title: "Introduction to Economics", Units: 4, Terms: fss, Department: "Economics"},
	}
}
