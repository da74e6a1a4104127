package rag

import (
	"bytes"
	"strings"
	"text/template"
)

const scheduleSystem = `You are an expert UC Berkeley academic advisor. Create a comprehensive,
realistic four-year academic plan from the course catalog and major requirements below.

Rules:
1. Only include courses that exist in the provided course catalog.
2. Respect prerequisites and course sequences.
3. Keep each semester between 12 and 16 units.
4. Consider term availability for courses.
5. Include breadth requirements.
6. Never include courses the student has already completed.
7. Schedule lower division courses before upper division courses.

Context from the course catalog and requirements:
{{.Context}}`

const schedulePrompt = `Create an academic plan for:
- Major: {{.Major}}
- Target graduation: {{.GraduationSemester}} {{.GraduationYear}}
- Current year: {{.CurrentYear}}
- Completed courses: {{if .Completed}}{{join .Completed ", "}}{{else}}None{{end}}
{{- range $k, $v := .Preferences}}
- Preference {{$k}}: {{$v}}
{{- end}}

Plan every semester from Fall {{.CurrentYear}} to {{.GraduationSemester}} {{.GraduationYear}}.
Set "major" to "{{.Major}}", "graduation_year" to {{.GraduationYear}} and
"graduation_semester" to "{{.GraduationSemester}}".`

const scheduleQuery = `UC Berkeley {{.Major}} major requirements, course sequences, prerequisites,
breadth requirements, and recommended courses for a {{.GraduationSemester}} {{.GraduationYear}} graduation.
Focus on lower division prerequisites, upper division major requirements, and general education.`

const suggestionSystem = `You are a UC Berkeley academic advisor. Suggest additional courses
based on the provided course catalog and the student's current course selection.

Context from the course catalog:
{{.Context}}`

const suggestionPrompt = `For a {{.Major}} major in {{.Term}} {{.Year}}, with current courses:
{{if .Current}}{{join .Current "\n"}}{{else}}None{{end}}

Suggest 3 to 5 additional courses. Consider:
1. Prerequisites and course sequences
2. Workload balance, aiming for 12 to 16 units in total
3. Course availability in {{.Term}}
4. Breadth requirements
5. Major requirements`

const suggestionQuery = `UC Berkeley {{.Major}} courses available in {{.Term}} semester,
including breadth requirements, electives, and courses that complement: {{join .Current ", "}}`

var funcs = template.FuncMap{"join": strings.Join}

var (
	scheduleSystemTmpl   = template.Must(template.New("scheduleSystem").Parse(scheduleSystem))
	schedulePromptTmpl   = template.Must(template.New("schedulePrompt").Funcs(funcs).Parse(schedulePrompt))
	scheduleQueryTmpl    = template.Must(template.New("scheduleQuery").Parse(scheduleQuery))
	suggestionSystemTmpl = template.Must(template.New("suggestionSystem").Parse(suggestionSystem))
	suggestionPromptTmpl = template.Must(template.New("suggestionPrompt").Funcs(funcs).Parse(suggestionPrompt))
	suggestionQueryTmpl  = template.Must(template.New("suggestionQuery").Funcs(funcs).Parse(suggestionQuery))
)

type scheduleVars struct {
	Context            string
	Major              string
	GraduationSemester string
	GraduationYear     int
	CurrentYear        int
	Completed          []string
	Preferences        map[string]string
}

type suggestionVars struct {
	Context string
	Major   string
	Term    string
	Year    int
	Current []string
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
