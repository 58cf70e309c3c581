package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// Certificate renders the printable clearance certificate for the signed-in
// student. It is only issued once every target department has cleared the
// student; a single pending or blocked department refuses it.
func (s *Service) Certificate(ctx context.Context, session entity.Session) ([]byte, error) {
	if err := s.checkConfigured(); err != nil {
		return nil, err
	}

	profile := s.ResolveProfile(ctx, session)
	if profile.Role != entity.RoleStudent {
		return nil, entity.ErrForbidden
	}

	student := *profile.Student

	entries := s.studentClearance(ctx, student)
	for _, entry := range entries {
		if !entry.Cleared() {
			return nil, entity.ErrClearanceIncomplete
		}
	}

	data := certificateData{
		CertificateID: CertificateID(student),
		Student:       student,
		Departments:   entries,
		IssuedAt:      time.Now(),
	}

	var buf bytes.Buffer

	err := certificateTmpl.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}

	return buf.Bytes(), nil
}

// CertificateID derives the printed certificate number from the student's
// profile id, so reprints always carry the same number.
func CertificateID(student entity.Student) string {
	id := student.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}

	return strings.ToUpper(id)
}

type certificateData struct {
	CertificateID string
	Student       entity.Student
	Departments   []entity.ClearanceEntry
	IssuedAt      time.Time
}

var certificateTmpl = template.Must(template.New("certificate").Funcs(template.FuncMap{
	"date": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format("2 January 2006")
		case *time.Time:
			if t != nil {
				return t.Format("2 January 2006")
			}
		}

		return ""
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Clearance Certificate {{.CertificateID}}</title>
<style>
body { font-family: Georgia, serif; margin: 48px; color: #1a1a1a; }
.certificate { border: 4px double #1a4d2e; padding: 48px; text-align: center; }
h1 { margin: 8px 0; letter-spacing: 1px; }
h2 { margin: 0 0 32px; font-weight: normal; color: #1a4d2e; }
.student { font-size: 1.4em; margin: 24px 0 8px; }
.meta { color: #555; margin-bottom: 32px; }
table { width: 100%; border-collapse: collapse; margin: 24px 0; }
th, td { border: 1px solid #ccc; padding: 8px 12px; text-align: left; }
.footer { display: flex; justify-content: space-between; margin-top: 48px; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="certificate">
<h2>Papua New Guinea University of Technology</h2>
<h1>Certificate of Clearance</h1>
<p>Certificate No. <strong>{{.CertificateID}}</strong></p>
<p>This is to certify that</p>
<p class="student"><strong>{{.Student.FullName}}</strong></p>
<p class="meta">Student ID: {{.Student.StudentID}}{{if .Student.CourseCode}} &middot; {{.Student.CourseCode}}{{end}}{{if .Student.YearLevel}} &middot; Year {{.Student.YearLevel}}{{end}}</p>
<p>has been cleared by all departments listed below and holds no outstanding obligations to the university.</p>
<table>
<tr><th>Department</th><th>Cleared by</th><th>Date</th></tr>
{{range .Departments}}<tr><td>{{.Department}}</td><td>{{if .ClearedBy}}{{.ClearedBy}}{{end}}</td><td>{{if .ClearedAt}}{{date .ClearedAt}}{{end}}</td></tr>
{{end}}</table>
<div class="footer">
<span>Issued on {{date .IssuedAt}}</span>
<span>PNG UOT Registrar</span>
</div>
</div>
</body>
</html>
`))
