package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

var requestTemplate = template.Must(template.New("request").Parse(`
<h2>New Consultation Request</h2>
<p>You have received a new consultation request:</p>

<h3>Student Details:</h3>
<ul>
  <li><strong>Name:</strong> {{.StudentName}}</li>
  <li><strong>Email:</strong> {{.StudentEmail}}</li>
  {{if .StudentDepartment}}<li><strong>Department:</strong> {{.StudentDepartment}}</li>{{end}}
</ul>

<h3>Consultation Details:</h3>
<ul>
  <li><strong>Date:</strong> {{.Date}}</li>
  <li><strong>Time:</strong> {{.Time}}</li>
  <li><strong>Mode:</strong> {{.Mode}}</li>
  {{if .Topic}}<li><strong>Topic:</strong> {{.Topic}}</li>{{end}}
</ul>
{{if .DashboardURL}}
<p><a href="{{.DashboardURL}}">View in Dashboard</a></p>
{{end}}
<hr>
<p style="color: #666; font-size: 12px;">This is an automated message. Please do not reply directly to this email.</p>
`))

type requestData struct {
	StudentName       string
	StudentEmail      string
	StudentDepartment string
	Date              string
	Time              string
	Mode              string
	Topic             string
	DashboardURL      string
}

func subject(v *domain.BookingView) string {
	return "New Consultation Request from " + v.Student.FullName
}

func render(v *domain.BookingView, appURL string) (string, error) {
	data := requestData{
		StudentName:  v.Student.FullName,
		StudentEmail: v.Student.Email,
		Date:         v.Date.Format("Monday, January 2, 2006"),
		Time:         clock(v.StartTime) + " - " + clock(v.EndTime),
		Mode:         "On-site",
		Topic:        v.Topic,
	}
	if v.Student.Department != nil {
		data.StudentDepartment = *v.Student.Department
	}
	if v.Mode == domain.ModeOnline {
		data.Mode = "Online"
	}
	if appURL != "" {
		data.DashboardURL = appURL + "/professor/requests"
	}

	var buf bytes.Buffer
	if err := requestTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// clock форматирует время в 12-часовом формате ("9:30 AM")
func clock(t types.TimeString) string {
	m := t.Minutes()
	hour, minute := m/60, m%60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
