package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/footy-tipping/models"
)

// view renders command output. Styles are bound to the output writer, so
// escape sequences are only emitted when it is a terminal.
type view struct {
	out io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	faint   lipgloss.Style
}

func newView(out io.Writer) *view {
	r := lipgloss.NewRenderer(out)
	return &view{
		out:     out,
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true).Width(12),
		success: r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

func (v *view) message(msg string) {
	fmt.Fprintln(v.out, v.success.Render(msg))
}

func (v *view) line(format string, args ...any) {
	fmt.Fprintf(v.out, format+"\n", args...)
}

func (v *view) users(users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(v.out, v.faint.Render("No users yet."))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "FIRST NAME", "LAST NAME", "USERNAME").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return v.title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, u := range users {
		t.Row(strconv.FormatInt(u.ID, 10), u.FirstName, u.LastName, u.Username)
	}

	fmt.Fprintln(v.out, t.String())
}

func (v *view) user(u models.User) {
	v.field("ID", strconv.FormatInt(u.ID, 10))
	v.field("First name", u.FirstName)
	v.field("Last name", u.LastName)
	v.field("Username", u.Username)
}

func (v *view) buildInfo(info models.AppBuildInfo, serverVersion string) {
	v.field("Client", valueOrNA(info.BuildVersion()))
	v.field("Date", valueOrNA(info.BuildDate()))
	v.field("Commit", valueOrNA(info.BuildCommit()))
	v.field("Server", valueOrNA(serverVersion))
}

func (v *view) field(name, value string) {
	fmt.Fprintln(v.out, v.label.Render(name+":")+" "+value)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
