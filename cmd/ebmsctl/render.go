package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/heartmarshall/ebms-backend/internal/domain"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Strikethrough(true)
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

const timeLayout = "2006-01-02 15:04"

// printTable writes rows under headers. Rows listed in dim are rendered as
// voided entries.
func printTable(w io.Writer, headers []string, rows [][]string, dim map[int]bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, noteStyle.Render("(none)"))
		return
	}
	for i := range rows {
		if !dim[i] {
			continue
		}
		for j, cell := range rows[i] {
			rows[i][j] = inactiveStyle.Render(cell)
		}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func printNote(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, noteStyle.Render(fmt.Sprintf(format, args...)))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func flags(rec domain.StateRecord) string {
	var f []string
	if rec.Current {
		f = append(f, "current")
	}
	if !rec.Active {
		f = append(f, "voided")
	}
	return strings.Join(f, ",")
}

// recordRows renders state records with their attachments.
func recordRows(records []domain.StateRecord) ([][]string, map[int]bool) {
	rows := make([][]string, len(records))
	dim := make(map[int]bool)
	for i, rec := range records {
		rows[i] = []string{
			rec.ID.String(),
			rec.Value.TextID,
			formatTime(rec.EnteredAt),
			flags(rec),
			attachments(rec),
		}
		if !rec.Active {
			dim[i] = true
		}
	}
	return rows, dim
}

var recordHeaders = []string{"ID", "STATE", "ENTERED", "FLAGS", "DETAILS"}

func attachments(rec domain.StateRecord) string {
	var parts []string
	for _, d := range rec.Decisions {
		s := d.Value.Name
		if d.Discussed {
			s += " (discussed)"
		}
		parts = append(parts, s)
	}
	for _, m := range rec.Meetings {
		parts = append(parts, m.Name+" "+m.Date.Format("2006-01-02"))
	}
	if n := len(rec.Comments); n > 0 {
		parts = append(parts, fmt.Sprintf("%d comment(s)", n))
	}
	return strings.Join(parts, "; ")
}

func printRecord(w io.Writer, rec *domain.StateRecord) {
	rows, dim := recordRows([]domain.StateRecord{*rec})
	printTable(w, recordHeaders, rows, dim)
	for _, c := range rec.Comments {
		edited := ""
		if c.ModifiedAt != nil {
			edited = " (edited " + formatTime(*c.ModifiedAt) + ")"
		}
		printNote(w, "comment %s by %s at %s%s:", c.ID, c.UserID, formatTime(c.EnteredAt), edited)
		fmt.Fprintln(w, "  "+c.Body)
	}
}
