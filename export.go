package docket

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ExportAll renders the full collection as plain text in store order,
// writes the export artifact, and saves the task file. Write failures are
// logged and swallowed; the rendering is returned regardless.
func (s *Store) ExportAll() string {
	text := renderText(s.List(ListOptions{}))

	_ = s.Persist()
	if err := os.WriteFile(s.exportPath, []byte(text), 0644); err != nil {
		s.log.Errorf("failed to write export artifact %s: %v", s.exportPath, err)
	}

	return text
}

// renderText produces one block per task, blocks separated by a blank line.
func renderText(tasks []Task) string {
	var b strings.Builder
	for i, t := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "ID: %d\nTitle: %s\nDescription: %s\nDeadline: %s\nPriority: %s\nStatus: %s\n",
			t.ID, t.Title, t.Description, deadlineLabel(t.Deadline), t.Priority, t.Status)
	}
	return b.String()
}

func deadlineLabel(deadline *string) string {
	if deadline == nil {
		return "none"
	}
	return *deadline
}

// Exporter renders the collection in one of the supported formats.
type Exporter struct {
	st *Store
}

func NewExporter(st *Store) *Exporter { return &Exporter{st: st} }

// Export returns the rendered bytes for the given format: txt (default),
// json, csv or pdf. The txt path is the full export including its artifact
// side effect; the others only render.
func (e *Exporter) Export(format string) ([]byte, error) {
	all := e.st.List(ListOptions{})

	switch strings.ToLower(format) {
	case "", "txt":
		return []byte(e.st.ExportAll()), nil

	case "json":
		return json.MarshalIndent(all, "", "  ")

	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "description", "deadline", "priority", "status"})
		for _, t := range all {
			deadline := ""
			if t.Deadline != nil {
				deadline = *t.Deadline
			}
			_ = w.Write([]string{fmt.Sprint(t.ID), t.Title, t.Description, deadline, t.Priority, t.Status})
		}
		w.Flush()
		return []byte(b.String()), nil

	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Export")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range all {
			line := fmt.Sprintf("#%d [%s/%s] %s (due %s)", t.ID, t.Priority, t.Status, t.Title, deadlineLabel(t.Deadline))
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	default:
		return nil, &ValidationError{Field: "format", Reason: fmt.Sprintf("unknown format %q", format)}
	}
}

// ContentType returns the MIME type matching an export format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv"
	case "pdf":
		return "application/pdf"
	}
	return "text/plain; charset=utf-8"
}
