package crawler

import (
	"strings"

	"appliancefit/internal/model"
)

// SpecToText renders a spec as "Column: value" lines in sheet order, followed
// by the classified manuals. Unknown values print as N/A.
func SpecToText(s model.Spec) string {
	var sb strings.Builder

	cols := model.Columns()
	row := s.Row()
	for i, c := range cols {
		sb.WriteString(c + ": " + row[i] + "\n")
	}
	sb.WriteString("Cutout Depth Max (in): " + s.CutoutDepthMax.String() + "\n")

	if s.Manuals.Known() {
		sb.WriteString("--- Manuals ---\n")
		writeManual(&sb, "Primary", s.Manuals.Primary)
		writeManual(&sb, "Installation", s.Manuals.Installation)
		writeManual(&sb, "Specification", s.Manuals.Specification)
	}
	return sb.String()
}

func writeManual(sb *strings.Builder, label string, ref *model.ManualRef) {
	if ref == nil {
		return
	}
	sb.WriteString(label + ": " + ref.Title + " <" + ref.URL + ">\n")
}
