package site

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/qrqcrew/roster-builder/internal/member"
)

// QRZLookupURL is the callsign lookup service linked from every roster row
const QRZLookupURL = "https://www.qrz.com/db/"

// timestampLayout renders the "last updated" line, always in UTC
const timestampLayout = "January 02, 2006 at 15:04 UTC"

// pageData is everything the roster template needs
type pageData struct {
	CountText   string
	Rows        []rowData
	LastUpdated string
}

// rowData is one rendered roster row
type rowData struct {
	QCNumber   int
	Callsign   string
	LookupURL  string
	Name       string
	JoinDate   string
	RowClass   string
	BadgeClass string
	BadgeLabel string
}

// Render produces the complete roster page. Members must already be sorted;
// now is captured by the caller so rendering stays deterministic under test.
func Render(members []*member.Member, now time.Time) (string, error) {
	data := pageData{
		CountText:   countText(len(members)),
		LastUpdated: now.UTC().Format(timestampLayout),
	}

	for _, m := range members {
		row := rowData{
			QCNumber:  m.QCNumber,
			Callsign:  m.Callsign,
			LookupURL: QRZLookupURL + m.Callsign,
			Name:      m.Name,
			JoinDate:  member.FormatJoinDate(m.JoinDate),
		}
		switch member.Classify(m) {
		case member.RoleFounder:
			row.RowClass = "founder"
			row.BadgeClass = "founder-badge"
			row.BadgeLabel = "Founder"
		case member.RoleTech:
			row.RowClass = "tech-guy"
			row.BadgeClass = "tech-badge"
			row.BadgeLabel = "Resident Computer Guy"
		}
		data.Rows = append(data.Rows, row)
	}

	var buf strings.Builder
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing roster template: %w", err)
	}
	return buf.String(), nil
}

// countText pluralizes the member-count summary. Zero members reads
// "0 Members"; only exactly one gets the singular.
func countText(n int) string {
	if n == 1 {
		return "1 Member"
	}
	return fmt.Sprintf("%d Members", n)
}

var pageTmpl = template.Must(template.New("roster").Parse(pageHTML))
