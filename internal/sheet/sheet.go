package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/qrqcrew/roster-builder/internal/member"
)

const (
	SheetCSVURL = "https://docs.google.com/spreadsheets/d/e/" +
		"2PACX-1vRBfNWrtgvUxTJQL96aK4g7ctZZ-Z572mBEbsscarGQWrbHg66yfxf-Jxw-bZ1ke7KX0zhJk6nUFWhL" +
		"/pub?output=csv"
	UserAgent = "qrq-roster-build/1.0 (github.com/qrqcrew/roster-builder)"
	Timeout   = 30 * time.Second
)

// Column names as they appear in the sheet's header row. The header row is
// located by searching for headerToken, not by position.
const (
	headerToken    = "Callsign"
	columnCallsign = "Callsign"
	columnName     = "Name"
	columnJoinDate = "Join Date"
	columnQCNumber = "QC #"
)

// Roster is the parse result: valid members in file order, plus the count
// of data rows dropped for failing the validity check.
type Roster struct {
	Members []*member.Member
	Dropped int
}

// Client handles fetching and parsing the published roster sheet
type Client struct {
	client *http.Client
	url    string
}

// New creates a new Client instance
func New() *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: SheetCSVURL,
	}
}

// FetchRoster downloads the published CSV and parses the roster out of it.
// Any transport, status, or read failure is returned as a single wrapped
// error; there are no retries.
func (c *Client) FetchRoster() (*Roster, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return parseRoster(string(body)), nil
}

// parseRoster extracts member records from raw CSV text.
//
// The export may carry an unknown number of title or blank lines before the
// real header, so the first line containing headerToken is treated as the
// header row. No header row means an empty roster; the caller decides
// whether that is fatal.
func parseRoster(csvText string) *Roster {
	lines := strings.Split(csvText, "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, headerToken) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return &Roster{}
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return &Roster{}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	roster := &Roster{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		m := &member.Member{
			Callsign: strings.TrimSpace(field(record, cols, columnCallsign)),
			Name:     strings.TrimSpace(field(record, cols, columnName)),
			JoinDate: strings.TrimSpace(field(record, cols, columnJoinDate)),
		}

		// An unparseable QC number leaves the zero value in place, which
		// fails the validity check below.
		if qc, err := strconv.Atoi(strings.TrimSpace(field(record, cols, columnQCNumber))); err == nil {
			m.QCNumber = qc
		}

		if !m.Valid() {
			roster.Dropped++
			continue
		}
		roster.Members = append(roster.Members, m)
	}

	return roster
}

// field returns the named column's value, or "" when the column is missing
// or the row is too short.
func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
