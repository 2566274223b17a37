package sheet

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestParseRoster(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_roster.csv")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	roster := parseRoster(string(data))

	if len(roster.Members) != 5 {
		t.Fatalf("expected 5 valid members, got %d", len(roster.Members))
	}
	if roster.Dropped != 3 {
		t.Errorf("expected 3 dropped rows, got %d", roster.Dropped)
	}

	// File order is preserved; sorting happens later.
	wantCallsigns := []string{"W1AW", "K6QRQ", "N0QC", "W6JSV", "AA7AA"}
	for i, want := range wantCallsigns {
		if roster.Members[i].Callsign != want {
			t.Errorf("member %d callsign = %s, want %s", i, roster.Members[i].Callsign, want)
		}
	}

	first := roster.Members[0]
	if first.Name != "Hiram Percy Maxim" {
		t.Errorf("expected name 'Hiram Percy Maxim', got %q", first.Name)
	}
	if first.JoinDate != "1/1/1914" {
		t.Errorf("expected join date '1/1/1914', got %q", first.JoinDate)
	}
	if first.QCNumber != 1 {
		t.Errorf("expected QC number 1, got %d", first.QCNumber)
	}

	// Quoted field with an embedded comma survives intact.
	if roster.Members[1].Name != "Jones, Dave" {
		t.Errorf("expected quoted name 'Jones, Dave', got %q", roster.Members[1].Name)
	}
}

func TestParseRosterHeaderSearch(t *testing.T) {
	csvText := "some title\nanother line\nCallsign,Name,Join Date,QC #\nW1AW,Hiram,1/1/1914,1\n"

	roster := parseRoster(csvText)

	if len(roster.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(roster.Members))
	}
	m := roster.Members[0]
	if m.Callsign != "W1AW" || m.Name != "Hiram" || m.QCNumber != 1 {
		t.Errorf("unexpected member: %+v", m)
	}
}

func TestParseRosterNoHeader(t *testing.T) {
	roster := parseRoster("just,some,random\ncsv,data,here\n")

	if len(roster.Members) != 0 {
		t.Errorf("expected empty roster without header row, got %d members", len(roster.Members))
	}
}

func TestParseRosterAllInvalid(t *testing.T) {
	csvText := "Callsign,Name,Join Date,QC #\nKD9XYZ,Zero,2/2/2023,0\n,Nobody,3/3/2023,5\nAB1CD,Bad,4/4/2023,abc\n"

	roster := parseRoster(csvText)

	if len(roster.Members) != 0 {
		t.Errorf("expected 0 valid members, got %d", len(roster.Members))
	}
	if roster.Dropped != 3 {
		t.Errorf("expected 3 dropped rows, got %d", roster.Dropped)
	}
}

func TestParseRosterEmpty(t *testing.T) {
	roster := parseRoster("")

	if len(roster.Members) != 0 {
		t.Errorf("expected empty roster for empty input, got %d members", len(roster.Members))
	}
}

func TestFetchRoster(t *testing.T) {
	csvText := "Callsign,Name,Join Date,QC #\nW1AW,Hiram,1/1/1914,1\n"

	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csvText)) //nolint:errcheck
	}))
	defer srv.Close()

	c := &Client{client: srv.Client(), url: srv.URL}

	roster, err := c.FetchRoster()
	if err != nil {
		t.Fatalf("FetchRoster failed: %v", err)
	}
	if len(roster.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(roster.Members))
	}
	if gotUserAgent != UserAgent {
		t.Errorf("expected User-Agent %q, got %q", UserAgent, gotUserAgent)
	}
}

func TestFetchRosterBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{client: srv.Client(), url: srv.URL}

	if _, err := c.FetchRoster(); err == nil {
		t.Fatal("expected error for non-200 status, got nil")
	}
}

func TestFetchRosterConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := &Client{client: &http.Client{Timeout: Timeout}, url: srv.URL}

	if _, err := c.FetchRoster(); err == nil {
		t.Fatal("expected error when the server is unreachable, got nil")
	}
}
