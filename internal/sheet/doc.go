// Package sheet provides HTTP fetching and CSV parsing for the QRQ Crew roster.
//
// The sheet package downloads the club's published Google Sheets CSV export
// and extracts member records from it. Spreadsheet exports carry cosmetic
// junk ahead of the real data (title rows, blank lines), so the parser scans
// for the header row instead of assuming a fixed offset.
package sheet
