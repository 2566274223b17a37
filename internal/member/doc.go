// Package member provides types and functions for managing QRQ Crew roster members.
//
// The member package handles the roster record itself plus the presentation
// rules derived from it: stable ordering by QC number, the founder and
// resident-computer-guy classifications, and join-date display formatting.
package member
