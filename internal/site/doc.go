// Package site renders the roster into a self-contained HTML page and
// writes it to disk.
//
// Rendering is a pure function of the sorted member list and the generation
// timestamp. All member-supplied text flows through html/template, so
// whatever ends up in the spreadsheet cannot inject markup into the page.
package site
