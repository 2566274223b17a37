// Package notifier provides announcement interfaces and implementations for
// roster updates.
//
// The notifier package posts a short status when a new roster page has been
// published. Twitter is the only live channel; the dry-run implementation
// prints the status instead so a build can be previewed without credentials.
package notifier
