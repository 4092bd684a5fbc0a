// Package iaclient provides the main entry point for creating Intacct XML
// gateway clients.
package iaclient
