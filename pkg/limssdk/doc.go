// Package limssdk holds the JSON types of the LIMS HTTP API and a small
// client for it. The server encodes with these types, so the client always
// matches the wire format.
package limssdk
