// Package platform contains OS integration glue: well-known media and
// config locations, directory helpers, and file manager reveal.
package platform
