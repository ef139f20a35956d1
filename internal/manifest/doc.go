// Package manifest builds the plugin manifest served at
// /.well-known/ai-plugin.json.
//
// A manifest is merged from three sources in increasing precedence: URL
// defaults derived from the service settings, a base file, and MANIFEST.*
// environment variables. The merged document is validated and its auth
// section resolved into either an OAuth value, which always carries its
// five required fields, or a SimpleAuth for every other mode.
package manifest
