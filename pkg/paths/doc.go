// Package paths provides centralized path handling for tagtmpl.
// It follows the XDG Base Directory specification and lets each
// directory be overridden through an environment variable.
package paths
