// Package navguard decides which URLs the shell's embedded webview may load.
//
// A Guard is built once from a Policy and consulted by the host runtime before
// every navigation. Evaluation is a pure function of the candidate string: a
// short ordered list of prefix rules (the app origin, the runtime's internal
// schemes, about:) followed by exact-or-subdomain matching of the parsed host
// against the allowlist. Anything that does not match, including input that is
// not an absolute URL, is blocked.
package navguard
