// Package environment names the deployment environment a service runs in.
//
// Environment is a typed string with the Development, Staging and Production
// constants. Parse accepts the usual short forms ("dev", "stage", "prod") and
// falls back to Development. The logger presets use it to pick the output
// format and level; sessiond uses IsProduction to warn about insecure cookies.
package environment
