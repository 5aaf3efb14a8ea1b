// Package cli defines the Cobra command tree for repostatus. The root
// command runs the validation scan; subcommands add the interactive view
// and settings management. Commands only parse flags and format output;
// the work lives in the links, reconcile and report packages.
package cli
