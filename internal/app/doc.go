// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the compile pipeline that turns figure
// definitions into saved artifacts, decoupled from the CLI entrypoint.
package app
