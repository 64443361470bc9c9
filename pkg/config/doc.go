// Package config handles configuration management for govsetup.
//
// Two things live here. The catalog (the core bundle and the adapters) is an
// embedded TOML document fixed at build time; it is parsed once and handed out
// read-only. The installer options are layered with koanf: embedded defaults,
// then an optional TOML file, then GOVSETUP_* environment variables. Flags are
// applied on top by the command layer.
package config
