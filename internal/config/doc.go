// Package config assembles the [StructuredConfig] of absence-keeper.
//
// Sources are merged with later non-zero values winning: built-in
// [Defaults], the environment (seeded from a .env file when one is found),
// command-line flags and finally the JSON file named by -c or CONFIG.
//
// The groups cover the key-derivation cost, the PIN lockout policy and key
// lifetimes, SQL and blob storage, the device key cache, the optional REST
// backend and the signed-in session. [GetStructuredConfig] is the only
// entry point; it validates the merged result.
package config
