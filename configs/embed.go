// Package configs embeds the default viewer settings and bug catalogs.
package configs

import "embed"

// FS holds viewer.json and the bugs/ catalogs
//
//go:embed viewer.json bugs
var FS embed.FS
