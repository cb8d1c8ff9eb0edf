package vars

// VERSION is overridden at build time with -ldflags "-X github.com/Hack-Nocturne/dsymup/vars.VERSION=...".
var VERSION = "dev"

// Matches dropped from dsym_globs expansion, checked against the whole path.
var IGNORE_PATTERNS = []string{
	"**/.DS_Store",
	"**/._*",
	"**/__MACOSX/**",
}
