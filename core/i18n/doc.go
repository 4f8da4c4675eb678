// File: doc.go
// Title: Localization Package Documentation
// Description: Package i18n resolves localized strings by key from TOML and
//              YAML message files with default-locale fallback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-13 v0.1.1: Accept-Language matching

/*
Package i18n resolves localized strings by key.

Message files are named after their locale (en.toml, de_DE.yaml) and hold
flat or nested tables. Nested tables are addressed with dotted keys:

	# en.toml
	search = "Search"

	[greeting]
	named = "Hello, %@!"

A Bundle loads every message file of a directory from an fs.FS:

	bundle, err := i18n.Load(os.DirFS("locales"), ".", "en")
	if err != nil {
	    return err
	}
	bundle.Localized("search")                    // "Search"
	bundle.LocalizedWith("greeting.named", "Ada") // "Hello, Ada!"

Lookup order is the current locale, then the default locale. A key that is
found in neither is returned unchanged and logged at debug level, so a
missing translation degrades to its key instead of an empty string.

Format strings:

LocalizedWith replaces the first %@ or %s placeholder with its parameter and
turns %% into a single percent sign. Any other verb is left untouched.

Keys:

Key gives string-backed enumerations a localized form that resolves against
the package default bundle:

	const Search i18n.Key = "search"

	i18n.SetDefault(bundle)
	Search.Localized()

Locale names are canonicalized with golang.org/x/text/language, so "de_de",
"de-DE" and "de-de" all name the same locale. Match picks the best available
locale for an HTTP Accept-Language header.
*/
package i18n
