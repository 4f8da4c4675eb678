package i18n_test

import (
	"fmt"
	"testing/fstest"

	"github.com/msto63/gopress/core/i18n"
)

func ExampleBundle_LocalizedWith() {
	fsys := fstest.MapFS{
		"en.toml": {Data: []byte(`welcome = "Welcome back, %@"`)},
		"de.toml": {Data: []byte(`welcome = "Willkommen zurück, %@"`)},
	}
	bundle, err := i18n.Load(fsys, ".", "en")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(bundle.LocalizedWith("welcome", "Ada"))
	_ = bundle.SetLocale(bundle.Match("de-CH, en;q=0.5"))
	fmt.Println(bundle.LocalizedWith("welcome", "Ada"))
	fmt.Println(bundle.Localized("unknown"))
	// Output:
	// Welcome back, Ada
	// Willkommen zurück, Ada
	// unknown
}
