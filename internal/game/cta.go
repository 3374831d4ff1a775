package game

import (
	"log"

	"github.com/pkg/browser"
)

// OpenURL returns a CTA handler that opens url in the system browser.
// An empty url yields a handler that only logs the click.
func OpenURL(url string) CTAHandler {
	return func() {
		if url == "" {
			log.Printf("cta: no store url configured")
			return
		}
		if err := browser.OpenURL(url); err != nil {
			log.Printf("cta: open %s: %v", url, err)
		}
	}
}
