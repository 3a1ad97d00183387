package driven

import "context"

// Browser launches a URL in the user's browser.
type Browser interface {
	// Open launches the URL. It returns once the launch command has been
	// handed to the operating system; it does not wait for the browser.
	Open(ctx context.Context, url string) error
}
