// Package static holds the browser signup page served under /static.
package static

import "embed"

//go:embed index.html app.js styles.css
var FS embed.FS
