// Package fazenda carries the assets shared by the server binary.
package fazenda

import "embed"

//go:embed static
var Static embed.FS
