// cmd/gapscan/main.go
package main

import (
	"os"

	"gapscan/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
