// cmd/contigmap/main.go
package main

import (
	"contigmap/internal/app"
	"contigmap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
