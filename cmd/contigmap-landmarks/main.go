// cmd/contigmap-landmarks/main.go
package main

import (
	"contigmap/internal/appshell"
	"contigmap/internal/landmarksapp"
)

func main() {
	appshell.Main(landmarksapp.RunContext)
}
