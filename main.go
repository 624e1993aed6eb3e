package main

import (
	"github.com/futurehomeno/edge-qbittorrent-adapter/cmd"
)

func main() {
	cmd.Execute()
}
