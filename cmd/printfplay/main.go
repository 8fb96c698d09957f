// Command printfplay launches the fyne desktop format playground, the
// graphical counterpart to printfctl -tui.
package main

import (
	"fmt"
	"os"

	"github.com/lookbusy1344/go-printf/config"
	"github.com/lookbusy1344/go-printf/playground"
	"github.com/lookbusy1344/go-printf/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	session := service.NewSession(cfg.Policy())
	if err := playground.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "playground error: %v\n", err)
		os.Exit(1)
	}
}
