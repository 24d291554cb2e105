package main

import (
	"figstats/cmd/figstats/commands"
	"figstats/lib/serviceutil"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	commands.ExecuteContext(serviceutil.SignalContext())
}
