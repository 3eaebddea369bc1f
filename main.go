package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"snake-arcade/config"
)

func main() {
	log.SetPrefix("snake: ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	app.Run()
}
