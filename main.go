package main

import (
	"flag"

	"github.com/AlexxIT/bitreader/internal/app"
	"github.com/AlexxIT/bitreader/internal/dump"

	"github.com/rs/zerolog/log"
)

func main() {
	app.Init() // init config and logs

	if err := dump.Run(flag.Args()); err != nil {
		log.Fatal().Err(err).Send()
	}
}
