package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"yumi/internal/engine"
)

func main() {
	configPath := flag.String("config", "", "path to JSON engine config")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	// stdout 留给协议，日志只写 stderr
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		if cfg, err = engine.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
	}

	s := newSession(engine.NewEngine(cfg, engine.WithLogger(log.Logger)), os.Stdout)
	if err := s.run(os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
}
