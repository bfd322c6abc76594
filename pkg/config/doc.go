// Package config loads typed configuration structs from environment
// variables.
//
// Load parses `env` struct tags via github.com/caarlos0/env and reads an
// optional .env file once per process via github.com/joho/godotenv. Each
// configuration type is parsed once and cached, so packages can load their
// own config independently without re-reading the environment.
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
package config
