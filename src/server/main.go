package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/kalexmills/pronouncing/src/db"
	"github.com/kalexmills/pronouncing/src/dict"
	"github.com/kalexmills/pronouncing/src/pronouncing"
	"github.com/kalexmills/pronouncing/src/rhymebot"
	"github.com/spf13/viper"
)

func main() {
	conf := readConfig()
	if conf.Debug {
		log.SetLevel(log.DebugLevel)
	}

	d, err := loadDictionary(context.Background())
	if err != nil {
		log.Fatal("could not load dictionary", "err", err)
	}

	bot := rhymebot.NewRhymeBot(conf, rhymebot.NewResponder(d, conf.Prefix, conf.MaxResults))
	err = bot.Open()
	if err != nil {
		log.Fatal("fail error opening bot", "err", err)
	}

	log.Info("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	err = bot.Close()
	if err != nil {
		log.Error("error closing session", "err", err)
	}
}

// loadDictionary reads the dictionary from the configured source. The result also becomes
// the package default so pronouncing's top-level functions agree with the bot.
func loadDictionary(ctx context.Context) (*pronouncing.Dictionary, error) {
	switch source := viper.GetString("source"); source {
	case "file":
		path := viper.GetString("dictPath")
		if path != "" {
			pronouncing.DefaultSource = func() (io.ReadCloser, error) { return dict.Open(path) }
		}
		if err := pronouncing.Init(nil); err != nil {
			return nil, err
		}
		return pronouncing.Default()
	case "sqlite":
		return db.LoadDictionary(ctx, viper.GetString("dbPath"))
	default:
		return nil, fmt.Errorf("unknown dictionary source %q, expected file or sqlite", source)
	}
}

func readConfig() rhymebot.Config {
	viper.SetDefault("prefix", "!")
	viper.SetDefault("maxResults", 50)
	viper.SetDefault("source", "file")
	viper.SetDefault("dictPath", "")
	viper.SetDefault("dbPath", "./pronouncing.sqlite3")
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("PRONOUNCING")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/pronouncing")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		log.Warn("no config file found, using defaults", "err", err)
	}
	return rhymebot.Config{
		Token:      viper.GetString("token"),
		Prefix:     viper.GetString("prefix"),
		MaxResults: viper.GetInt("maxResults"),
		Debug:      viper.GetBool("debug"),
	}
}
