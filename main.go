package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/text/language"

	"github.com/matst80/slask-listing/pkg/catalog"
	"github.com/matst80/slask-listing/pkg/common"
	"github.com/matst80/slask-listing/pkg/listing"
	"github.com/matst80/slask-listing/pkg/selection"
	"github.com/matst80/slask-listing/pkg/server"
	"github.com/matst80/slask-listing/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", false, "enable profiling endpoints")
var dataDir = os.Getenv("DATA_DIR")
var rabbitUrl = os.Getenv("RABBIT_URL")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var locale = os.Getenv("LISTING_LOCALE")
var listenAddress = ":8080"

func main() {
	flag.Parse()

	if dataDir == "" {
		dataDir = "data"
	}
	if addr := os.Getenv("LISTEN_ADDRESS"); addr != "" {
		listenAddress = addr
	}

	holder, err := catalog.NewDiskHolder(dataDir)
	if err != nil {
		log.Fatalf("failed to load reference data: %v", err)
	}

	tag := language.English
	if locale != "" {
		tag, err = language.Parse(locale)
		if err != nil {
			log.Fatalf("invalid LISTING_LOCALE %q: %v", locale, err)
		}
	}

	var store selection.Storage
	var closeStore func() error
	if redisUrl != "" {
		redisStore := selection.NewRedisStorage(redisUrl, redisPassword, 0)
		store = redisStore
		closeStore = redisStore.Close
		log.Printf("using redis selection storage at %s", redisUrl)
	} else {
		store = selection.NewMemoryStorage()
		log.Printf("using in-memory selection storage")
	}

	var trk tracking.Tracking
	if rabbitUrl != "" {
		rabbitTracking, err := tracking.NewRabbitTracking(rabbitUrl, "listing")
		if err != nil {
			log.Printf("tracking disabled, rabbit connect failed: %v", err)
		} else {
			trk = rabbitTracking
		}
	}

	ws := &server.WebServer{
		Catalog:   holder,
		Selection: store,
		Pipeline:  listing.NewPipeline(tag),
		Tracking:  trk,
	}

	srv := &http.Server{
		Addr:              listenAddress,
		Handler:           ws.CreateHandler(*enableProfiling),
		ReadHeaderTimeout: 5 * time.Second,
	}

	common.RunServerWithShutdown(srv, "slask-listing", 15*time.Second, func(ctx context.Context) error {
		if trk != nil {
			if err := trk.Close(); err != nil {
				return err
			}
		}
		if closeStore != nil {
			return closeStore()
		}
		return nil
	})
}
