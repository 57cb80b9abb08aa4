package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BEARSTY_server/config"
	"BEARSTY_server/errors"
	"BEARSTY_server/global"
	"BEARSTY_server/helpers"
	"BEARSTY_server/media"
	"BEARSTY_server/routes"
	"BEARSTY_server/scheduler"
	"BEARSTY_server/services"
	"BEARSTY_server/store"

	fiber "github.com/gofiber/fiber/v2"
)

const defaultBodyLimit = 4 * 1024 * 1024

func main() {
	configPath := flag.String("config", "./config.json", "path to config.json")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	cfg, err := config.Load(*configPath)
	errors.HandleFatalError(err)

	logFiles, err := global.OpenLoggers(cfg.Logs.Internal, cfg.Logs.Monitor)
	errors.HandleFatalError(err)
	defer func() {
		for _, f := range logFiles {
			f.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	errors.HandleFatalError(err)
	defer func() {
		errors.HandleBasicError(st.Close())
	}()

	var uploads services.MediaUploader
	if cfg.MinIO.Endpoint != "" {
		uploader, err := media.Dial(ctx, cfg.MinIO)
		errors.HandleFatalError(err)
		uploads = uploader
	}

	svc := services.New(st, uploads, cfg)

	bodyLimit := defaultBodyLimit
	if cfg.MinIO.MaxUploadBytes >= bodyLimit {
		bodyLimit = cfg.MinIO.MaxUploadBytes + 1
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:  global.JSON.Marshal,
		JSONDecoder:  global.JSON.Unmarshal,
		ErrorHandler: errors.ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	routes.SetRoutes(app, svc, cfg)

	var jobDone <-chan struct{}
	if cfg.Schedule.DailyRefresh {
		offset, err := scheduler.ParseClock(cfg.Schedule.RefreshAt)
		errors.HandleFatalError(err)

		job := &scheduler.Job{
			Offset: offset,
			Run: func(ctx context.Context) error {
				_, err := helpers.RefreshTodayTimes(ctx, st, cfg.Relations.CommitAttempts, func() string {
					return helpers.RandomTimeOfDayGMT(time.Now())
				})
				return err
			},
		}
		jobDone = job.Start(ctx)
	}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		errors.HandleBasicError(app.Shutdown())
	}()

	fmt.Println("Starting server on port: " + cfg.Port + " (store: " + cfg.Store.Driver + ")")
	if err := app.Listen(cfg.Port); err != nil {
		log.Println(err)
	}

	stop()
	if jobDone != nil {
		<-jobDone
	}
}
