package main

import (
	"context"
	"fmt"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"hr-intake-backend/config"
	apiv1 "hr-intake-backend/controllers/v1"
	"hr-intake-backend/controllers/v1/dict"
	publicapi "hr-intake-backend/controllers/v1/public"
	"hr-intake-backend/fiberlog"
	"hr-intake-backend/initializers"
	"hr-intake-backend/lib/ws"
	"hr-intake-backend/middleware"
	"os"
	"os/signal"
	"sync"
	"time"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // limit of 20MB, photos and signatures only
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(1 * 1024 * 1024))
	if config.Conf.App.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//public form, no authorization
	public := fiber.New()
	apiV1.Mount("/public", public)
	publicapi.InitPublicApplicationApiRouters(public)
	publicapi.InitPublicDocumentApiRouters(public)
	publicapi.InitPublicUploadApiRouters(public)

	//HR panel
	adminPanel := fiber.New()
	apiV1.Mount("/admin_panel", adminPanel)
	apiv1.InitAdminApiRouters(adminPanel)

	adminPanel.Use("/applicant", middleware.AuthorizationRequired())
	adminPanel.Use("/document", middleware.AuthorizationRequired())
	adminPanel.Use("/settings", middleware.AuthorizationRequired())
	apiv1.InitApplicantApiRouters(adminPanel)
	apiv1.InitDocumentApiRouters(adminPanel)
	apiv1.InitSettingsApiRouters(adminPanel)

	//dict
	dicts := fiber.New()
	adminPanel.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired())
	dict.InitJobPositionDictApiRouters(dicts)
	dict.InitInterviewQuestionDictApiRouters(dicts)

	//websocket events for the HR panel
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
