package app

import (
	"net/url"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/womat/debug"

	"irdl/pkg/app/config"
	"irdl/pkg/irbus"
	"irdl/pkg/mqtt"
	"irdl/pkg/raspberry"
	"irdl/pkg/rc5"
)

// App is the main application struct.
// App is where the application is wired up.
type App struct {
	// web is the fiber web framework instance
	web *fiber.App

	// config is the application configuration
	config *config.Config

	// urlParsed contains the parsed Config.Webserver.URL parameter
	urlParsed *url.URL

	// mqtt is the handler to the mqtt broker
	mqtt *mqtt.Handler

	// gpio is the handler to the gpio lines
	gpio raspberry.GPIO
	// rxPin is the infrared receiver input pin
	rxPin raspberry.InputPin
	// txLine is the infrared emitter output line
	txLine raspberry.OutputLine

	// bus decodes datagrams from the sampled receiver line
	bus *irbus.Handler
	// transmitter sends datagrams over the emitter line
	transmitter *irbus.Transmitter

	// frame is the last decoded RC5 frame
	frame struct {
		sync.RWMutex
		data  rc5.Frame
		valid bool
	}

	// mqttData is the frame last published to the mqtt broker
	mqttData struct {
		sync.Mutex
		data  rc5.Frame
		valid bool
	}

	// restart signals application restart
	restart chan struct{}
	// shutdown signals application shutdown
	shutdown chan struct{}
}

// New checks the web server URL and initializes the main app structure.
func New(config *config.Config) (*App, error) {
	u, err := url.Parse(config.Webserver.URL)
	if err != nil {
		debug.ErrorLog.Printf("Error parsing url %q: %s", config.Webserver.URL, err.Error())
		return &App{}, err
	}

	return &App{
		config:    config,
		urlParsed: u,

		web:  fiber.New(),
		mqtt: mqtt.New(),

		restart:  make(chan struct{}),
		shutdown: make(chan struct{}),
	}, nil
}

// Run starts the application.
func (app *App) Run() error {
	if err := app.init(); err != nil {
		return err
	}

	go app.mqtt.Service()
	go app.runWebServer()
	go app.service()

	return nil
}

// init opens the gpio lines and wires the manchester bus, the transmitter
// and the mqtt broker.
func (app *App) init() (err error) {
	if app.gpio, err = raspberry.Open(); err != nil {
		debug.ErrorLog.Printf("can't open gpio: %v", err)
		return err
	}

	if app.rxPin, err = app.gpio.InputPin(app.config.Gpio.In, app.config.Gpio.Terminator); err != nil {
		debug.ErrorLog.Printf("can't open input pin: %v", err)
		return err
	}

	if app.txLine, err = app.gpio.OutputLine(app.config.Gpio.Out, app.config.Line.Manchester.InactiveLevel); err != nil {
		debug.ErrorLog.Printf("can't open output line: %v", err)
		return err
	}

	if app.bus, err = irbus.Open(app.rxPin, app.config.Line.Manchester, app.config.Line.HalfBit); err != nil {
		debug.ErrorLog.Printf("can't open manchester bus: %v", err)
		return err
	}

	if app.transmitter, err = irbus.NewTransmitter(app.txLine, app.config.Line.Manchester, app.config.Line.HalfBit); err != nil {
		debug.ErrorLog.Printf("can't open transmitter: %v", err)
		return err
	}

	if err = app.mqtt.Connect(app.config.MQTT.Connection, MODULE); err != nil {
		debug.ErrorLog.Printf("can't open mqtt broker: %v", err)
		return err
	}

	// initDefaultRoutes should always be called last because it may
	// access handlers like app.bus which must be initialized before
	app.initDefaultRoutes()

	return nil
}

// Restart returns the read only restart channel.
// Restart is used to be able to react on application restart (see cmd/irdl.go).
func (app *App) Restart() <-chan struct{} {
	return app.restart
}

// Shutdown returns the read only shutdown channel.
// Shutdown is used to be able to react on application shutdown (see cmd/irdl.go).
func (app *App) Shutdown() <-chan struct{} {
	return app.shutdown
}

func (app *App) Close() error {
	if app.mqtt != nil {
		_ = app.mqtt.Disconnect()
	}

	if app.bus != nil {
		_ = app.bus.Close()
	}
	if app.rxPin != nil {
		_ = app.rxPin.Close()
	}
	if app.txLine != nil {
		_ = app.txLine.Close()
	}
	if app.gpio != nil {
		_ = app.gpio.Close()
	}

	return nil
}
