package app

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/womat/debug"

	"irdl/pkg/rc5"
)

// runWebServer starts the applications web server and listens for web requests.
//
//	It's designed to run in a separate go function to not block the main go function.
//	e.g.: go runWebServer()
//	See app.Run()
func (app *App) runWebServer() {
	err := app.web.Listen(app.urlParsed.Host)
	debug.ErrorLog.Print(err)
}

// HandleData returns the last received RC5 frame.
// Before the first frame arrives the handler answers with 204 No Content.
func (app *App) HandleData() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		debug.InfoLog.Print("web request data")

		app.frame.RLock()
		defer app.frame.RUnlock()

		if !app.frame.valid {
			return ctx.SendStatus(http.StatusNoContent)
		}

		return ctx.JSON(app.frame.data)
	}
}

// HandleSend transmits an RC5 frame over the emitter line.
// The request body is a json frame, e.g. {"address":5,"command":53,"toggle":false}.
func (app *App) HandleSend() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		debug.InfoLog.Print("web request send")

		var f rc5.Frame
		if err := ctx.BodyParser(&f); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		d, err := f.Datagram(app.config.Line.Manchester.Order)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		if err := app.transmitter.Send(d); err != nil {
			debug.ErrorLog.Printf("sending datagram %q: %v", d.String(), err)
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		return ctx.JSON(fiber.Map{"sent": d.String()})
	}
}
