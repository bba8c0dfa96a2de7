package app

import (
	"encoding/json"

	"github.com/womat/debug"

	"irdl/pkg/mqtt"
	"irdl/pkg/rc5"
)

// service waits in an endless loop for decoded datagrams.
// Every datagram that parses as an RC5 frame is saved to the app main
// structure and forwarded to the mqtt broker.
func (app *App) service() {
	for d := range app.bus.C {
		f, err := rc5.Parse(d)
		if err != nil {
			debug.WarningLog.Printf("ignoring datagram %q: %v", d.String(), err)
			continue
		}

		debug.DebugLog.Printf("Frame: %+v", f)
		app.frame.Lock()
		app.frame.data = f
		app.frame.valid = true
		app.frame.Unlock()

		app.validateFrame(f)
	}
}

// validateFrame compares the frame with the last published one and sends
// it to mqtt if the key changed, the toggle bit flipped or the publish
// interval has elapsed.
func (app *App) validateFrame(f rc5.Frame) {
	app.mqttData.Lock()
	defer app.mqttData.Unlock()

	if app.mqttData.valid {
		m := app.mqttData.data

		deltaT := f.TimeStamp.Sub(m.TimeStamp)
		deltaKey := f.Address != m.Address || f.Command != m.Command || f.Toggle != m.Toggle

		if deltaT < app.config.MQTT.Interval && !deltaKey {
			return
		}
	}

	app.sendMQTT(app.config.MQTT.Topic, f)
	app.mqttData.data = f
	app.mqttData.valid = true
}

// sendMQTT send message struct to the mqtt broker.
func (app *App) sendMQTT(topic string, message interface{}) {
	go func(t string, r interface{}) {
		debug.TraceLog.Printf("prepare mqtt message %v %v", t, r)

		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			debug.ErrorLog.Printf("sendMQTT marshal: %v", err)
			return
		}

		app.mqtt.C <- mqtt.Message{
			Qos:      0,
			Retained: true,
			Topic:    t,
			Payload:  b,
		}
	}(topic, message)
}
