//go:build js && wasm

// cuboid-wasm is the in-browser demonstration: once the page has loaded it
// builds a 400 x 200 x 40 cuboid with no unit, appends it to the body and
// sets perspective 100px on the body.
//
// Build with GOOS=js GOARCH=wasm go build -o cuboid.wasm ./cmd/cuboid-wasm
package main

import (
	"syscall/js"

	"fortio.org/log"

	"github.com/chazu/cuboid/pkg/config"
	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/diag"
	"github.com/chazu/cuboid/pkg/host/jsdom"
)

func main() {
	done := make(chan struct{})
	var onLoad js.Func
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer close(done)
		defer onLoad.Release()
		run()
		return nil
	})

	if js.Global().Get("document").Get("readyState").String() == "complete" {
		run()
		return
	}
	js.Global().Call("addEventListener", "load", onLoad)
	<-done
}

func run() {
	h := jsdom.New()
	body := h.Body()
	cfg := config.Default()

	c := cuboid.Build(h, diag.LogSink{}, cfg.Dimensions(), &cuboid.Perspective{
		Target: body,
		Value:  cfg.Perspective.Value,
	})
	h.AppendChild(body, c.Container)
	log.Infof("cuboid: built %s", cfg.Dimensions())
}
