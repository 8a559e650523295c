//go:build js && wasm

// Command starfield-wasm animates the page's #starfield canvas. Build with
//
//	GOOS=js GOARCH=wasm go build -o static/starfield.wasm ./cmd/starfield-wasm
package main

import (
	"log"
	"syscall/js"

	"github.com/okachamie/portfolio/internal/starfield"
	"github.com/okachamie/portfolio/internal/webcanvas"
)

func main() {
	host, ok := webcanvas.Find("starfield")
	if !ok {
		return
	}
	anim := starfield.New(host, host, host)
	anim.Mount()
	if !anim.Mounted() {
		log.Println("starfield: no 2D context, background disabled")
		host.Release()
		return
	}

	// A page kept in the back-forward cache may come back, so only a real
	// unload tears the animator down.
	done := make(chan struct{})
	onHide := js.FuncOf(func(this js.Value, args []js.Value) any {
		if !anim.Mounted() || args[0].Get("persisted").Bool() {
			return nil
		}
		anim.Unmount()
		close(done)
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", onHide)

	<-done
	js.Global().Call("removeEventListener", "pagehide", onHide)
	onHide.Release()
	host.Release()
}
