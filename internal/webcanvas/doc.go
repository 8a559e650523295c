// Package webcanvas binds the star field to a browser <canvas> element when
// built with GOOS=js GOARCH=wasm. The element's 2D context is the drawing
// surface, requestAnimationFrame is the scheduler and the window's resize
// event is the viewport signal.
package webcanvas
