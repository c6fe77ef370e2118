// Package web serves an already rendered image to browsers.
package web

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// Handler serves one encoded PNG.
//
//	GET /                the viewer page
//	GET /mandelbrot.png  the image
//	GET /ws              a WebSocket that sends the image as one binary message
type Handler struct {
	png   []byte
	title string
	mux   *http.ServeMux
}

// NewHandler encodes img once; every request is served from that encoding.
func NewHandler(img image.Image, title string) (*Handler, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png.Encode: %w", err)
	}

	h := &Handler{
		png:   buf.Bytes(),
		title: title,
		mux:   http.NewServeMux(),
	}
	h.mux.HandleFunc("/ws", h.serveWebsocket)
	h.mux.HandleFunc("/mandelbrot.png", h.servePNG)
	h.mux.HandleFunc("/", h.serveIndex)

	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// PNG returns the encoded image.
func (h *Handler) PNG() []byte {
	return h.png
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, indexHTML, h.title, h.title)
}

func (h *Handler) servePNG(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprint(len(h.png)))
	_, _ = w.Write(h.png)
}

// serveWebsocket pushes the image and closes the connection normally.
func (h *Handler) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("websocket connection from: %s", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := c.Write(ctx, websocket.MessageBinary, h.png); err != nil {
		log.Printf("websocket write to %s: %v", r.RemoteAddr, err)
		return
	}

	_ = c.Close(websocket.StatusNormalClosure, "")
}

// NewServer wraps handler the way every command serves HTTP.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body { background: #000; margin: 25px; }</style>
</head>
<body>
<img id="set" alt="%s">
<script>
const img = document.getElementById("set");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = (ev) => { img.src = URL.createObjectURL(ev.data); };
ws.onerror = () => { img.src = "/mandelbrot.png"; };
</script>
</body>
</html>
`
