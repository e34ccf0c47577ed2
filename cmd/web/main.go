package main

import (
	_ "embed"
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/tomz197/skyraid/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost string
	SSHPort string
}

func handler(data pageData) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = page.Execute(w, data)
	})
}

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := pageData{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_PORT", "2222"),
	}

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, handler(data)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
