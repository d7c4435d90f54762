package main

import (
	"flag"
	"log"
	"os"

	"github.com/goplotter/hlines/pkg/logging"
	"github.com/goplotter/hlines/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	logger, err := logging.NewZapLogger()
	if err != nil {
		log.Printf("Error creating logger: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	webServer := server.NewServer(*port, logger)

	log.Printf("hlines preview server")
	log.Printf("Visit http://localhost:%d/render to render the default scene", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
