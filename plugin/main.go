// Plugin bridges a serial-attached temperature sensor board to a monitoring
// host: it ingests TEMP:<id>:<value> telemetry lines from the device and
// answers the host's device plugin queries over a unix socket.
//
// Usage example: plugin -device /dev/ttyACM0 -baud 57600 -socket /tmp/ardutemp.sock
//
// Flags:
//
//	-device: serial port device path (env ARDU_DEVICE)
//	-baud: serial port baud rate (env ARDU_BAUD)
//	-socket: unix socket path for the plugin API
//	-stale-after: age after which a reading is reported stale
//	-debug: enable debug logging
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/VictoriaMetrics/metrics"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	pluginConnect "github.com/okarpenko/ardutemp/pkg/pluginpb/v1/pluginpbv1connect"
	pluginDomain "github.com/okarpenko/ardutemp/plugin/domain"
	pluginInfrastructure "github.com/okarpenko/ardutemp/plugin/infrastructure"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := pluginInfrastructure.GetFromCommandLineParameters()
	if err != nil {
		endWithError(err)
	}

	stdlibLogger := log.New(os.Stdout, "", log.LstdFlags)
	logger := pluginDomain.NewStdLogger(stdlibLogger, config.Debug)

	logger.Info("starting %s v%s", pluginInfrastructure.ServiceName, pluginInfrastructure.ServiceVersion)
	logger.Info("device: %s, baud: %d", config.DevicePath, config.BaudRate)

	store := pluginDomain.NewSensorStore(config.StaleAfter)

	wg := &sync.WaitGroup{}

	reader := pluginInfrastructure.NewSerialLineReader(config.DevicePath, config.BaudRate, store, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		reader.Run(ctx)
		logger.Info("serial reader stopped, %d lines rejected in total", reader.Rejected())
	}()

	handlerInterceptors := connect.WithInterceptors(
		pluginInfrastructure.NewPanicRecoveryInterceptor(logger),
	)

	service := pluginInfrastructure.NewPluginService(store, logger)
	path, handler := pluginConnect.NewDevicePluginServiceHandler(service, handlerInterceptors)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	socketPath := string(config.SocketPath)
	_ = os.Remove(socketPath) // stale socket left by a previous run

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		logger.Error("failed to bind to socket %s: %s", socketPath, err.Error())
		finish()
		wg.Wait()
		os.Exit(1)
	}

	server := &http.Server{
		Handler:     h2c.NewHandler(mux, &http2.Server{}),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down plugin server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error: %s", err.Error())
		}
	}()

	logger.Info("listening on %s", socketPath)
	if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
		logger.Error("serve error: %s", err.Error())
		finish()
	}

	wg.Wait()
	_ = os.Remove(socketPath)
	logger.Info("all components stopped gracefully")
}
