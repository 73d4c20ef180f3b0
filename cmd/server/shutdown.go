package main

import (
	"time"

	grpclib "google.golang.org/grpc"

	"github.com/simaogato/wealthflow-tracker/internal/log"
)

// shutdown stops accepting calls and waits for in-flight ones, forcing the
// stop once timeout has elapsed.
func shutdown(grpcServer *grpclib.Server, timeout time.Duration, logger *log.Logger) {
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("gRPC server stopped")
	case <-time.After(timeout):
		logger.Warn("graceful stop timed out, forcing")
		grpcServer.Stop()
	}
}
