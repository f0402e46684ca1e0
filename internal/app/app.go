package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1Http "github.com/DRSN-tech/commerce-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/commerce-backend/pkg/closer"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

// runServer запускает HTTP-сервер и блокируется до сигнала остановки
// или фатальной ошибки сервера, после чего выполняет graceful shutdown
// и закрывает зарегистрированные ресурсы в порядке LIFO.
func runServer(srv *v1Http.Server, cl *closer.Closer, log logger.Logger, service string) error {
	const shutdownTimeout = 10 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Infof("%s HTTP server started", service)
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "%s HTTP server failed", service)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "%s HTTP server fatal error", service)
	case <-shutdown:
		log.Infof("received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Errorf(err, "%s HTTP server shutdown error", service)
	} else {
		log.Infof("%s HTTP server stopped", service)
	}

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("%s resource close error: %v", service, err)
	}

	log.Infof("%s shutdown complete", service)
	return appErr
}
