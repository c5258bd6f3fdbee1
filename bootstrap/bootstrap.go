package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fulldump/villagerdb/api"
	"github.com/fulldump/villagerdb/configuration"
	"github.com/fulldump/villagerdb/database"
	"github.com/fulldump/villagerdb/service"
)

var VERSION = "dev"

func NewLogger(c *configuration.Configuration) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if c.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func Bootstrap(c *configuration.Configuration, l *zap.Logger) (start, stop func(), err error) {

	db := database.NewDatabase(&database.Config{
		DataFile: c.DataFile,
		Logger:   l.Named("database"),
	})

	b := api.Build(service.NewService(db), VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.RequestId,
		api.AccessLog(l.Named("access")),
		api.InterceptorUnavailable(db),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen: %w", err)
	}
	l.Info("listening", zap.String("addr", c.HttpAddr))

	stop = func() {
		db.Stop()
		s.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			l.Info("signal received", zap.String("signal", sig.String()))
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				l.Error("database", zap.Error(err))
				stop()
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				l.Error("serve", zap.Error(err))
			}
		}()

		wg.Wait()
	}

	return
}
